package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the full service configuration, loaded from environment
// variables (optionally seeded from a .env file by the caller).
type Config struct {
	Redis   RedisConfig
	Session SessionConfig
	Discord DiscordConfig
}

// RedisConfig holds the document store connection settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SessionConfig holds the party draft session tuning knobs
type SessionConfig struct {
	// AutosaveInterval is the fixed cadence of draft persists
	AutosaveInterval time.Duration

	// ReopenSuppression is how long after closing a session its draft
	// is not auto-resumed
	ReopenSuppression time.Duration
}

// DiscordConfig holds the optional community announcer settings.
// The announcer is disabled when Token is empty.
type DiscordConfig struct {
	Token     string
	ChannelID string
}

// Load reads configuration from the environment with sane defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DRAFT_AUTOSAVE_INTERVAL", "10s")
	v.SetDefault("DRAFT_REOPEN_SUPPRESSION", "2m")
	v.SetDefault("DISCORD_TOKEN", "")
	v.SetDefault("DISCORD_CHANNEL_ID", "")

	autosave, err := time.ParseDuration(v.GetString("DRAFT_AUTOSAVE_INTERVAL"))
	if err != nil {
		return nil, err
	}

	suppression, err := time.ParseDuration(v.GetString("DRAFT_REOPEN_SUPPRESSION"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			AutosaveInterval:  autosave,
			ReopenSuppression: suppression,
		},
		Discord: DiscordConfig{
			Token:     v.GetString("DISCORD_TOKEN"),
			ChannelID: v.GetString("DISCORD_CHANNEL_ID"),
		},
	}, nil
}
