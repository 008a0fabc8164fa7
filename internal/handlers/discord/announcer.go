package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/drinkwise/drinkwise/internal/models"
	"github.com/drinkwise/drinkwise/internal/services/progression"
)

// Announcer posts community announcements (tournament results, badge
// unlocks) to a Discord channel.
type Announcer struct {
	session   *discordgo.Session
	channelID string
	log       *zap.SugaredLogger
}

// Config holds the configuration for the announcer
type Config struct {
	// Discord bot token
	Token string

	// ChannelID is where announcements are posted
	ChannelID string

	Logger *zap.SugaredLogger
}

// New creates a new Discord announcer
func New(cfg *Config) (*Announcer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &Announcer{
		session:   session,
		channelID: cfg.ChannelID,
		log:       cfg.Logger,
	}, nil
}

// Start opens the websocket connection to Discord
func (a *Announcer) Start() error {
	if err := a.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	a.log.Infow("discord announcer connected", "channel_id", a.channelID)
	return nil
}

// Stop closes the Discord connection
func (a *Announcer) Stop() error {
	return a.session.Close()
}

// AnnounceTournamentResult posts a completed tournament's podium.
func (a *Announcer) AnnounceTournamentResult(t *models.Tournament) error {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Participants",
			Value:  fmt.Sprintf("%d", len(t.Participants)),
			Inline: true,
		},
	}

	if t.Winner != "" {
		value := fmt.Sprintf("<@%s>", t.Winner)
		if score := t.Scores[t.Winner]; score != nil {
			value = fmt.Sprintf("<@%s> avec %d points", t.Winner, score.TotalPoints)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "🥇 Vainqueur",
			Value:  value,
			Inline: true,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 %s est terminé !", t.Name),
		Description: "Le tournoi est clos, les scores sont définitifs.",
		Color:       0xf1c40f,
		Fields:      fields,
	}

	_, err := a.session.ChannelMessageSendComplex(a.channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		return fmt.Errorf("failed to announce tournament result: %w", err)
	}

	return nil
}

// AnnounceBadgeUnlock celebrates a freshly unlocked badge.
func (a *Announcer) AnnounceBadgeUnlock(userID string, badge progression.Badge) error {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎖️ %s", badge.Name),
		Description: fmt.Sprintf("<@%s> a débloqué un badge : %s", userID, badge.Description),
		Color:       0x9b59b6,
	}

	_, err := a.session.ChannelMessageSendComplex(a.channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		return fmt.Errorf("failed to announce badge unlock: %w", err)
	}

	return nil
}
