package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/drinkwise/drinkwise/internal/common/logger"
	"github.com/drinkwise/drinkwise/internal/config"
	"github.com/drinkwise/drinkwise/internal/handlers/discord"
	draftrepo "github.com/drinkwise/drinkwise/internal/repositories/draft"
	notificationrepo "github.com/drinkwise/drinkwise/internal/repositories/notification"
	partyrepo "github.com/drinkwise/drinkwise/internal/repositories/party"
	profilerepo "github.com/drinkwise/drinkwise/internal/repositories/profile"
	tournamentrepo "github.com/drinkwise/drinkwise/internal/repositories/tournament"
	"github.com/drinkwise/drinkwise/internal/services/progression"
	"github.com/drinkwise/drinkwise/internal/services/scoring"
	"github.com/drinkwise/drinkwise/internal/services/session"
	"github.com/drinkwise/drinkwise/internal/workers"
)

func main() {
	// A .env file is optional; the environment always wins
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		zlog.Fatalw("failed to connect to Redis", "addr", cfg.Redis.Addr, "error", err)
	}

	// Initialize repositories
	partyRepo, err := partyrepo.NewRedis(&partyrepo.Config{RedisClient: redisClient})
	if err != nil {
		zlog.Fatalw("failed to create party repository", "error", err)
	}

	draftRepo, err := draftrepo.NewRedis(&draftrepo.Config{RedisClient: redisClient})
	if err != nil {
		zlog.Fatalw("failed to create draft repository", "error", err)
	}

	profileRepo, err := profilerepo.NewRedis(&profilerepo.Config{RedisClient: redisClient})
	if err != nil {
		zlog.Fatalw("failed to create profile repository", "error", err)
	}

	tournamentRepo, err := tournamentrepo.NewRedis(&tournamentrepo.Config{RedisClient: redisClient})
	if err != nil {
		zlog.Fatalw("failed to create tournament repository", "error", err)
	}

	notificationRepo, err := notificationrepo.NewRedis(&notificationrepo.Config{RedisClient: redisClient})
	if err != nil {
		zlog.Fatalw("failed to create notification repository", "error", err)
	}

	// Initialize services
	progressionService, err := progression.NewService(&progression.Config{
		PartyRepo:        partyRepo,
		ProfileRepo:      profileRepo,
		NotificationRepo: notificationRepo,
		Logger:           zlog,
	})
	if err != nil {
		zlog.Fatalw("failed to create progression service", "error", err)
	}

	sessionService, err := session.NewService(&session.Config{
		DraftRepo:         draftRepo,
		PartyRepo:         partyRepo,
		Progression:       progressionService,
		Logger:            zlog,
		AutosaveInterval:  cfg.Session.AutosaveInterval,
		ReopenSuppression: cfg.Session.ReopenSuppression,
	})
	if err != nil {
		zlog.Fatalw("failed to create session service", "error", err)
	}
	defer sessionService.Close()

	scoringService, err := scoring.NewService(&scoring.Config{
		TournamentRepo:   tournamentRepo,
		NotificationRepo: notificationRepo,
		Logger:           zlog,
	})
	if err != nil {
		zlog.Fatalw("failed to create scoring service", "error", err)
	}

	// The announcer is optional; without a token the results simply
	// stay in-app
	var announcer *discord.Announcer
	if cfg.Discord.Token != "" {
		announcer, err = discord.New(&discord.Config{
			Token:     cfg.Discord.Token,
			ChannelID: cfg.Discord.ChannelID,
			Logger:    zlog,
		})
		if err != nil {
			zlog.Fatalw("failed to create discord announcer", "error", err)
		}
		if err := announcer.Start(); err != nil {
			zlog.Fatalw("failed to start discord announcer", "error", err)
		}
		defer func() { _ = announcer.Stop() }()
	}

	sweeper, err := workers.New(&workers.Config{
		ScoringService: scoringService,
		Announcer:      announcer,
		Logger:         zlog,
	})
	if err != nil {
		zlog.Fatalw("failed to create tournament sweeper", "error", err)
	}
	if err := sweeper.Start(); err != nil {
		zlog.Fatalw("failed to start tournament sweeper", "error", err)
	}
	defer func() { _ = sweeper.Stop() }()

	zlog.Infow("drinkwise is running", "redis", cfg.Redis.Addr)

	// Wait for a termination signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Info("shutting down")
}
