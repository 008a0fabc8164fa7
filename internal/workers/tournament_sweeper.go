package workers

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/drinkwise/drinkwise/internal/handlers/discord"
	"github.com/drinkwise/drinkwise/internal/services/scoring"
)

const defaultSweepInterval = time.Minute

// TournamentSweeper periodically closes tournaments whose window has
// passed and announces the results.
type TournamentSweeper struct {
	scheduler gocron.Scheduler
	scoring   scoring.Service
	announcer *discord.Announcer
	interval  time.Duration
	log       *zap.SugaredLogger
}

// Config holds dependencies for the tournament sweeper
type Config struct {
	ScoringService scoring.Service

	// Announcer posts results to the community channel, optional
	Announcer *discord.Announcer

	// Interval overrides the sweep cadence, defaults to one minute
	Interval time.Duration

	Logger *zap.SugaredLogger
}

// New creates a new tournament sweeper
func New(cfg *Config) (*TournamentSweeper, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.ScoringService == nil {
		return nil, errors.New("scoring service cannot be nil")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultSweepInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &TournamentSweeper{
		scheduler: scheduler,
		scoring:   cfg.ScoringService,
		announcer: cfg.Announcer,
		interval:  cfg.Interval,
		log:       cfg.Logger,
	}, nil
}

// Start schedules the sweep and begins running it
func (w *TournamentSweeper) Start() error {
	_, err := w.scheduler.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(w.Sweep),
	)
	if err != nil {
		return err
	}

	w.scheduler.Start()
	w.log.Infow("tournament sweeper started", "interval", w.interval)
	return nil
}

// Stop shuts the scheduler down, waiting for a running sweep
func (w *TournamentSweeper) Stop() error {
	return w.scheduler.Shutdown()
}

// Sweep closes every expired tournament once. Exposed so a sweep can
// be forced outside the schedule.
func (w *TournamentSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	output, err := w.scoring.CompleteExpired(ctx)
	if err != nil {
		w.log.Errorw("tournament sweep failed", "error", err)
		return
	}

	for _, t := range output.Completed {
		if w.announcer == nil {
			continue
		}
		if err := w.announcer.AnnounceTournamentResult(t); err != nil {
			w.log.Errorw("failed to announce result", "tournament_id", t.ID, "error", err)
		}
	}
}
