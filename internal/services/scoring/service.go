package scoring

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/drinkwise/drinkwise/internal/common/clock"
	"github.com/drinkwise/drinkwise/internal/models"
	notificationrepo "github.com/drinkwise/drinkwise/internal/repositories/notification"
	tournamentrepo "github.com/drinkwise/drinkwise/internal/repositories/tournament"
)

// Config holds dependencies for the scoring service
type Config struct {
	TournamentRepo   tournamentrepo.Repository
	NotificationRepo notificationrepo.Repository
	Clock            clock.Clock
	Logger           *zap.SugaredLogger
}

type service struct {
	tournamentRepo   tournamentrepo.Repository
	notificationRepo notificationrepo.Repository
	clock            clock.Clock
	log              *zap.SugaredLogger
}

// NewService creates a new scoring service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.TournamentRepo == nil {
		return nil, errors.New("tournament repository cannot be nil")
	}
	if cfg.NotificationRepo == nil {
		return nil, errors.New("notification repository cannot be nil")
	}
	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}

	return &service{
		tournamentRepo:   cfg.TournamentRepo,
		notificationRepo: cfg.NotificationRepo,
		clock:            cfg.Clock,
		log:              cfg.Logger,
	}, nil
}

func (s *service) CreateTournament(ctx context.Context, input *CreateTournamentInput) (*CreateTournamentOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Name == "" {
		return nil, errors.New("name cannot be empty")
	}
	if input.CreatorID == "" {
		return nil, errors.New("creator ID cannot be empty")
	}
	if len(input.Modes) == 0 {
		return nil, ErrNoModes
	}
	for _, mode := range input.Modes {
		if !knownMode(mode) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
		}
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, ErrInvalidWindow
	}

	created, err := s.tournamentRepo.CreateTournament(ctx, &tournamentrepo.CreateTournamentInput{
		Name:            input.Name,
		CreatorID:       input.CreatorID,
		Modes:           input.Modes,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		MaxParticipants: input.MaxParticipants,
	})
	if err != nil {
		return nil, err
	}

	t := created.Tournament
	if input.CreatorJoins {
		if err := s.tournamentRepo.AddParticipant(ctx, &tournamentrepo.AddParticipantInput{
			TournamentID: t.ID,
			UserID:       input.CreatorID,
		}); err != nil {
			return nil, err
		}
		t, err = s.tournamentRepo.GetTournament(ctx, &tournamentrepo.GetTournamentInput{TournamentID: t.ID})
		if err != nil {
			return nil, err
		}
	}

	s.log.Infow("tournament created", "tournament_id", t.ID, "name", t.Name, "modes", t.Modes)
	return &CreateTournamentOutput{Tournament: t}, nil
}

func (s *service) JoinTournament(ctx context.Context, input *JoinTournamentInput) error {
	if input == nil || input.TournamentID == "" || input.UserID == "" {
		return errors.New("input, tournament ID and user ID cannot be empty")
	}

	t, err := s.tournamentRepo.GetTournament(ctx, &tournamentrepo.GetTournamentInput{
		TournamentID: input.TournamentID,
	})
	if err != nil {
		return err
	}

	if t.Status != models.TournamentStatusActive || !s.clock.Now().Before(t.EndTime) {
		return ErrTournamentEnded
	}

	return s.tournamentRepo.AddParticipant(ctx, &tournamentrepo.AddParticipantInput{
		TournamentID: input.TournamentID,
		UserID:       input.UserID,
	})
}

func (s *service) ScoreParty(ctx context.Context, input *ScorePartyInput) (*ScorePartyOutput, error) {
	if input == nil || input.TournamentID == "" || input.UserID == "" {
		return nil, errors.New("input, tournament ID and user ID cannot be empty")
	}
	if input.Party == nil {
		return nil, errors.New("party cannot be nil")
	}
	if !knownMode(input.Mode) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, input.Mode)
	}

	t, err := s.tournamentRepo.GetTournament(ctx, &tournamentrepo.GetTournamentInput{
		TournamentID: input.TournamentID,
	})
	if err != nil {
		return nil, err
	}

	if t.Status != models.TournamentStatusActive || !s.clock.Now().Before(t.EndTime) {
		return nil, ErrTournamentEnded
	}
	if !t.HasMode(input.Mode) {
		return nil, ErrModeNotAllowed
	}
	if !t.HasParticipant(input.UserID) {
		return nil, ErrNotParticipant
	}

	breakdown := Score(input.Mode, input.Party, input.Signals)
	points := breakdown.Total()

	merged, err := s.tournamentRepo.AddScore(ctx, &tournamentrepo.AddScoreInput{
		TournamentID: input.TournamentID,
		UserID:       input.UserID,
		Mode:         input.Mode,
		Points:       points,
		Now:          s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("party scored",
		"tournament_id", input.TournamentID,
		"user_id", input.UserID,
		"mode", input.Mode,
		"points", points,
	)

	return &ScorePartyOutput{
		Points:    points,
		Breakdown: breakdown,
		Score:     merged.Score,
	}, nil
}

func (s *service) GetTournament(ctx context.Context, input *GetTournamentInput) (*GetTournamentOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	t, err := s.tournamentRepo.GetTournament(ctx, &tournamentrepo.GetTournamentInput{
		TournamentID: input.TournamentID,
	})
	if err != nil {
		return nil, err
	}

	return &GetTournamentOutput{Tournament: t}, nil
}

func (s *service) GetActiveTournaments(ctx context.Context) (*GetActiveTournamentsOutput, error) {
	active, err := s.tournamentRepo.GetActiveTournaments(ctx, &tournamentrepo.GetActiveTournamentsInput{})
	if err != nil {
		return nil, err
	}

	return &GetActiveTournamentsOutput{Tournaments: active.Tournaments}, nil
}

func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	t, err := s.tournamentRepo.GetTournament(ctx, &tournamentrepo.GetTournamentInput{
		TournamentID: input.TournamentID,
	})
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{
		Tournament: t,
		Entries:    rank(t),
	}, nil
}

func (s *service) CompleteExpired(ctx context.Context) (*CompleteExpiredOutput, error) {
	active, err := s.tournamentRepo.GetActiveTournaments(ctx, &tournamentrepo.GetActiveTournamentsInput{})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	output := &CompleteExpiredOutput{}

	for _, t := range active.Tournaments {
		if now.Before(t.EndTime) {
			continue
		}

		winner := ""
		if entries := rank(t); len(entries) > 0 {
			winner = entries[0].UserID
		}

		completed, err := s.tournamentRepo.CompleteTournament(ctx, &tournamentrepo.CompleteTournamentInput{
			TournamentID: t.ID,
			Winner:       winner,
			Now:          now,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to complete tournament %s: %w", t.ID, err)
		}

		s.log.Infow("tournament completed", "tournament_id", t.ID, "winner", winner)
		s.notifyResult(ctx, completed)
		output.Completed = append(output.Completed, completed)
	}

	return output, nil
}

// notifyResult pushes a result notification to every participant.
// Failures are logged, never surfaced: the completion already stuck.
func (s *service) notifyResult(ctx context.Context, t *models.Tournament) {
	for _, userID := range t.Participants {
		_, err := s.notificationRepo.AddNotification(ctx, &notificationrepo.AddNotificationInput{
			UserID:  userID,
			Type:    models.NotificationTypeTournamentResult,
			Message: t.Name,
			Data: map[string]string{
				"tournamentId":   t.ID,
				"tournamentName": t.Name,
				"winner":         t.Winner,
			},
			Now: s.clock.Now(),
		})
		if err != nil {
			s.log.Errorw("failed to push tournament result", "tournament_id", t.ID, "user_id", userID, "error", err)
		}
	}
}

// rank orders participants best first. Ties break toward whoever got
// there first, then by user ID so the order is stable.
func rank(t *models.Tournament) []*LeaderboardEntry {
	entries := make([]*LeaderboardEntry, 0, len(t.Participants))
	for _, userID := range t.Participants {
		score := t.Scores[userID]
		if score == nil {
			score = &models.TournamentScore{ModePoints: map[models.GameMode]int{}}
		}
		entries = append(entries, &LeaderboardEntry{UserID: userID, Score: score})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score.TotalPoints != b.Score.TotalPoints {
			return a.Score.TotalPoints > b.Score.TotalPoints
		}
		if !a.Score.LastUpdate.Equal(b.Score.LastUpdate) {
			return a.Score.LastUpdate.Before(b.Score.LastUpdate)
		}
		return a.UserID < b.UserID
	})

	for i, e := range entries {
		e.Rank = i + 1
	}
	return entries
}

func knownMode(mode models.GameMode) bool {
	for _, m := range models.AllGameModes {
		if m == mode {
			return true
		}
	}
	return false
}
