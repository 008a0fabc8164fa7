package tournament

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/drinkwise/drinkwise/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	tournamentKeyPrefix  = "tournament:"
	activeTournamentsKey = "active_tournaments"

	// maxTxRetries bounds the optimistic transaction retry loop
	maxTxRetries = 50
)

// Errors returned by the tournament repository
var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrAlreadyJoined      = errors.New("user already joined this tournament")
	ErrTournamentFull     = errors.New("tournament is at maximum capacity")
	ErrTxConflict         = errors.New("tournament transaction kept conflicting")
)

// Config holds configuration for the Redis tournament repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed tournament repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateTournament writes a new tournament with a generated ID
func (r *redisRepository) CreateTournament(ctx context.Context, input *CreateTournamentInput) (*CreateTournamentOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Name == "" {
		return nil, errors.New("name cannot be empty")
	}

	if input.CreatorID == "" {
		return nil, errors.New("creator ID cannot be empty")
	}

	now := time.Now()
	t := &models.Tournament{
		ID:              uuid.New().String(),
		Name:            input.Name,
		CreatorID:       input.CreatorID,
		Modes:           input.Modes,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		MaxParticipants: input.MaxParticipants,
		Participants:    []string{},
		Scores:          map[string]*models.TournamentScore{},
		Status:          models.TournamentStatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	tournamentJSON, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tournament: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, tournamentKeyPrefix+t.ID, tournamentJSON, 0)
	pipe.SAdd(ctx, activeTournamentsKey, t.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save tournament: %w", err)
	}

	return &CreateTournamentOutput{Tournament: t}, nil
}

// GetTournament retrieves a tournament by ID from Redis
func (r *redisRepository) GetTournament(ctx context.Context, input *GetTournamentInput) (*models.Tournament, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	tournamentJSON, err := r.client.Get(ctx, tournamentKeyPrefix+input.TournamentID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	var t models.Tournament
	if err := json.Unmarshal([]byte(tournamentJSON), &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tournament: %w", err)
	}

	return &t, nil
}

// GetActiveTournaments retrieves all tournaments still open for scoring
func (r *redisRepository) GetActiveTournaments(ctx context.Context, input *GetActiveTournamentsInput) (*GetActiveTournamentsOutput, error) {
	tournamentIDs, err := r.client.SMembers(ctx, activeTournamentsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active tournament IDs: %w", err)
	}

	tournaments := make([]*models.Tournament, 0, len(tournamentIDs))
	for _, id := range tournamentIDs {
		t, err := r.GetTournament(ctx, &GetTournamentInput{TournamentID: id})
		if err != nil {
			if errors.Is(err, ErrTournamentNotFound) {
				continue
			}
			return nil, err
		}
		tournaments = append(tournaments, t)
	}

	return &GetActiveTournamentsOutput{Tournaments: tournaments}, nil
}

// AddParticipant appends a user with a zero-initialized score entry.
// Runs as an optimistic transaction so two joins cannot both take the
// last slot.
func (r *redisRepository) AddParticipant(ctx context.Context, input *AddParticipantInput) error {
	if input == nil || input.TournamentID == "" || input.UserID == "" {
		return errors.New("input, tournament ID and user ID cannot be empty")
	}

	return r.mutate(ctx, input.TournamentID, func(t *models.Tournament) error {
		if t.HasParticipant(input.UserID) {
			return ErrAlreadyJoined
		}

		if t.MaxParticipants > 0 && len(t.Participants) >= t.MaxParticipants {
			return ErrTournamentFull
		}

		t.Participants = append(t.Participants, input.UserID)
		if t.Scores == nil {
			t.Scores = map[string]*models.TournamentScore{}
		}
		t.Scores[input.UserID] = &models.TournamentScore{
			ModePoints: map[models.GameMode]int{},
		}
		return nil
	})
}

// AddScore merges a point total into a participant's running score.
// The total and the per-mode counter are written in one atomic
// replace; concurrent scorers retry instead of overwriting each other.
func (r *redisRepository) AddScore(ctx context.Context, input *AddScoreInput) (*AddScoreOutput, error) {
	if input == nil || input.TournamentID == "" || input.UserID == "" {
		return nil, errors.New("input, tournament ID and user ID cannot be empty")
	}

	var merged *models.TournamentScore
	err := r.mutate(ctx, input.TournamentID, func(t *models.Tournament) error {
		if t.Scores == nil {
			t.Scores = map[string]*models.TournamentScore{}
		}

		score := t.Scores[input.UserID]
		if score == nil {
			score = &models.TournamentScore{ModePoints: map[models.GameMode]int{}}
			t.Scores[input.UserID] = score
		}
		if score.ModePoints == nil {
			score.ModePoints = map[models.GameMode]int{}
		}

		score.ModePoints[input.Mode] += input.Points
		score.TotalPoints += input.Points
		score.LastUpdate = input.Now
		merged = score
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AddScoreOutput{Score: merged}, nil
}

// CompleteTournament marks a tournament completed with its winner and
// drops it from the active set.
func (r *redisRepository) CompleteTournament(ctx context.Context, input *CompleteTournamentInput) (*models.Tournament, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	var completed *models.Tournament
	err := r.mutate(ctx, input.TournamentID, func(t *models.Tournament) error {
		t.Status = models.TournamentStatusCompleted
		t.Winner = input.Winner
		t.UpdatedAt = input.Now
		completed = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := r.client.SRem(ctx, activeTournamentsKey, input.TournamentID).Err(); err != nil {
		return nil, fmt.Errorf("failed to deactivate tournament: %w", err)
	}

	return completed, nil
}

// mutate runs fn against the current tournament document inside a
// WATCH/MULTI/EXEC transaction, retrying on conflict.
func (r *redisRepository) mutate(ctx context.Context, tournamentID string, fn func(*models.Tournament) error) error {
	key := tournamentKeyPrefix + tournamentID

	txn := func(tx *redis.Tx) error {
		tournamentJSON, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrTournamentNotFound
			}
			return fmt.Errorf("failed to get tournament: %w", err)
		}

		var t models.Tournament
		if err := json.Unmarshal([]byte(tournamentJSON), &t); err != nil {
			return fmt.Errorf("failed to unmarshal tournament: %w", err)
		}

		if err := fn(&t); err != nil {
			return err
		}

		updatedJSON, err := json.Marshal(&t)
		if err != nil {
			return fmt.Errorf("failed to marshal tournament: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updatedJSON, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txn, key)
		if err == nil {
			return nil
		}
		if err == redis.TxFailedErr {
			// Another participant won the race; re-read and retry
			continue
		}
		return err
	}

	return ErrTxConflict
}
