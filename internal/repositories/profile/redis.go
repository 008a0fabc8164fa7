package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/drinkwise/drinkwise/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	profileKeyPrefix     = "profile:"
	badgesKeyPrefix      = "badges:"
	publicStatsKeyPrefix = "public_stats:"
	xpLeaderboardKey     = "leaderboard:xp"
)

// ErrProfileNotFound is returned when a profile is not found
var ErrProfileNotFound = errors.New("profile not found")

// Config holds configuration for the Redis profile repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed profile repository
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

// SaveProfile upserts the profile document and the XP leaderboard entry
func (r *redisRepository) SaveProfile(ctx context.Context, input *SaveProfileInput) error {
	if input == nil || input.Profile == nil {
		return errors.New("input and profile cannot be nil")
	}

	if input.Profile.UserID == "" {
		return errors.New("user ID cannot be empty")
	}

	profileJSON, err := json.Marshal(input.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, profileKeyPrefix+input.Profile.UserID, profileJSON, 0)
	pipe.ZAdd(ctx, xpLeaderboardKey, redis.Z{
		Score:  float64(input.Profile.XP),
		Member: input.Profile.UserID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a profile by user ID from Redis
func (r *redisRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	profileJSON, err := r.client.Get(ctx, profileKeyPrefix+input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var p models.Profile
	if err := json.Unmarshal([]byte(profileJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &p, nil
}

// AddBadges unions badge IDs into the user's unlock set. Stored as a
// Redis set mutated only through SADD, the persisted unlock set cannot
// shrink no matter what the evaluator reports later.
func (r *redisRepository) AddBadges(ctx context.Context, input *AddBadgesInput) (*AddBadgesOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if len(input.BadgeIDs) == 0 {
		return &AddBadgesOutput{Added: 0}, nil
	}

	members := make([]interface{}, 0, len(input.BadgeIDs))
	for _, id := range input.BadgeIDs {
		members = append(members, id)
	}

	added, err := r.client.SAdd(ctx, badgesKeyPrefix+input.UserID, members...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to add badges: %w", err)
	}

	return &AddBadgesOutput{Added: int(added)}, nil
}

// GetBadges retrieves the user's unlocked badge IDs
func (r *redisRepository) GetBadges(ctx context.Context, input *GetBadgesInput) (*GetBadgesOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	badgeIDs, err := r.client.SMembers(ctx, badgesKeyPrefix+input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get badges: %w", err)
	}

	return &GetBadgesOutput{BadgeIDs: badgeIDs}, nil
}

// SavePublicStats upserts the leaderboard-facing stats snapshot
func (r *redisRepository) SavePublicStats(ctx context.Context, input *SavePublicStatsInput) error {
	if input == nil || input.UserID == "" || input.Stats == nil {
		return errors.New("input, user ID and stats cannot be empty")
	}

	statsJSON, err := json.Marshal(input.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := r.client.Set(ctx, publicStatsKeyPrefix+input.UserID, statsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save public stats: %w", err)
	}

	return nil
}

// GetTopProfiles retrieves the highest-XP profiles, best first
func (r *redisRepository) GetTopProfiles(ctx context.Context, input *GetTopProfilesInput) (*GetTopProfilesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	userIDs, err := r.client.ZRevRange(ctx, xpLeaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	profiles := make([]*models.Profile, 0, len(userIDs))
	for _, userID := range userIDs {
		p, err := r.GetProfile(ctx, &GetProfileInput{UserID: userID})
		if err != nil {
			if errors.Is(err, ErrProfileNotFound) {
				continue
			}
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return &GetTopProfilesOutput{Profiles: profiles}, nil
}
