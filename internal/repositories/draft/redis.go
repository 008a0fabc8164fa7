package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/drinkwise/drinkwise/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis; one draft per user
	draftKeyPrefix = "draft:"
)

// ErrDraftNotFound is returned when a user has no persisted draft
var ErrDraftNotFound = errors.New("draft not found")

// Config holds configuration for the Redis draft repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed draft repository
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

// SaveDraft upserts the full draft snapshot
func (r *redisRepository) SaveDraft(ctx context.Context, input *SaveDraftInput) error {
	if input == nil || input.Draft == nil {
		return errors.New("input and draft cannot be nil")
	}

	if input.Draft.UserID == "" {
		return errors.New("user ID cannot be empty")
	}

	draftJSON, err := json.Marshal(input.Draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	draftKey := fmt.Sprintf("%s%s", draftKeyPrefix, input.Draft.UserID)
	if err := r.client.Set(ctx, draftKey, draftJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}

// UpdateDraft replaces the draft only if it still exists. A draft
// deleted by another device surfaces as ErrDraftNotFound.
func (r *redisRepository) UpdateDraft(ctx context.Context, input *UpdateDraftInput) error {
	if input == nil || input.Draft == nil {
		return errors.New("input and draft cannot be nil")
	}

	if input.Draft.UserID == "" {
		return errors.New("user ID cannot be empty")
	}

	draftJSON, err := json.Marshal(input.Draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	draftKey := fmt.Sprintf("%s%s", draftKeyPrefix, input.Draft.UserID)
	set, err := r.client.SetXX(ctx, draftKey, draftJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
	}

	if !set {
		return ErrDraftNotFound
	}

	return nil
}

// GetDraft retrieves the user's draft from Redis
func (r *redisRepository) GetDraft(ctx context.Context, input *GetDraftInput) (*models.Draft, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	draftKey := fmt.Sprintf("%s%s", draftKeyPrefix, input.UserID)
	draftJSON, err := r.client.Get(ctx, draftKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var d models.Draft
	if err := json.Unmarshal([]byte(draftJSON), &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}

	return &d, nil
}

// DeleteDraft removes the user's draft from Redis
func (r *redisRepository) DeleteDraft(ctx context.Context, input *DeleteDraftInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	draftKey := fmt.Sprintf("%s%s", draftKeyPrefix, input.UserID)
	if err := r.client.Del(ctx, draftKey).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	return nil
}
