package party

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/drinkwise/drinkwise/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	partyKeyPrefix   = "party:"
	userPartiesIndex = "user_parties:" // zset of party IDs scored by end time
)

// ErrPartyNotFound is returned when a party is not found
var ErrPartyNotFound = errors.New("party not found")

// Config holds configuration for the Redis party repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed party repository
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

// CreateParty writes a new immutable party record with a generated ID
func (r *redisRepository) CreateParty(ctx context.Context, input *CreatePartyInput) (*CreatePartyOutput, error) {
	if input == nil || input.Party == nil {
		return nil, errors.New("input and party cannot be nil")
	}

	if input.Party.UserID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	party := input.Party
	party.ID = uuid.New().String()

	partyJSON, err := json.Marshal(party)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal party: %w", err)
	}

	pipe := r.client.Pipeline()

	partyKey := fmt.Sprintf("%s%s", partyKeyPrefix, party.ID)
	pipe.Set(ctx, partyKey, partyJSON, 0)

	// Index the party under its owner, ordered by end time
	userKey := fmt.Sprintf("%s%s", userPartiesIndex, party.UserID)
	pipe.ZAdd(ctx, userKey, redis.Z{
		Score:  float64(party.EndTime.UnixNano()),
		Member: party.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save party: %w", err)
	}

	return &CreatePartyOutput{Party: party}, nil
}

// GetParty retrieves a party by ID from Redis
func (r *redisRepository) GetParty(ctx context.Context, input *GetPartyInput) (*models.Party, error) {
	if input == nil || input.PartyID == "" {
		return nil, errors.New("input and party ID cannot be empty")
	}

	partyKey := fmt.Sprintf("%s%s", partyKeyPrefix, input.PartyID)
	partyJSON, err := r.client.Get(ctx, partyKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPartyNotFound
		}
		return nil, fmt.Errorf("failed to get party: %w", err)
	}

	var party models.Party
	if err := json.Unmarshal([]byte(partyJSON), &party); err != nil {
		return nil, fmt.Errorf("failed to unmarshal party: %w", err)
	}

	return &party, nil
}

// GetPartiesForUser retrieves a user's parties ordered by end time
func (r *redisRepository) GetPartiesForUser(ctx context.Context, input *GetPartiesForUserInput) (*GetPartiesForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userKey := fmt.Sprintf("%s%s", userPartiesIndex, input.UserID)
	partyIDs, err := r.client.ZRange(ctx, userKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get party IDs: %w", err)
	}

	if len(partyIDs) == 0 {
		return &GetPartiesForUserOutput{
			Parties: []*models.Party{},
		}, nil
	}

	pipe := r.client.Pipeline()
	partyCommands := make(map[string]*redis.StringCmd, len(partyIDs))

	for _, partyID := range partyIDs {
		partyKey := fmt.Sprintf("%s%s", partyKeyPrefix, partyID)
		partyCommands[partyID] = pipe.Get(ctx, partyKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get parties: %w", err)
	}

	parties := make([]*models.Party, 0, len(partyIDs))
	for _, partyID := range partyIDs {
		partyJSON, err := partyCommands[partyID].Result()
		if err != nil {
			if err == redis.Nil {
				// Party was deleted between reading the index and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get party %s: %w", partyID, err)
		}

		var party models.Party
		if err := json.Unmarshal([]byte(partyJSON), &party); err != nil {
			return nil, fmt.Errorf("failed to unmarshal party %s: %w", partyID, err)
		}

		parties = append(parties, &party)
	}

	return &GetPartiesForUserOutput{Parties: parties}, nil
}
