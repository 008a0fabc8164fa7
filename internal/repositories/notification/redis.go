package notification

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
	notificationKeyPrefix = "notification:"
	userNotificationsIdx  = "user_notifications:" // zset of IDs scored by creation time
	notifyChannelPrefix   = "notify:"

	// defaultLimit caps listings when the caller does not
	defaultLimit = 20
)

// ErrNotificationNotFound is returned when a notification is not found
var ErrNotificationNotFound = errors.New("notification not found")

// Config holds configuration for the Redis notification repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed notification repository
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

// Channel returns the push channel name for a user.
func Channel(userID string) string {
	return notifyChannelPrefix + userID
}

// AddNotification stores a notification and publishes it on the
// recipient's channel
func (r *redisRepository) AddNotification(ctx context.Context, input *AddNotificationInput) (*AddNotificationOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		Type:      input.Type,
		Message:   input.Message,
		Data:      input.Data,
		CreatedAt: input.Now,
	}

	notificationJSON, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, notificationKeyPrefix+n.ID, notificationJSON, 0)
	pipe.ZAdd(ctx, userNotificationsIdx+n.UserID, redis.Z{
		Score:  float64(n.CreatedAt.UnixNano()),
		Member: n.ID,
	})
	pipe.Publish(ctx, Channel(n.UserID), notificationJSON)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save notification: %w", err)
	}

	return &AddNotificationOutput{Notification: n}, nil
}

// GetNotifications retrieves a user's notifications, newest first
func (r *redisRepository) GetNotifications(ctx context.Context, input *GetNotificationsInput) (*GetNotificationsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	// Over-fetch when filtering unread so the limit still applies to
	// the filtered result
	fetch := int64(limit - 1)
	if input.UnreadOnly {
		fetch = -1
	}

	ids, err := r.client.ZRevRange(ctx, userNotificationsIdx+input.UserID, 0, fetch).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get notification IDs: %w", err)
	}

	notifications := make([]*models.Notification, 0, len(ids))
	for _, id := range ids {
		n, err := r.getNotification(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotificationNotFound) {
				continue
			}
			return nil, err
		}

		if input.UnreadOnly && n.Read {
			continue
		}

		notifications = append(notifications, n)
		if len(notifications) >= limit {
			break
		}
	}

	return &GetNotificationsOutput{Notifications: notifications}, nil
}

// MarkDisplayed records that the dispatcher surfaced a notification
func (r *redisRepository) MarkDisplayed(ctx context.Context, input *MarkDisplayedInput) error {
	if input == nil || input.NotificationID == "" {
		return errors.New("input and notification ID cannot be empty")
	}

	n, err := r.getNotification(ctx, input.NotificationID)
	if err != nil {
		return err
	}

	n.Displayed = true
	n.DisplayedAt = input.Now
	return r.putNotification(ctx, n)
}

// MarkRead records that the user opened a notification
func (r *redisRepository) MarkRead(ctx context.Context, input *MarkReadInput) error {
	if input == nil || input.NotificationID == "" {
		return errors.New("input and notification ID cannot be empty")
	}

	n, err := r.getNotification(ctx, input.NotificationID)
	if err != nil {
		return err
	}

	n.Read = true
	n.ReadAt = input.Now
	return r.putNotification(ctx, n)
}

// MarkAllRead marks every unread notification for the user
func (r *redisRepository) MarkAllRead(ctx context.Context, input *MarkAllReadInput) (*MarkAllReadOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	ids, err := r.client.ZRange(ctx, userNotificationsIdx+input.UserID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get notification IDs: %w", err)
	}

	marked := 0
	for _, id := range ids {
		n, err := r.getNotification(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotificationNotFound) {
				continue
			}
			return nil, err
		}

		if n.Read {
			continue
		}

		n.Read = true
		n.ReadAt = input.Now
		if err := r.putNotification(ctx, n); err != nil {
			return nil, err
		}
		marked++
	}

	return &MarkAllReadOutput{Marked: marked}, nil
}

// Subscribe opens the push channel for a user's notifications
func (r *redisRepository) Subscribe(ctx context.Context, input *SubscribeInput) *redis.PubSub {
	return r.client.Subscribe(ctx, Channel(input.UserID))
}

func (r *redisRepository) getNotification(ctx context.Context, id string) (*models.Notification, error) {
	notificationJSON, err := r.client.Get(ctx, notificationKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	var n models.Notification
	if err := json.Unmarshal([]byte(notificationJSON), &n); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
	}

	return &n, nil
}

func (r *redisRepository) putNotification(ctx context.Context, n *models.Notification) error {
	notificationJSON, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := r.client.Set(ctx, notificationKeyPrefix+n.ID, notificationJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return nil
}
