package notification

import (
	"context"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/drinkwise/drinkwise/internal/repositories/notification Repository

// Repository defines the interface for notification persistence and
// the push channel the dispatcher listens on.
type Repository interface {
	// AddNotification stores a notification and publishes it on the
	// recipient's channel
	AddNotification(ctx context.Context, input *AddNotificationInput) (*AddNotificationOutput, error)

	// GetNotifications retrieves a user's notifications, newest first
	GetNotifications(ctx context.Context, input *GetNotificationsInput) (*GetNotificationsOutput, error)

	// MarkDisplayed records that the dispatcher surfaced a notification
	MarkDisplayed(ctx context.Context, input *MarkDisplayedInput) error

	// MarkRead records that the user opened a notification
	MarkRead(ctx context.Context, input *MarkReadInput) error

	// MarkAllRead marks every unread notification for the user
	MarkAllRead(ctx context.Context, input *MarkAllReadInput) (*MarkAllReadOutput, error)

	// Subscribe opens the push channel for a user's notifications
	Subscribe(ctx context.Context, input *SubscribeInput) *redis.PubSub
}
