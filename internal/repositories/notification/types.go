package notification

import (
	"time"

	"github.com/drinkwise/drinkwise/internal/models"
)

// AddNotificationInput contains parameters for pushing a notification
type AddNotificationInput struct {
	UserID  string
	Type    models.NotificationType
	Message string
	Data    map[string]string
	Now     time.Time
}

// AddNotificationOutput contains the stored notification, ID assigned
type AddNotificationOutput struct {
	Notification *models.Notification
}

// GetNotificationsInput contains parameters for listing notifications
type GetNotificationsInput struct {
	UserID string
	// UnreadOnly filters out read notifications
	UnreadOnly bool
	// Limit caps the result count; zero means the default
	Limit int
}

// GetNotificationsOutput contains notifications, newest first
type GetNotificationsOutput struct {
	Notifications []*models.Notification
}

// MarkDisplayedInput contains parameters for the displayed mark
type MarkDisplayedInput struct {
	NotificationID string
	Now            time.Time
}

// MarkReadInput contains parameters for the read mark
type MarkReadInput struct {
	NotificationID string
	Now            time.Time
}

// MarkAllReadInput contains parameters for the bulk read mark
type MarkAllReadInput struct {
	UserID string
	Now    time.Time
}

// MarkAllReadOutput reports how many notifications were marked
type MarkAllReadOutput struct {
	Marked int
}

// SubscribeInput contains parameters for opening the push channel
type SubscribeInput struct {
	UserID string
}
