package notifier

import (
	"github.com/drinkwise/drinkwise/internal/models"
)

// Listener receives rendered notifications for one user.
type Listener func(*Rendered)

// NotifyInput contains parameters for pushing a notification
type NotifyInput struct {
	UserID  string
	Type    models.NotificationType
	Message string
	Data    map[string]string
}

// NotifyOutput contains the stored notification
type NotifyOutput struct {
	Notification *models.Notification
}

// WatchInput contains parameters for the delivery loop
type WatchInput struct {
	UserID string
}

// GetInboxInput contains parameters for listing notifications
type GetInboxInput struct {
	UserID     string
	UnreadOnly bool
	Limit      int
}

// GetInboxOutput contains rendered notifications, newest first
type GetInboxOutput struct {
	Notifications []*Rendered
}

// MarkReadInput contains parameters for marking one notification read
type MarkReadInput struct {
	NotificationID string
}

// MarkAllReadInput contains parameters for the bulk read mark
type MarkAllReadInput struct {
	UserID string
}

// MarkAllReadOutput reports how many notifications were marked
type MarkAllReadOutput struct {
	Marked int
}
