package notifier

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/drinkwise/drinkwise/internal/services/notifier Service

// Service dispatches notifications: pushes them into the store, fans
// incoming ones out to in-process listeners exactly once, and manages
// read state.
type Service interface {
	// Notify persists a notification and publishes it to the
	// recipient's channel
	Notify(ctx context.Context, input *NotifyInput) (*NotifyOutput, error)

	// Watch subscribes to a user's channel and delivers each incoming
	// notification to the registered listeners once, marking it
	// displayed. Blocks until the context is done.
	Watch(ctx context.Context, input *WatchInput) error

	// Listen registers a delivery callback for a user. The returned
	// token unregisters it.
	Listen(userID string, fn Listener) string

	// Unlisten removes a previously registered listener
	Unlisten(token string)

	// GetInbox lists a user's stored notifications, newest first
	GetInbox(ctx context.Context, input *GetInboxInput) (*GetInboxOutput, error)

	// MarkRead marks one notification read
	MarkRead(ctx context.Context, input *MarkReadInput) error

	// MarkAllRead marks every unread notification for a user
	MarkAllRead(ctx context.Context, input *MarkAllReadInput) (*MarkAllReadOutput, error)
}
