package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/drinkwise/drinkwise/internal/common/clock"
	"github.com/drinkwise/drinkwise/internal/common/uuid"
	"github.com/drinkwise/drinkwise/internal/models"
	notificationrepo "github.com/drinkwise/drinkwise/internal/repositories/notification"
)

// Config holds dependencies for the notifier service
type Config struct {
	NotificationRepo notificationrepo.Repository
	Clock            clock.Clock
	UUIDGenerator    uuid.UUID
	Logger           *zap.SugaredLogger
}

type listenerEntry struct {
	userID string
	fn     Listener
}

type service struct {
	repo  notificationrepo.Repository
	clock clock.Clock
	uuid  uuid.UUID
	log   *zap.SugaredLogger

	mu        sync.RWMutex
	listeners map[string]*listenerEntry
}

// NewService creates a new notifier service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.NotificationRepo == nil {
		return nil, errors.New("notification repository cannot be nil")
	}
	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}

	return &service{
		repo:      cfg.NotificationRepo,
		clock:     cfg.Clock,
		uuid:      cfg.UUIDGenerator,
		log:       cfg.Logger,
		listeners: make(map[string]*listenerEntry),
	}, nil
}

func (s *service) Notify(ctx context.Context, input *NotifyInput) (*NotifyOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	output, err := s.repo.AddNotification(ctx, &notificationrepo.AddNotificationInput{
		UserID:  input.UserID,
		Type:    input.Type,
		Message: input.Message,
		Data:    input.Data,
		Now:     s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &NotifyOutput{Notification: output.Notification}, nil
}

// Watch drains the user's channel until ctx is done. Redis pub/sub
// can redeliver around reconnects, so delivery dedupes on the
// notification ID.
func (s *service) Watch(ctx context.Context, input *WatchInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	pubsub := s.repo.Subscribe(ctx, &notificationrepo.SubscribeInput{UserID: input.UserID})
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}

	delivered := make(map[string]bool)
	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			var n models.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				s.log.Errorw("dropping malformed notification", "user_id", input.UserID, "error", err)
				continue
			}

			if n.ID == "" || delivered[n.ID] {
				continue
			}
			delivered[n.ID] = true

			s.deliver(input.UserID, Render(&n))

			if err := s.repo.MarkDisplayed(ctx, &notificationrepo.MarkDisplayedInput{
				NotificationID: n.ID,
				Now:            s.clock.Now(),
			}); err != nil {
				s.log.Errorw("failed to mark notification displayed", "notification_id", n.ID, "error", err)
			}
		}
	}
}

func (s *service) deliver(userID string, rendered *Rendered) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, entry := range s.listeners {
		if entry.userID == userID {
			entry.fn(rendered)
		}
	}
}

func (s *service) Listen(userID string, fn Listener) string {
	token := s.uuid.NewUUID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[token] = &listenerEntry{userID: userID, fn: fn}
	return token
}

func (s *service) Unlisten(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, token)
}

func (s *service) GetInbox(ctx context.Context, input *GetInboxInput) (*GetInboxOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	stored, err := s.repo.GetNotifications(ctx, &notificationrepo.GetNotificationsInput{
		UserID:     input.UserID,
		UnreadOnly: input.UnreadOnly,
		Limit:      input.Limit,
	})
	if err != nil {
		return nil, err
	}

	rendered := make([]*Rendered, 0, len(stored.Notifications))
	for _, n := range stored.Notifications {
		rendered = append(rendered, Render(n))
	}

	return &GetInboxOutput{Notifications: rendered}, nil
}

func (s *service) MarkRead(ctx context.Context, input *MarkReadInput) error {
	if input == nil || input.NotificationID == "" {
		return errors.New("input and notification ID cannot be empty")
	}

	return s.repo.MarkRead(ctx, &notificationrepo.MarkReadInput{
		NotificationID: input.NotificationID,
		Now:            s.clock.Now(),
	})
}

func (s *service) MarkAllRead(ctx context.Context, input *MarkAllReadInput) (*MarkAllReadOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	output, err := s.repo.MarkAllRead(ctx, &notificationrepo.MarkAllReadInput{
		UserID: input.UserID,
		Now:    s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &MarkAllReadOutput{Marked: output.Marked}, nil
}
