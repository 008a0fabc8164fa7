package notifier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/drinkwise/drinkwise/internal/models"
	notificationrepo "github.com/drinkwise/drinkwise/internal/repositories/notification"
)

type ServiceTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    notificationrepo.Repository
	service Service
}

func (s *ServiceTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	s.repo, err = notificationrepo.NewRedis(&notificationrepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.service, err = NewService(&Config{NotificationRepo: s.repo})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

// collector gathers deliveries across goroutines.
type collector struct {
	mu       sync.Mutex
	received []*Rendered
}

func (c *collector) listener(r *Rendered) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.received = append(c.received, r)
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.received)
}

func (c *collector) first() *Rendered {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.received[0]
}

// watch runs the delivery loop in the background until the returned
// cancel is called.
func (s *ServiceTestSuite) watch(userID string) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})

	go func() {
		close(ready)
		_ = s.service.Watch(ctx, &WatchInput{UserID: userID})
	}()
	<-ready
	// Give the subscription a beat to establish
	time.Sleep(50 * time.Millisecond)
	return cancel
}

func (s *ServiceTestSuite) TestWatchDeliversToListener() {
	c := &collector{}
	s.service.Listen("user-1", c.listener)

	cancel := s.watch("user-1")
	defer cancel()

	_, err := s.service.Notify(context.Background(), &NotifyInput{
		UserID: "user-1",
		Type:   models.NotificationTypeBadgeUnlock,
		Data:   map[string]string{"badgeName": "Sommelier"},
	})
	s.Require().NoError(err)

	s.Eventually(func() bool { return c.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	s.Equal("🎖️ Nouveau Badge", c.first().Title)
}

func (s *ServiceTestSuite) TestWatchMarksDisplayed() {
	cancel := s.watch("user-1")
	defer cancel()

	output, err := s.service.Notify(context.Background(), &NotifyInput{
		UserID:  "user-1",
		Type:    models.NotificationTypeLike,
		Message: "hello",
	})
	s.Require().NoError(err)

	s.Eventually(func() bool {
		stored, err := s.repo.GetNotifications(context.Background(), &notificationrepo.GetNotificationsInput{
			UserID: "user-1",
		})
		s.Require().NoError(err)
		return len(stored.Notifications) == 1 && stored.Notifications[0].Displayed
	}, 2*time.Second, 10*time.Millisecond)

	s.NotEmpty(output.Notification.ID)
}

func (s *ServiceTestSuite) TestUnlistenStopsDelivery() {
	c := &collector{}
	token := s.service.Listen("user-1", c.listener)
	s.service.Unlisten(token)

	cancel := s.watch("user-1")
	defer cancel()

	_, err := s.service.Notify(context.Background(), &NotifyInput{
		UserID:  "user-1",
		Type:    models.NotificationTypeLike,
		Message: "hello",
	})
	s.Require().NoError(err)

	time.Sleep(200 * time.Millisecond)
	s.Zero(c.count())
}

func (s *ServiceTestSuite) TestListenersAreScopedToUser() {
	c1, c2 := &collector{}, &collector{}
	s.service.Listen("user-1", c1.listener)
	s.service.Listen("user-2", c2.listener)

	cancel := s.watch("user-1")
	defer cancel()

	_, err := s.service.Notify(context.Background(), &NotifyInput{
		UserID:  "user-1",
		Type:    models.NotificationTypeLike,
		Message: "hello",
	})
	s.Require().NoError(err)

	s.Eventually(func() bool { return c1.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	s.Zero(c2.count())
}

func (s *ServiceTestSuite) TestInboxAndReadState() {
	ctx := context.Background()

	first, err := s.service.Notify(ctx, &NotifyInput{
		UserID: "user-1",
		Type:   models.NotificationTypeComment,
		Data:   map[string]string{"userName": "Max", "content": "santé"},
	})
	s.Require().NoError(err)
	_, err = s.service.Notify(ctx, &NotifyInput{
		UserID:  "user-1",
		Type:    models.NotificationTypeLike,
		Message: "x",
	})
	s.Require().NoError(err)

	inbox, err := s.service.GetInbox(ctx, &GetInboxInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Require().Len(inbox.Notifications, 2)

	s.Require().NoError(s.service.MarkRead(ctx, &MarkReadInput{NotificationID: first.Notification.ID}))

	unread, err := s.service.GetInbox(ctx, &GetInboxInput{UserID: "user-1", UnreadOnly: true})
	s.Require().NoError(err)
	s.Require().Len(unread.Notifications, 1)

	marked, err := s.service.MarkAllRead(ctx, &MarkAllReadInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(1, marked.Marked)
}
