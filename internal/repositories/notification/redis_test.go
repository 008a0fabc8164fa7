package notification

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/drinkwise/drinkwise/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2026, 5, 2, 23, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) addNotification(msg string, at time.Time) *models.Notification {
	output, err := s.repo.AddNotification(context.Background(), &AddNotificationInput{
		UserID:  "user-1",
		Type:    models.NotificationTypeLike,
		Message: msg,
		Now:     at,
	})
	s.Require().NoError(err)
	return output.Notification
}

func (s *RedisRepositoryTestSuite) TestAddAndGetNotifications() {
	s.addNotification("first", s.testNow)
	s.addNotification("second", s.testNow.Add(time.Minute))

	output, err := s.repo.GetNotifications(context.Background(), &GetNotificationsInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Notifications, 2)

	// Newest first
	s.Equal("second", output.Notifications[0].Message)
	s.Equal("first", output.Notifications[1].Message)
	s.NotEmpty(output.Notifications[0].ID)
	s.False(output.Notifications[0].Read)
}

func (s *RedisRepositoryTestSuite) TestGetNotificationsRespectsLimit() {
	for i := 0; i < 5; i++ {
		s.addNotification("msg", s.testNow.Add(time.Duration(i)*time.Minute))
	}

	output, err := s.repo.GetNotifications(context.Background(), &GetNotificationsInput{
		UserID: "user-1",
		Limit:  3,
	})
	s.Require().NoError(err)
	s.Len(output.Notifications, 3)
}

func (s *RedisRepositoryTestSuite) TestGetNotificationsForUnknownUser() {
	output, err := s.repo.GetNotifications(context.Background(), &GetNotificationsInput{
		UserID: "nobody",
	})
	s.Require().NoError(err)
	s.Empty(output.Notifications)
}

func (s *RedisRepositoryTestSuite) TestMarkRead() {
	n := s.addNotification("hello", s.testNow)

	readAt := s.testNow.Add(time.Hour)
	err := s.repo.MarkRead(context.Background(), &MarkReadInput{
		NotificationID: n.ID,
		Now:            readAt,
	})
	s.Require().NoError(err)

	output, err := s.repo.GetNotifications(context.Background(), &GetNotificationsInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Notifications, 1)
	s.True(output.Notifications[0].Read)
	s.Equal(readAt.Unix(), output.Notifications[0].ReadAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestMarkReadMissing() {
	err := s.repo.MarkRead(context.Background(), &MarkReadInput{
		NotificationID: "nope",
		Now:            s.testNow,
	})
	s.Equal(ErrNotificationNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestMarkDisplayed() {
	n := s.addNotification("hello", s.testNow)

	err := s.repo.MarkDisplayed(context.Background(), &MarkDisplayedInput{
		NotificationID: n.ID,
		Now:            s.testNow.Add(time.Second),
	})
	s.Require().NoError(err)

	output, err := s.repo.GetNotifications(context.Background(), &GetNotificationsInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Notifications, 1)
	s.True(output.Notifications[0].Displayed)
	s.False(output.Notifications[0].Read)
}

func (s *RedisRepositoryTestSuite) TestUnreadOnlyFilter() {
	first := s.addNotification("first", s.testNow)
	s.addNotification("second", s.testNow.Add(time.Minute))

	err := s.repo.MarkRead(context.Background(), &MarkReadInput{
		NotificationID: first.ID,
		Now:            s.testNow.Add(2 * time.Minute),
	})
	s.Require().NoError(err)

	output, err := s.repo.GetNotifications(context.Background(), &GetNotificationsInput{
		UserID:     "user-1",
		UnreadOnly: true,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Notifications, 1)
	s.Equal("second", output.Notifications[0].Message)
}

func (s *RedisRepositoryTestSuite) TestMarkAllRead() {
	s.addNotification("first", s.testNow)
	s.addNotification("second", s.testNow.Add(time.Minute))
	third := s.addNotification("third", s.testNow.Add(2*time.Minute))

	err := s.repo.MarkRead(context.Background(), &MarkReadInput{
		NotificationID: third.ID,
		Now:            s.testNow.Add(3 * time.Minute),
	})
	s.Require().NoError(err)

	output, err := s.repo.MarkAllRead(context.Background(), &MarkAllReadInput{
		UserID: "user-1",
		Now:    s.testNow.Add(4 * time.Minute),
	})
	s.Require().NoError(err)
	s.Equal(2, output.Marked)

	unread, err := s.repo.GetNotifications(context.Background(), &GetNotificationsInput{
		UserID:     "user-1",
		UnreadOnly: true,
	})
	s.Require().NoError(err)
	s.Empty(unread.Notifications)
}

func (s *RedisRepositoryTestSuite) TestSubscribeReceivesPublishedNotification() {
	pubsub := s.repo.Subscribe(context.Background(), &SubscribeInput{UserID: "user-1"})
	defer pubsub.Close()

	// Confirm the subscription before publishing
	_, err := pubsub.Receive(context.Background())
	s.Require().NoError(err)

	s.addNotification("push me", s.testNow)

	select {
	case msg := <-pubsub.Channel():
		s.Contains(msg.Payload, "push me")
	case <-time.After(2 * time.Second):
		s.Fail("timed out waiting for pushed notification")
	}
}
