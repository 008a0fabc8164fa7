package draft

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

func (s *RedisRepositoryTestSuite) testDraft() *models.Draft {
	return &models.Draft{
		UserID:    "user-1",
		StartTime: s.testNow,
		Drinks: []*models.DrinkEntry{
			{Type: "Bière", Quantity: 3, AddedAt: s.testNow},
		},
		Events:    map[string]int{models.EventVomi: 0},
		Category:  "Soirée",
		Status:    models.DraftStatusDraft,
		LastSaved: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetDraft() {
	err := s.repo.SaveDraft(context.Background(), &SaveDraftInput{
		Draft: s.testDraft(),
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetDraft(context.Background(), &GetDraftInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)

	s.Equal("user-1", retrieved.UserID)
	s.Equal(models.DraftStatusDraft, retrieved.Status)
	s.Require().Len(retrieved.Drinks, 1)
	s.Equal(3, retrieved.Drinks[0].Quantity)
}

func (s *RedisRepositoryTestSuite) TestSaveDraftIsIdempotentUpsert() {
	d := s.testDraft()

	err := s.repo.SaveDraft(context.Background(), &SaveDraftInput{Draft: d})
	s.Require().NoError(err)

	d.Drinks[0].Quantity = 5
	d.LastSaved = s.testNow.Add(10 * time.Second)

	err = s.repo.SaveDraft(context.Background(), &SaveDraftInput{Draft: d})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetDraft(context.Background(), &GetDraftInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Equal(5, retrieved.Drinks[0].Quantity)
	s.Equal(d.LastSaved.Unix(), retrieved.LastSaved.Unix())
}

func (s *RedisRepositoryTestSuite) TestUpdateDraftMissing() {
	err := s.repo.UpdateDraft(context.Background(), &UpdateDraftInput{
		Draft: s.testDraft(),
	})
	s.Require().Error(err)
	s.Equal(ErrDraftNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestUpdateDraftAfterConcurrentDelete() {
	d := s.testDraft()

	err := s.repo.SaveDraft(context.Background(), &SaveDraftInput{Draft: d})
	s.Require().NoError(err)

	err = s.repo.UpdateDraft(context.Background(), &UpdateDraftInput{Draft: d})
	s.Require().NoError(err)

	// Another device ends the session
	err = s.repo.DeleteDraft(context.Background(), &DeleteDraftInput{UserID: "user-1"})
	s.Require().NoError(err)

	err = s.repo.UpdateDraft(context.Background(), &UpdateDraftInput{Draft: d})
	s.Equal(ErrDraftNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentDraft() {
	_, err := s.repo.GetDraft(context.Background(), &GetDraftInput{
		UserID: "nobody",
	})
	s.Require().Error(err)
	s.Equal(ErrDraftNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestDeleteDraft() {
	err := s.repo.SaveDraft(context.Background(), &SaveDraftInput{
		Draft: s.testDraft(),
	})
	s.Require().NoError(err)

	err = s.repo.DeleteDraft(context.Background(), &DeleteDraftInput{UserID: "user-1"})
	s.Require().NoError(err)

	_, err = s.repo.GetDraft(context.Background(), &GetDraftInput{UserID: "user-1"})
	s.Equal(ErrDraftNotFound, err)
}
