package profile

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

	s.testNow = time.Date(2026, 5, 2, 20, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetProfile() {
	err := s.repo.SaveProfile(context.Background(), &SaveProfileInput{
		Profile: &models.Profile{
			UserID:    "user-1",
			Username:  "Testeur",
			XP:        350,
			Level:     3,
			LevelName: "Habitué",
			UpdatedAt: s.testNow,
		},
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetProfile(context.Background(), &GetProfileInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Equal("Testeur", retrieved.Username)
	s.Equal(350, retrieved.XP)
	s.Equal(3, retrieved.Level)
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentProfile() {
	_, err := s.repo.GetProfile(context.Background(), &GetProfileInput{
		UserID: "nobody",
	})
	s.Equal(ErrProfileNotFound, err)
}

// The unlock set only grows: re-adding is a no-op and nothing ever
// removes members, so a recompute that satisfies fewer predicates
// cannot revoke a badge.
func (s *RedisRepositoryTestSuite) TestAddBadgesIsMonotonicUnion() {
	output, err := s.repo.AddBadges(context.Background(), &AddBadgesInput{
		UserID:   "user-1",
		BadgeIDs: []string{"first_party", "drinks_1"},
	})
	s.Require().NoError(err)
	s.Equal(2, output.Added)

	// Overlapping add only counts the genuinely new badge
	output, err = s.repo.AddBadges(context.Background(), &AddBadgesInput{
		UserID:   "user-1",
		BadgeIDs: []string{"drinks_1", "iron_stomach"},
	})
	s.Require().NoError(err)
	s.Equal(1, output.Added)

	badges, err := s.repo.GetBadges(context.Background(), &GetBadgesInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"first_party", "drinks_1", "iron_stomach"}, badges.BadgeIDs)
}

func (s *RedisRepositoryTestSuite) TestAddBadgesEmptyInput() {
	output, err := s.repo.AddBadges(context.Background(), &AddBadgesInput{
		UserID:   "user-1",
		BadgeIDs: nil,
	})
	s.Require().NoError(err)
	s.Equal(0, output.Added)
}

func (s *RedisRepositoryTestSuite) TestGetTopProfilesOrderedByXP() {
	for _, p := range []*models.Profile{
		{UserID: "user-1", Username: "Premier", XP: 900},
		{UserID: "user-2", Username: "Second", XP: 1500},
		{UserID: "user-3", Username: "Troisième", XP: 100},
	} {
		err := s.repo.SaveProfile(context.Background(), &SaveProfileInput{Profile: p})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetTopProfiles(context.Background(), &GetTopProfilesInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(output.Profiles, 2)
	s.Equal("user-2", output.Profiles[0].UserID)
	s.Equal("user-1", output.Profiles[1].UserID)
}

func (s *RedisRepositoryTestSuite) TestSavePublicStats() {
	err := s.repo.SavePublicStats(context.Background(), &SavePublicStatsInput{
		UserID: "user-1",
		Stats: &models.Stats{
			TotalParties: 4,
			TotalDrinks:  12,
		},
	})
	s.Require().NoError(err)
}
