package tournament

import (
	"context"
	"sync"
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

func (s *RedisRepositoryTestSuite) createTournament(maxParticipants int) *models.Tournament {
	output, err := s.repo.CreateTournament(context.Background(), &CreateTournamentInput{
		Name:            "Tournoi du week-end",
		CreatorID:       "creator-1",
		Modes:           []models.GameMode{models.GameModeModeration, models.GameModeParty},
		StartTime:       s.testNow,
		EndTime:         s.testNow.Add(48 * time.Hour),
		MaxParticipants: maxParticipants,
	})
	s.Require().NoError(err)
	return output.Tournament
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetTournament() {
	created := s.createTournament(10)
	s.Require().NotEmpty(created.ID)

	retrieved, err := s.repo.GetTournament(context.Background(), &GetTournamentInput{
		TournamentID: created.ID,
	})
	s.Require().NoError(err)

	s.Equal("Tournoi du week-end", retrieved.Name)
	s.Equal(models.TournamentStatusActive, retrieved.Status)
	s.Empty(retrieved.Participants)
	s.True(retrieved.HasMode(models.GameModeParty))
	s.False(retrieved.HasMode(models.GameModeExplorer))
}

func (s *RedisRepositoryTestSuite) TestAddParticipant() {
	created := s.createTournament(2)

	err := s.repo.AddParticipant(context.Background(), &AddParticipantInput{
		TournamentID: created.ID,
		UserID:       "user-1",
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetTournament(context.Background(), &GetTournamentInput{
		TournamentID: created.ID,
	})
	s.Require().NoError(err)
	s.Equal([]string{"user-1"}, retrieved.Participants)
	s.Require().NotNil(retrieved.Scores["user-1"])
	s.Equal(0, retrieved.Scores["user-1"].TotalPoints)
}

func (s *RedisRepositoryTestSuite) TestAddParticipantAlreadyJoined() {
	created := s.createTournament(2)

	err := s.repo.AddParticipant(context.Background(), &AddParticipantInput{
		TournamentID: created.ID,
		UserID:       "user-1",
	})
	s.Require().NoError(err)

	err = s.repo.AddParticipant(context.Background(), &AddParticipantInput{
		TournamentID: created.ID,
		UserID:       "user-1",
	})
	s.Equal(ErrAlreadyJoined, err)
}

func (s *RedisRepositoryTestSuite) TestAddParticipantFull() {
	created := s.createTournament(1)

	err := s.repo.AddParticipant(context.Background(), &AddParticipantInput{
		TournamentID: created.ID,
		UserID:       "user-1",
	})
	s.Require().NoError(err)

	err = s.repo.AddParticipant(context.Background(), &AddParticipantInput{
		TournamentID: created.ID,
		UserID:       "user-2",
	})
	s.Equal(ErrTournamentFull, err)
}

func (s *RedisRepositoryTestSuite) TestAddScoreKeepsTotalsConsistent() {
	created := s.createTournament(10)

	output, err := s.repo.AddScore(context.Background(), &AddScoreInput{
		TournamentID: created.ID,
		UserID:       "user-1",
		Mode:         models.GameModeParty,
		Points:       40,
		Now:          s.testNow,
	})
	s.Require().NoError(err)
	s.Equal(40, output.Score.TotalPoints)

	output, err = s.repo.AddScore(context.Background(), &AddScoreInput{
		TournamentID: created.ID,
		UserID:       "user-1",
		Mode:         models.GameModeModeration,
		Points:       25,
		Now:          s.testNow,
	})
	s.Require().NoError(err)

	s.Equal(65, output.Score.TotalPoints)
	s.Equal(40, output.Score.ModePoints[models.GameModeParty])
	s.Equal(25, output.Score.ModePoints[models.GameModeModeration])
}

// Two participants scoring at the same time must not lose updates; the
// optimistic transaction retries instead of overwriting. A naive
// read-then-write implementation fails this test.
func (s *RedisRepositoryTestSuite) TestAddScoreConcurrentParticipants() {
	created := s.createTournament(10)

	const perUser = 20
	var wg sync.WaitGroup
	for _, userID := range []string{"user-1", "user-2"} {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			for i := 0; i < perUser; i++ {
				_, err := s.repo.AddScore(context.Background(), &AddScoreInput{
					TournamentID: created.ID,
					UserID:       userID,
					Mode:         models.GameModeParty,
					Points:       10,
					Now:          s.testNow,
				})
				s.NoError(err)
			}
		}(userID)
	}
	wg.Wait()

	retrieved, err := s.repo.GetTournament(context.Background(), &GetTournamentInput{
		TournamentID: created.ID,
	})
	s.Require().NoError(err)

	for _, userID := range []string{"user-1", "user-2"} {
		score := retrieved.Scores[userID]
		s.Require().NotNil(score)
		s.Equal(perUser*10, score.TotalPoints)

		sum := 0
		for _, pts := range score.ModePoints {
			sum += pts
		}
		s.Equal(score.TotalPoints, sum)
	}
}

func (s *RedisRepositoryTestSuite) TestCompleteTournament() {
	created := s.createTournament(10)

	completed, err := s.repo.CompleteTournament(context.Background(), &CompleteTournamentInput{
		TournamentID: created.ID,
		Winner:       "user-1",
		Now:          s.testNow.Add(48 * time.Hour),
	})
	s.Require().NoError(err)
	s.Equal(models.TournamentStatusCompleted, completed.Status)
	s.Equal("user-1", completed.Winner)

	active, err := s.repo.GetActiveTournaments(context.Background(), &GetActiveTournamentsInput{})
	s.Require().NoError(err)
	s.Empty(active.Tournaments)
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentTournament() {
	_, err := s.repo.GetTournament(context.Background(), &GetTournamentInput{
		TournamentID: "missing",
	})
	s.Equal(ErrTournamentNotFound, err)
}
