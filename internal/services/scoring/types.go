package scoring

import (
	"time"

	"github.com/drinkwise/drinkwise/internal/models"
)

// CreateTournamentInput contains parameters for opening a tournament
type CreateTournamentInput struct {
	Name            string
	CreatorID       string
	Modes           []models.GameMode
	StartTime       time.Time
	EndTime         time.Time
	MaxParticipants int

	// CreatorJoins also adds the creator as the first participant
	CreatorJoins bool
}

// CreateTournamentOutput contains the created tournament
type CreateTournamentOutput struct {
	Tournament *models.Tournament
}

// JoinTournamentInput contains parameters for joining
type JoinTournamentInput struct {
	TournamentID string
	UserID       string
}

// ScorePartyInput contains parameters for scoring a finalized party
type ScorePartyInput struct {
	TournamentID string
	UserID       string
	Mode         models.GameMode
	Party        *models.Party
	Signals      *Signals
}

// ScorePartyOutput contains the points awarded and the running score
type ScorePartyOutput struct {
	// Points is the total awarded for this party
	Points int

	// Breakdown maps scoring category to points awarded
	Breakdown Breakdown

	// Score is the participant's running score after the merge
	Score *models.TournamentScore
}

// GetTournamentInput contains parameters for retrieving a tournament
type GetTournamentInput struct {
	TournamentID string
}

// GetTournamentOutput contains the tournament
type GetTournamentOutput struct {
	Tournament *models.Tournament
}

// GetActiveTournamentsOutput contains all active tournaments
type GetActiveTournamentsOutput struct {
	Tournaments []*models.Tournament
}

// GetLeaderboardInput contains parameters for ranking participants
type GetLeaderboardInput struct {
	TournamentID string
}

// LeaderboardEntry is one ranked participant
type LeaderboardEntry struct {
	Rank   int
	UserID string
	Score  *models.TournamentScore
}

// GetLeaderboardOutput contains entries ordered best first
type GetLeaderboardOutput struct {
	Tournament *models.Tournament
	Entries    []*LeaderboardEntry
}

// CompleteExpiredOutput contains the tournaments closed by the sweep
type CompleteExpiredOutput struct {
	Completed []*models.Tournament
}
