package tournament

import (
	"time"

	"github.com/drinkwise/drinkwise/internal/models"
)

// CreateTournamentInput contains parameters for creating a tournament
type CreateTournamentInput struct {
	Name            string
	CreatorID       string
	Modes           []models.GameMode
	StartTime       time.Time
	EndTime         time.Time
	MaxParticipants int
}

// CreateTournamentOutput contains the stored tournament
type CreateTournamentOutput struct {
	Tournament *models.Tournament
}

// GetTournamentInput contains parameters for retrieving a tournament
type GetTournamentInput struct {
	TournamentID string
}

// GetActiveTournamentsInput contains parameters for listing active tournaments
type GetActiveTournamentsInput struct{}

// GetActiveTournamentsOutput contains all active tournaments
type GetActiveTournamentsOutput struct {
	Tournaments []*models.Tournament
}

// AddParticipantInput contains parameters for joining a tournament
type AddParticipantInput struct {
	TournamentID string
	UserID       string
}

// AddScoreInput contains parameters for merging points into a score
type AddScoreInput struct {
	TournamentID string
	UserID       string
	Mode         models.GameMode
	Points       int
	// Now stamps the score's LastUpdate
	Now time.Time
}

// AddScoreOutput contains the participant's score after the merge
type AddScoreOutput struct {
	Score *models.TournamentScore
}

// CompleteTournamentInput contains parameters for closing a tournament
type CompleteTournamentInput struct {
	TournamentID string
	Winner       string
	Now          time.Time
}
