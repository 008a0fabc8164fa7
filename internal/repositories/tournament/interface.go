package tournament

import (
	"context"

	"github.com/drinkwise/drinkwise/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/drinkwise/drinkwise/internal/repositories/tournament Repository

// Repository defines the interface for tournament persistence.
// Tournaments are shared-mutable documents; every mutation that reads
// before writing runs as an optimistic transaction so concurrent
// participants cannot lose updates.
type Repository interface {
	// CreateTournament writes a new tournament with a generated ID
	CreateTournament(ctx context.Context, input *CreateTournamentInput) (*CreateTournamentOutput, error)

	// GetTournament retrieves a tournament by ID
	GetTournament(ctx context.Context, input *GetTournamentInput) (*models.Tournament, error)

	// GetActiveTournaments retrieves all tournaments still open for scoring
	GetActiveTournaments(ctx context.Context, input *GetActiveTournamentsInput) (*GetActiveTournamentsOutput, error)

	// AddParticipant appends a user with a zero-initialized score entry
	AddParticipant(ctx context.Context, input *AddParticipantInput) error

	// AddScore merges a point total into a participant's running score.
	// TotalPoints and ModePoints[mode] move together or not at all.
	AddScore(ctx context.Context, input *AddScoreInput) (*AddScoreOutput, error)

	// CompleteTournament marks a tournament completed with its winner
	CompleteTournament(ctx context.Context, input *CompleteTournamentInput) (*models.Tournament, error)
}
