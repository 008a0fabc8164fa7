package scoring

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/drinkwise/drinkwise/internal/services/scoring Service

// Service runs tournaments: creation, joining, per-party scoring and
// completion.
type Service interface {
	// CreateTournament opens a new tournament for the given window
	CreateTournament(ctx context.Context, input *CreateTournamentInput) (*CreateTournamentOutput, error)

	// JoinTournament adds a user to an active tournament
	JoinTournament(ctx context.Context, input *JoinTournamentInput) error

	// ScoreParty runs a mode's rules over a finalized party and merges
	// the points into the participant's running score
	ScoreParty(ctx context.Context, input *ScorePartyInput) (*ScorePartyOutput, error)

	// GetTournament retrieves a tournament by ID
	GetTournament(ctx context.Context, input *GetTournamentInput) (*GetTournamentOutput, error)

	// GetActiveTournaments lists tournaments still open for scoring
	GetActiveTournaments(ctx context.Context) (*GetActiveTournamentsOutput, error)

	// GetLeaderboard ranks a tournament's participants by total points
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// CompleteExpired closes every active tournament whose window has
	// passed, decides winners and notifies participants
	CompleteExpired(ctx context.Context) (*CompleteExpiredOutput, error)
}
