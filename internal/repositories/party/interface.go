package party

import (
	"context"

	"github.com/drinkwise/drinkwise/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/drinkwise/drinkwise/internal/repositories/party Repository

// Repository defines the interface for party record persistence
type Repository interface {
	// CreateParty writes a new immutable party record with a generated ID
	CreateParty(ctx context.Context, input *CreatePartyInput) (*CreatePartyOutput, error)

	// GetParty retrieves a party by ID
	GetParty(ctx context.Context, input *GetPartyInput) (*models.Party, error)

	// GetPartiesForUser retrieves a user's parties ordered by end time
	GetPartiesForUser(ctx context.Context, input *GetPartiesForUserInput) (*GetPartiesForUserOutput, error)
}
