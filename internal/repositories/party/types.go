package party

import "github.com/drinkwise/drinkwise/internal/models"

// CreatePartyInput contains parameters for writing a new party record
type CreatePartyInput struct {
	Party *models.Party
}

// CreatePartyOutput contains the stored party, ID assigned
type CreatePartyOutput struct {
	Party *models.Party
}

// GetPartyInput contains parameters for retrieving a party
type GetPartyInput struct {
	PartyID string
}

// GetPartiesForUserInput contains parameters for listing a user's parties
type GetPartiesForUserInput struct {
	UserID string
}

// GetPartiesForUserOutput contains the user's parties, oldest first
type GetPartiesForUserOutput struct {
	Parties []*models.Party
}
