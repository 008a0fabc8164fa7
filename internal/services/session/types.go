package session

import (
	"time"

	"github.com/drinkwise/drinkwise/internal/models"
	"github.com/drinkwise/drinkwise/internal/services/progression"
)

// StartInput contains parameters for opening a draft
type StartInput struct {
	UserID string
}

// StartOutput contains the fresh draft
type StartOutput struct {
	Draft *DraftSnapshot
}

// ResumeInput contains parameters for rehydrating a draft
type ResumeInput struct {
	UserID string
}

// ResumeOutput contains the rehydrated draft
type ResumeOutput struct {
	Draft *DraftSnapshot
}

// AddDrinkInput contains parameters for merging a drink
type AddDrinkInput struct {
	UserID   string
	Type     string
	Brand    string
	Quantity int
}

// RemoveDrinkInput contains parameters for decrementing a drink
type RemoveDrinkInput struct {
	UserID   string
	Type     string
	Quantity int
}

// AddEventInput contains parameters for bumping an event counter
type AddEventInput struct {
	UserID string
	Name   string
	Delta  int
}

// SetDetailsInput contains parameters for updating draft details.
// Empty fields are left untouched.
type SetDetailsInput struct {
	UserID   string
	Location string
	Category string
	Notes    string
}

// GetInput contains parameters for reading the live draft
type GetInput struct {
	UserID string
}

// DiscardInput contains parameters for dropping a draft
type DiscardInput struct {
	UserID string
}

// FinalizeInput contains parameters for committing a draft as a party
type FinalizeInput struct {
	UserID string

	// Username updates the profile display name when non-empty
	Username string

	// Location, Category and Notes override the draft values when
	// non-empty
	Location string
	Category string
	Notes    string

	// Description, Photos, Companions, Mood and TransportMode are
	// collected on the finalize form and only exist on the party
	Description   string
	Photos        []string
	Companions    []string
	Mood          string
	TransportMode string
}

// FinalizeOutput contains the committed party and the progression
// changes it caused. Nil when there was no draft to finalize.
type FinalizeOutput struct {
	Party       *models.Party
	Progression *progression.RecordPartyOutput
}

// DraftSnapshot is a read-only copy of the live draft
type DraftSnapshot struct {
	UserID    string
	StartTime time.Time
	Drinks    []models.DrinkEntry
	Events    map[string]int
	Location  string
	Category  string
	Notes     string
	LastSaved time.Time
}

// TotalDrinks returns the summed quantity over all drink entries.
func (d *DraftSnapshot) TotalDrinks() int {
	total := 0
	for _, drink := range d.Drinks {
		total += drink.Quantity
	}
	return total
}
