package models

import (
	"time"
)

// Event counter names tracked on every party. Free-form keys are
// allowed alongside these.
const (
	// EventVomi counts how many times the user threw up
	EventVomi = "vomi"

	// EventFights counts fights the user got into
	EventFights = "fights"

	// EventGirlsTalkedTo counts people the user talked to
	EventGirlsTalkedTo = "girlsTalkedTo"

	// EventRecal counts times the user got turned down
	EventRecal = "recal"
)

// DrinkEntry is one drink type consumed during a party
type DrinkEntry struct {
	// Type is the drink type (Bière, Vin, Cocktail, ...)
	Type string

	// Brand is the optional brand within the type
	Brand string

	// Quantity is how many were consumed. Always positive in a stored
	// entry; entries that reach zero are removed.
	Quantity int

	// AddedAt is when the entry was first logged
	AddedAt time.Time
}

// Party represents one completed nightlife session. Immutable once
// written.
type Party struct {
	// ID is the unique identifier for the party
	ID string

	// UserID is the owner of the party
	UserID string

	// StartTime is when the session started
	StartTime time.Time

	// EndTime is when the session was finalized
	EndTime time.Time

	// Drinks are the consumed drinks, merged by type
	Drinks []*DrinkEntry

	// Events are named counters (vomi, fights, ...)
	Events map[string]int

	// Location is the free-text place of the party
	Location string

	// Category is the party category (Bar, Clubbing, Maison, ...)
	Category string

	// Notes are free-text user notes
	Notes string

	// Description is an optional longer write-up
	Description string

	// Photos are URLs of attached photos
	Photos []string

	// Companions are user IDs of friends who were there
	Companions []string

	// Mood is the user's rating of the night (excellent, great, ...)
	Mood string

	// TransportMode is how the user planned to get home
	TransportMode string
}

// TotalDrinks returns the summed quantity over all drink entries.
func (p *Party) TotalDrinks() int {
	total := 0
	for _, d := range p.Drinks {
		total += d.Quantity
	}
	return total
}

// EventCount returns a named event counter, zero when absent.
func (p *Party) EventCount(name string) int {
	if p.Events == nil {
		return 0
	}
	return p.Events[name]
}
