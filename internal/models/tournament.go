package models

import (
	"time"
)

// GameMode is one of the five disjoint tournament scoring rule sets
type GameMode string

const (
	// GameModeModeration rewards pacing, non-alcoholic intake and
	// responsible planning
	GameModeModeration GameMode = "moderation"

	// GameModeExplorer rewards new drinks, venues and documentation
	GameModeExplorer GameMode = "explorer"

	// GameModeSocial rewards organizing, gathering and including people
	GameModeSocial GameMode = "social"

	// GameModeBalanced rewards an even mix of moderation, exploration
	// and social activity
	GameModeBalanced GameMode = "balanced"

	// GameModeParty rewards volume, endurance and creative mixes
	GameModeParty GameMode = "party"
)

// AllGameModes lists every known mode.
var AllGameModes = []GameMode{
	GameModeModeration,
	GameModeExplorer,
	GameModeSocial,
	GameModeBalanced,
	GameModeParty,
}

// TournamentStatus is the lifecycle state of a tournament
type TournamentStatus string

const (
	// TournamentStatusActive indicates scoring is open
	TournamentStatusActive TournamentStatus = "active"

	// TournamentStatusCompleted indicates the tournament ended and is
	// read-only
	TournamentStatusCompleted TournamentStatus = "completed"
)

// TournamentScore is one participant's running score.
// Invariant: TotalPoints == sum of ModePoints values.
type TournamentScore struct {
	// TotalPoints is the running total across modes
	TotalPoints int

	// ModePoints is the per-mode running total
	ModePoints map[GameMode]int

	// LastUpdate is when the score last changed
	LastUpdate time.Time
}

// Tournament is a multi-user competition over a fixed time window.
// Shared-mutable across participants; all score mutation goes through
// an atomic read-modify-write in the repository.
type Tournament struct {
	// ID is the unique identifier for the tournament
	ID string

	// Name is the display name, never empty
	Name string

	// CreatorID is the user who created the tournament
	CreatorID string

	// Modes are the game modes allowed in this tournament
	Modes []GameMode

	// StartTime and EndTime bound the competition window
	StartTime time.Time
	EndTime   time.Time

	// MaxParticipants caps the participant list
	MaxParticipants int

	// Participants is the append-only list of joined user IDs
	Participants []string

	// Scores maps user ID to their running score
	Scores map[string]*TournamentScore

	// Status is the lifecycle state
	Status TournamentStatus

	// Winner is the user with the highest total, set on completion
	Winner string

	// CreatedAt is when the tournament was created
	CreatedAt time.Time

	// UpdatedAt is when the tournament was last written
	UpdatedAt time.Time
}

// HasMode reports whether the tournament allows the given mode.
func (t *Tournament) HasMode(mode GameMode) bool {
	for _, m := range t.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// HasParticipant reports whether the user already joined.
func (t *Tournament) HasParticipant(userID string) bool {
	for _, id := range t.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
