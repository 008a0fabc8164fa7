package models

import (
	"time"
)

// Profile is a user's progression document. Badges live in a separate
// append-only set; everything here is recomputed from the party
// history except the streak fields.
type Profile struct {
	// UserID is the unique identifier for the user
	UserID string

	// Username is the display name
	Username string

	// XP is the accumulated experience
	XP int

	// Level is derived from XP
	Level int

	// LevelName is the display name for the level
	LevelName string

	// TotalParties and TotalDrinks mirror the aggregated stats for
	// cheap profile rendering
	TotalParties int
	TotalDrinks  int

	// CurrentStreak is the running count of consecutive party days
	CurrentStreak int

	// LongestStreak is the high-water mark of CurrentStreak
	LongestStreak int

	// LastStreakDate is the last counted day, formatted 2006-01-02
	LastStreakDate string

	// UpdatedAt is when the profile was last written
	UpdatedAt time.Time
}
