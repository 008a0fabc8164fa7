package progression

import (
	"github.com/drinkwise/drinkwise/internal/models"
	"github.com/drinkwise/drinkwise/internal/services/stats"
)

// RecordPartyInput contains parameters for folding in a party
type RecordPartyInput struct {
	// Party is the finalized, already persisted party
	Party *models.Party

	// Username updates the display name when non-empty
	Username string
}

// RecordPartyOutput reports the progression changes the party caused
type RecordPartyOutput struct {
	// Profile is the persisted post-update profile
	Profile *models.Profile

	// Stats is the recomputed aggregate
	Stats *models.Stats

	// NewBadges are the badges this party unlocked, catalog order
	NewBadges []Badge

	// LeveledUp reports whether the level increased
	LeveledUp bool
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	UserID string
}

// GetProfileOutput contains the profile with derived progression data
type GetProfileOutput struct {
	Profile *models.Profile
	Badges  []Badge
	Level   stats.LevelInfo
}

// GetStatsInput contains parameters for recomputing stats
type GetStatsInput struct {
	UserID string
}

// GetStatsOutput contains the freshly aggregated stats
type GetStatsOutput struct {
	Stats *models.Stats
}

// GetLeaderboardInput contains parameters for the XP leaderboard
type GetLeaderboardInput struct {
	// Limit caps the result count; zero means the repository default
	Limit int
}

// GetLeaderboardOutput contains profiles ordered by XP descending
type GetLeaderboardOutput struct {
	Profiles []*models.Profile
}
