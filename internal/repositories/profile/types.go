package profile

import "github.com/drinkwise/drinkwise/internal/models"

// SaveProfileInput contains parameters for upserting a profile
type SaveProfileInput struct {
	Profile *models.Profile
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	UserID string
}

// AddBadgesInput contains parameters for unioning badge unlocks
type AddBadgesInput struct {
	UserID   string
	BadgeIDs []string
}

// AddBadgesOutput reports how many badges were newly added
type AddBadgesOutput struct {
	Added int
}

// GetBadgesInput contains parameters for reading the unlock set
type GetBadgesInput struct {
	UserID string
}

// GetBadgesOutput contains the unlocked badge IDs
type GetBadgesOutput struct {
	BadgeIDs []string
}

// SavePublicStatsInput contains parameters for the public stats snapshot
type SavePublicStatsInput struct {
	UserID string
	Stats  *models.Stats
}

// GetTopProfilesInput contains parameters for the XP leaderboard
type GetTopProfilesInput struct {
	Limit int
}

// GetTopProfilesOutput contains profiles ordered by XP descending
type GetTopProfilesOutput struct {
	Profiles []*models.Profile
}
