package profile

import (
	"context"

	"github.com/drinkwise/drinkwise/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/drinkwise/drinkwise/internal/repositories/profile Repository

// Repository defines the interface for user profile persistence
type Repository interface {
	// SaveProfile upserts the profile document and the XP leaderboard entry
	SaveProfile(ctx context.Context, input *SaveProfileInput) error

	// GetProfile retrieves a profile by user ID
	GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error)

	// AddBadges unions badge IDs into the user's unlock set. The set
	// only ever grows; re-adding is a no-op.
	AddBadges(ctx context.Context, input *AddBadgesInput) (*AddBadgesOutput, error)

	// GetBadges retrieves the user's unlocked badge IDs
	GetBadges(ctx context.Context, input *GetBadgesInput) (*GetBadgesOutput, error)

	// SavePublicStats upserts the leaderboard-facing stats snapshot
	SavePublicStats(ctx context.Context, input *SavePublicStatsInput) error

	// GetTopProfiles retrieves the highest-XP profiles, best first
	GetTopProfiles(ctx context.Context, input *GetTopProfilesInput) (*GetTopProfilesOutput, error)
}
