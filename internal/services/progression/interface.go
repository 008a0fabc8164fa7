package progression

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/drinkwise/drinkwise/internal/services/progression Service

// Service drives a user's progression: aggregated stats, badges, XP,
// levels and party-day streaks.
type Service interface {
	// RecordParty folds a just-finalized party into the user's
	// progression: recomputes stats, unlocks badges, recalculates XP
	// and level, advances the streak and persists the profile.
	RecordParty(ctx context.Context, input *RecordPartyInput) (*RecordPartyOutput, error)

	// GetProfile retrieves the profile with its unlocked badges and
	// level progression snapshot.
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// GetStats recomputes the aggregated stats from the party history.
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)

	// GetLeaderboard retrieves the top profiles by XP.
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
