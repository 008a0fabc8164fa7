package progression

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/drinkwise/drinkwise/internal/common/clock"
	"github.com/drinkwise/drinkwise/internal/models"
	notificationrepo "github.com/drinkwise/drinkwise/internal/repositories/notification"
	partyrepo "github.com/drinkwise/drinkwise/internal/repositories/party"
	profilerepo "github.com/drinkwise/drinkwise/internal/repositories/profile"
	"github.com/drinkwise/drinkwise/internal/services/stats"
)

// Config holds dependencies for the progression service
type Config struct {
	PartyRepo        partyrepo.Repository
	ProfileRepo      profilerepo.Repository
	NotificationRepo notificationrepo.Repository
	Clock            clock.Clock
	Logger           *zap.SugaredLogger
}

type service struct {
	partyRepo        partyrepo.Repository
	profileRepo      profilerepo.Repository
	notificationRepo notificationrepo.Repository
	clock            clock.Clock
	log              *zap.SugaredLogger
}

// NewService creates a new progression service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.PartyRepo == nil {
		return nil, errors.New("party repository cannot be nil")
	}
	if cfg.ProfileRepo == nil {
		return nil, errors.New("profile repository cannot be nil")
	}
	if cfg.NotificationRepo == nil {
		return nil, errors.New("notification repository cannot be nil")
	}
	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}

	return &service{
		partyRepo:        cfg.PartyRepo,
		profileRepo:      cfg.ProfileRepo,
		notificationRepo: cfg.NotificationRepo,
		clock:            cfg.Clock,
		log:              cfg.Logger,
	}, nil
}

func (s *service) RecordParty(ctx context.Context, input *RecordPartyInput) (*RecordPartyOutput, error) {
	if input == nil || input.Party == nil {
		return nil, errors.New("input and party cannot be nil")
	}
	if input.Party.UserID == "" {
		return nil, errors.New("party user ID cannot be empty")
	}

	userID := input.Party.UserID

	history, err := s.partyRepo.GetPartiesForUser(ctx, &partyrepo.GetPartiesForUserInput{
		UserID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load party history: %w", err)
	}

	aggregated := stats.Aggregate(history.Parties)

	newBadges, badgeTotal, err := s.unlockBadges(ctx, userID, aggregated, input.Party)
	if err != nil {
		return nil, err
	}

	profile, err := s.loadOrInitProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if input.Username != "" {
		profile.Username = input.Username
	}

	previousLevel := profile.Level

	profile.XP = stats.TotalXP(aggregated.TotalParties, aggregated.TotalDrinks, badgeTotal, 0)
	profile.Level = stats.LevelForXP(profile.XP)
	profile.LevelName = stats.LevelName(profile.Level)
	profile.TotalParties = aggregated.TotalParties
	profile.TotalDrinks = aggregated.TotalDrinks
	profile.UpdatedAt = s.clock.Now()

	applyStreak(profile, input.Party.EndTime)

	if err := s.profileRepo.SaveProfile(ctx, &profilerepo.SaveProfileInput{Profile: profile}); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	if err := s.profileRepo.SavePublicStats(ctx, &profilerepo.SavePublicStatsInput{
		UserID: userID,
		Stats:  aggregated,
	}); err != nil {
		return nil, fmt.Errorf("failed to save public stats: %w", err)
	}

	s.notifyBadges(ctx, userID, newBadges)

	leveledUp := profile.Level > previousLevel
	if leveledUp {
		s.log.Infow("level up", "user_id", userID, "level", profile.Level, "level_name", profile.LevelName)
	}

	return &RecordPartyOutput{
		Profile:   profile,
		Stats:     aggregated,
		NewBadges: newBadges,
		LeveledUp: leveledUp,
	}, nil
}

// unlockBadges diffs the satisfied badges against the stored unlock
// set and unions in the new ones. Returns the newly unlocked badges
// and the post-union unlock count.
func (s *service) unlockBadges(ctx context.Context, userID string, aggregated *models.Stats, party *models.Party) ([]Badge, int, error) {
	existing, err := s.profileRepo.GetBadges(ctx, &profilerepo.GetBadgesInput{UserID: userID})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load badges: %w", err)
	}

	unlocked := make(map[string]bool, len(existing.BadgeIDs))
	for _, id := range existing.BadgeIDs {
		unlocked[id] = true
	}

	var newBadges []Badge
	var newIDs []string
	for _, b := range Evaluate(aggregated, party) {
		if !unlocked[b.ID] {
			newBadges = append(newBadges, b)
			newIDs = append(newIDs, b.ID)
		}
	}

	if len(newIDs) > 0 {
		if _, err := s.profileRepo.AddBadges(ctx, &profilerepo.AddBadgesInput{
			UserID:   userID,
			BadgeIDs: newIDs,
		}); err != nil {
			return nil, 0, fmt.Errorf("failed to add badges: %w", err)
		}
	}

	return newBadges, len(existing.BadgeIDs) + len(newIDs), nil
}

func (s *service) loadOrInitProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetProfile(ctx, &profilerepo.GetProfileInput{UserID: userID})
	if err != nil {
		if errors.Is(err, profilerepo.ErrProfileNotFound) {
			return &models.Profile{UserID: userID, Level: 1}, nil
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile, nil
}

// notifyBadges pushes one notification per new unlock. Failures are
// logged, never surfaced: the unlock itself already happened.
func (s *service) notifyBadges(ctx context.Context, userID string, badges []Badge) {
	for _, b := range badges {
		_, err := s.notificationRepo.AddNotification(ctx, &notificationrepo.AddNotificationInput{
			UserID:  userID,
			Type:    models.NotificationTypeBadgeUnlock,
			Message: b.Name,
			Data: map[string]string{
				"badgeId":   b.ID,
				"badgeName": b.Name,
			},
			Now: s.clock.Now(),
		})
		if err != nil {
			s.log.Errorw("failed to push badge notification", "user_id", userID, "badge_id", b.ID, "error", err)
		}
	}
}

func (s *service) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	profile, err := s.profileRepo.GetProfile(ctx, &profilerepo.GetProfileInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	badgeIDs, err := s.profileRepo.GetBadges(ctx, &profilerepo.GetBadgesInput{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load badges: %w", err)
	}

	badges := make([]Badge, 0, len(badgeIDs.BadgeIDs))
	for _, b := range Catalog {
		for _, id := range badgeIDs.BadgeIDs {
			if b.ID == id {
				badges = append(badges, b)
				break
			}
		}
	}

	return &GetProfileOutput{
		Profile: profile,
		Badges:  badges,
		Level:   stats.ComputeLevelInfo(profile.XP),
	}, nil
}

func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	history, err := s.partyRepo.GetPartiesForUser(ctx, &partyrepo.GetPartiesForUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load party history: %w", err)
	}

	return &GetStatsOutput{Stats: stats.Aggregate(history.Parties)}, nil
}

func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		input = &GetLeaderboardInput{}
	}

	top, err := s.profileRepo.GetTopProfiles(ctx, &profilerepo.GetTopProfilesInput{Limit: input.Limit})
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	return &GetLeaderboardOutput{Profiles: top.Profiles}, nil
}
