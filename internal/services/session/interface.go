package session

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/drinkwise/drinkwise/internal/services/session Service

// Service manages live party drafts. At most one draft exists per
// user; every mutation persists synchronously before returning, and a
// background autosave covers the gaps.
type Service interface {
	// Start opens a new draft for the user
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Resume rehydrates a persisted draft after a restart. Within the
	// suppression window after a finalize or discard it reports no
	// draft instead of resurrecting a stale autosave.
	Resume(ctx context.Context, input *ResumeInput) (*ResumeOutput, error)

	// AddDrink merges a drink into the draft
	AddDrink(ctx context.Context, input *AddDrinkInput) (*DraftSnapshot, error)

	// RemoveDrink decrements a drink, dropping the entry at zero
	RemoveDrink(ctx context.Context, input *RemoveDrinkInput) (*DraftSnapshot, error)

	// AddEvent bumps a named event counter
	AddEvent(ctx context.Context, input *AddEventInput) (*DraftSnapshot, error)

	// SetDetails updates the draft's location, category and notes
	SetDetails(ctx context.Context, input *SetDetailsInput) (*DraftSnapshot, error)

	// Get returns a snapshot of the live draft
	Get(ctx context.Context, input *GetInput) (*DraftSnapshot, error)

	// Discard drops the draft without recording anything. No-op when
	// no draft exists.
	Discard(ctx context.Context, input *DiscardInput) error

	// Finalize turns the draft into an immutable party, folds it into
	// the user's progression and drops the draft. No-op when no draft
	// exists.
	Finalize(ctx context.Context, input *FinalizeInput) (*FinalizeOutput, error)

	// Close stops every autosave loop. Drafts stay persisted.
	Close()
}
