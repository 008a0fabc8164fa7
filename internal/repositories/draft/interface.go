package draft

import (
	"context"

	"github.com/drinkwise/drinkwise/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/drinkwise/drinkwise/internal/repositories/draft Repository

// Repository defines the interface for party draft persistence.
// Drafts are singletons keyed by user ID.
type Repository interface {
	// SaveDraft upserts the full draft snapshot
	SaveDraft(ctx context.Context, input *SaveDraftInput) error

	// UpdateDraft replaces the draft only if it still exists, returning
	// ErrDraftNotFound when it was deleted concurrently
	UpdateDraft(ctx context.Context, input *UpdateDraftInput) error

	// GetDraft retrieves the user's draft
	GetDraft(ctx context.Context, input *GetDraftInput) (*models.Draft, error)

	// DeleteDraft removes the user's draft
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) error
}
