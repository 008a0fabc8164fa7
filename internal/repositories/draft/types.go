package draft

import "github.com/drinkwise/drinkwise/internal/models"

// SaveDraftInput contains parameters for upserting a draft
type SaveDraftInput struct {
	Draft *models.Draft
}

// UpdateDraftInput contains parameters for replacing an existing draft
type UpdateDraftInput struct {
	Draft *models.Draft
}

// GetDraftInput contains parameters for retrieving a user's draft
type GetDraftInput struct {
	UserID string
}

// DeleteDraftInput contains parameters for deleting a user's draft
type DeleteDraftInput struct {
	UserID string
}
