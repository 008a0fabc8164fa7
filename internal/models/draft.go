package models

import (
	"time"
)

// DraftStatus is the persistence status of a draft
type DraftStatus string

const (
	// DraftStatusDraft marks an in-progress draft
	DraftStatusDraft DraftStatus = "draft"
)

// Draft is the in-progress party for a user. At most one exists per
// user at any time; its existence means party mode is active.
type Draft struct {
	// UserID is the owner and the singleton key
	UserID string

	// StartTime is when the session started
	StartTime time.Time

	// Drinks are the drinks logged so far, merged by type
	Drinks []*DrinkEntry

	// Events are named counters (vomi, fights, ...)
	Events map[string]int

	// Location is the free-text place, settable during the session
	Location string

	// Category is the party category
	Category string

	// Notes are free-text user notes
	Notes string

	// Status is always DraftStatusDraft while persisted
	Status DraftStatus

	// LastSaved is the time of the last successful persist
	LastSaved time.Time
}
