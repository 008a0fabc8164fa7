package models

import (
	"time"
)

// NotificationType discriminates how a notification is rendered
type NotificationType string

const (
	// NotificationTypeLike indicates someone liked the user's content
	NotificationTypeLike NotificationType = "like"

	// NotificationTypeComment indicates a new comment
	NotificationTypeComment NotificationType = "comment"

	// NotificationTypeFriendRequest indicates an incoming friend request
	NotificationTypeFriendRequest NotificationType = "friend_request"

	// NotificationTypeFriendAccepted indicates a request was accepted
	NotificationTypeFriendAccepted NotificationType = "friend_accepted"

	// NotificationTypeTournamentResult indicates a tournament completed
	NotificationTypeTournamentResult NotificationType = "tournament_result"

	// NotificationTypeBadgeUnlock indicates new badges were earned
	NotificationTypeBadgeUnlock NotificationType = "badge_unlock"
)

// Notification is a pushed document delivered to a single user.
type Notification struct {
	// ID is the unique identifier for the notification
	ID string

	// UserID is the recipient
	UserID string

	// Type drives rendering
	Type NotificationType

	// Message is a fallback body for unknown types
	Message string

	// Data carries type-specific fields (userName, content, ...)
	Data map[string]string

	// Read is set once the user opened the notification
	Read bool

	// ReadAt is when the notification was read
	ReadAt time.Time

	// Displayed is set once the dispatcher surfaced it
	Displayed bool

	// DisplayedAt is when it was surfaced
	DisplayedAt time.Time

	// CreatedAt is when the notification was pushed
	CreatedAt time.Time
}
