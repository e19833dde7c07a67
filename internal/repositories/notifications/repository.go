// Package notifications persists per-user notification messages in the
// notifications.csv table.
package notifications

import "context"

// Repository is the notification-table contract.
type Repository interface {
	// Append writes one row. Messages may contain commas (the read side
	// binds the rest of the line to the message) but not line breaks.
	Append(ctx context.Context, userID, message string) error

	// ListFor returns the messages for userID in file order. An absent file
	// yields an empty result.
	ListFor(ctx context.Context, userID string) ([]string, error)

	// ClearFor rewrites the table retaining only rows owned by other users.
	ClearFor(ctx context.Context, userID string) error
}
