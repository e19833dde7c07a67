// Package pantry persists pantry rows in the pantry.csv table.
package pantry

import (
	"context"

	"pantrypal/internal/models"
)

// Repository is the pantry-table contract.
type Repository interface {
	// Append writes one row for userID, creating the parent directory on
	// first use. Appends never rewrite existing rows.
	Append(ctx context.Context, userID string, item models.PantryItem) error

	// RemoveFirst rewrites the table omitting the first row whose
	// (userID, itemName) matches exactly, reporting whether one was removed.
	// An absent file yields false without creating the file.
	RemoveFirst(ctx context.Context, userID, itemName string) (bool, error)

	// ListFor returns every well-formed row owned by userID in file order.
	// Rows with the wrong field count, an unparseable quantity or date, or a
	// negative quantity are skipped.
	ListFor(ctx context.Context, userID string) ([]models.PantryItem, error)
}
