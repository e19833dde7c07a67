// Package users persists user records in the append-only users.csv table.
package users

import (
	"context"

	"pantrypal/internal/models"
)

// Repository is the user-table contract the rest of the application
// consumes.
type Repository interface {
	// Create registers a new user: allocates an id, salts and hashes the
	// password, and appends one row. Fails with common.ErrDuplicateUsername
	// if the username is already taken.
	Create(ctx context.Context, username, password string) (*models.User, error)

	// LoadAll reads every well-formed row. An absent file yields an empty
	// result, not an error.
	LoadAll(ctx context.Context) ([]models.User, error)

	// Authenticate returns the first user matching the exact username whose
	// stored verifier matches the password, or common.ErrInvalidCredentials.
	// Whether the username exists is never disclosed.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}
