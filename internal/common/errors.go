// Package common defines shared sentinel errors used across PantryPal
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Registration / authentication errors.
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Value / input errors.
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrInvalidFieldText = errors.New("text cannot contain commas or line breaks")
	ErrInvalidInput     = errors.New("invalid input")

	// ErrUnknownHashScheme is returned when a stored password verifier
	// carries a version sentinel this build does not recognize.
	ErrUnknownHashScheme = errors.New("unknown password hash scheme")

	// ErrLocked indicates that another live instance holds the advisory
	// lock on the base directory.
	ErrLocked = errors.New("base directory is locked by another instance")
)
