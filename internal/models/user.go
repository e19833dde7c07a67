// Package models holds the PantryPal domain value types.
package models

// User is one row of the user table. Records are created once and never
// mutated.
type User struct {
	ID             string // 16-char alphanumeric
	Username       string
	HashedPassword string // base64 digest, optionally version-sentinel tagged
	Salt           string // base64, 16 bytes decoded
}
