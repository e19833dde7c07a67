// Package filex resolves the canonical PantryPal data directory and the
// files inside it.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirName = "PantryPal"

	usersFileName         = "users.csv"
	pantryFileName        = "pantry.csv"
	notificationsFileName = "notifications.csv"
	logFileName           = "pantrypal.log"
)

// Paths resolves file locations under a single base directory.
type Paths struct {
	base string
}

// NewPaths returns a Paths rooted at base. An empty base selects the
// canonical <user-home>/PantryPal directory.
func NewPaths(base string) (*Paths, error) {
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		base = filepath.Join(home, dirName)
	}
	return &Paths{base: base}, nil
}

// Base returns the data directory.
func (p *Paths) Base() string { return p.base }

// Users returns the location of the user table.
func (p *Paths) Users() string { return filepath.Join(p.base, usersFileName) }

// Pantry returns the location of the pantry table.
func (p *Paths) Pantry() string { return filepath.Join(p.base, pantryFileName) }

// Notifications returns the location of the notification table.
func (p *Paths) Notifications() string { return filepath.Join(p.base, notificationsFileName) }

// LogFile returns the location of the application log.
func (p *Paths) LogFile() string { return filepath.Join(p.base, logFileName) }

// EnsureBase creates the base directory if it does not exist yet.
func (p *Paths) EnsureBase() error {
	if err := os.MkdirAll(p.base, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", p.base, err)
	}
	return nil
}

// EnsureParent creates the parent directory of path if needed. Stores call
// this before their first append so a fresh home works without setup.
func EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
