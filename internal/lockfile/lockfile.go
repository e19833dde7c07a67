// Package lockfile guards the data directory against a second live
// instance. The persisted tables have no cross-process coordination, so the
// application fails fast instead of interleaving writes.
package lockfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"pantrypal/internal/common"
)

const lockName = "pantrypal.lock"

// Lock is a held advisory lock.
type Lock struct {
	path string
}

// Acquire creates the lock file in dir, creating dir first if needed. The
// file records the owner token and pid for post-mortem inspection. If the
// file already exists, common.ErrLocked is returned.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}

	path := filepath.Join(dir, lockName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%s: %w", path, common.ErrLocked)
		}
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s %d\n", uuid.NewString(), os.Getpid()); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	return &Lock{path: path}, nil
}

// Release removes the lock file.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", l.path, err)
	}
	return nil
}
