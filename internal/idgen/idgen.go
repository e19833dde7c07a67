// Package idgen allocates the 16-character alphanumeric identifiers used as
// user ids.
package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Length is the identifier length in characters.
const Length = 16

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Allocator hands out identifiers that are unique within the process. Seed
// it with every id already present in the user table so uniqueness holds
// across restarts as well.
//
// Allocator is not safe for concurrent use; the caller serializes access.
type Allocator struct {
	used map[string]struct{}
}

// NewAllocator returns an empty Allocator.
func NewAllocator() *Allocator {
	return &Allocator{used: make(map[string]struct{})}
}

// Seed marks ids as taken.
func (a *Allocator) Seed(ids ...string) {
	for _, id := range ids {
		a.used[id] = struct{}{}
	}
}

// New returns a fresh identifier. Collisions with already-allocated ids are
// re-drawn; with a 62^16 keyspace the loop effectively runs once.
func (a *Allocator) New() (string, error) {
	for {
		id, err := randomID()
		if err != nil {
			return "", err
		}
		if _, taken := a.used[id]; taken {
			continue
		}
		a.used[id] = struct{}{}
		return id, nil
	}
}

func randomID() (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, Length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate id: %w", err)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}
