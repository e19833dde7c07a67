// Package cryptox derives and verifies the password material stored in the
// user table.
//
// The on-disk format keeps the historical verifier: a single-pass
// base64(SHA-256(password ‖ salt)) digest. That digest is weak by modern
// standards but is preserved so existing users.csv files keep working. An
// opt-in upgrade path writes argon2id verifiers instead, marked with the
// "argon2id$" version sentinel; verification dispatches on that sentinel, so
// both generations of rows coexist in one table.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"pantrypal/internal/common"
)

const (
	saltSize = 16

	// argon2Prefix marks upgraded verifiers. '$' cannot occur in standard
	// base64, so legacy digests are never misread as sentinel-tagged.
	argon2Prefix = "argon2id$"

	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
)

// GenerateSalt returns base64(16 random bytes) from a cryptographically
// strong source.
func GenerateSalt() (string, error) {
	b := make([]byte, saltSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// HashLegacy computes the historical verifier:
// base64(SHA-256(password ‖ salt)). Deterministic for a given pair.
func HashLegacy(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// HashArgon2 computes the upgraded verifier, tagged with the version
// sentinel.
func HashArgon2(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return argon2Prefix + base64.StdEncoding.EncodeToString(key)
}

// Hasher produces verifiers for new accounts and checks candidates against
// stored ones.
type Hasher struct {
	useArgon2 bool
}

// NewHasher returns a Hasher. With useArgon2 set, new accounts get
// sentinel-tagged argon2id verifiers; otherwise the legacy digest is written.
func NewHasher(useArgon2 bool) *Hasher {
	return &Hasher{useArgon2: useArgon2}
}

// Hash derives the verifier to store for a new account.
func (h *Hasher) Hash(password, salt string) string {
	if h.useArgon2 {
		return HashArgon2(password, salt)
	}
	return HashLegacy(password, salt)
}

// Verify reports whether password matches the stored verifier. The scheme is
// chosen by the stored value, not by the Hasher's write mode. A verifier with
// an unrecognized sentinel yields common.ErrUnknownHashScheme.
func (h *Hasher) Verify(password, salt, stored string) (bool, error) {
	candidate := ""
	switch {
	case strings.HasPrefix(stored, argon2Prefix):
		candidate = HashArgon2(password, salt)
	case strings.Contains(stored, "$"):
		return false, fmt.Errorf("%q: %w", before(stored, "$"), common.ErrUnknownHashScheme)
	default:
		candidate = HashLegacy(password, salt)
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1, nil
}

func before(s, sep string) string {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i]
	}
	return s
}
