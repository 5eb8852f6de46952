// Package credential abstracts how account credentials are stored and
// compared. The legacy native_users table holds plaintext passwords; the
// Plain scheme keeps exact-match parity with it, while Bcrypt is the
// replacement for anything new.
package credential

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when the supplied password does not match the
// stored credential.
var ErrMismatch = errors.New("credential mismatch")

// Scheme hashes new credentials and compares supplied passwords against
// stored ones.
type Scheme interface {
	// Hash returns the stored representation of a password.
	Hash(password string) (string, error)

	// Compare checks a supplied password against a stored credential.
	// Returns ErrMismatch when they do not match.
	Compare(stored, supplied string) error
}

// FromName returns the scheme registered under the given config name.
func FromName(name string) (Scheme, error) {
	switch name {
	case "bcrypt":
		return Bcrypt{}, nil
	case "plain":
		return Plain{}, nil
	default:
		return nil, fmt.Errorf("unknown credential scheme %q", name)
	}
}

// Plain stores passwords verbatim and compares them in constant time.
// Exists only for behavioral parity with the legacy table.
type Plain struct{}

func (Plain) Hash(password string) (string, error) {
	return password, nil
}

func (Plain) Compare(stored, supplied string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) != 1 {
		return ErrMismatch
	}
	return nil
}

// Bcrypt stores bcrypt hashes. Compare falls back to constant-time equality
// when the stored value is not a bcrypt hash, so legacy plaintext rows keep
// working until their next password change rewrites them as hashes.
type Bcrypt struct{}

func (Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (Bcrypt) Compare(stored, supplied string) error {
	if !isBcryptHash(stored) {
		return Plain{}.Compare(stored, supplied)
	}

	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("failed to check password: %w", err)
	}
	return nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
