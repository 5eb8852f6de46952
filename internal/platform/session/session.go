// Package session holds the active, authenticated account context behind
// an explicit store keyed by an opaque token, with an establish/current/clear
// lifecycle. Tokens are server-side state, so logout actually revokes them.
package session

import (
	"context"
	"errors"

	"github.com/kavishzap/native-wallet/internal/platform/account"
)

// ErrNotFound is returned when no session exists for a token. Callers treat
// it as the signal to route back to the login flow.
var ErrNotFound = errors.New("session not found")

// Session is the minimal projection of an account persisted after login.
type Session struct {
	Authenticated bool    `json:"authenticated"`
	AccountID     int64   `json:"account_id"`
	Email         string  `json:"email"`
	FirstName     string  `json:"fname"`
	LastName      string  `json:"lname"`
	CardURL       *string `json:"card_url,omitempty"`
}

// FromAccount builds the session projection for a verified account.
func FromAccount(acc *account.Account) Session {
	return Session{
		Authenticated: true,
		AccountID:     acc.ID,
		Email:         acc.Email,
		FirstName:     acc.FirstName,
		LastName:      acc.LastName,
		CardURL:       acc.CardURL,
	}
}

// Store persists sessions. Last write wins; there are no transactional
// guarantees across Establish/Clear.
type Store interface {
	// Establish persists the session and returns its opaque token.
	Establish(ctx context.Context, sess Session) (string, error)

	// Current returns the session for a token, or ErrNotFound.
	Current(ctx context.Context, token string) (*Session, error)

	// Clear removes the session for a token. Clearing an absent token is
	// not an error.
	Clear(ctx context.Context, token string) error
}
