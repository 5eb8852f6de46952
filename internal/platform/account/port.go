package account

import "context"

// Repository defines the persistence operations for accounts
type Repository interface {
	// GetByEmail retrieves an account by normalized email.
	// Returns ErrAccountNotFound when no row matches.
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// GetByID retrieves an account by ID
	GetByID(ctx context.Context, id int64) (*Account, error)

	// UpdateCredential writes a new stored credential for the account
	UpdateCredential(ctx context.Context, id int64, credential string) error
}
