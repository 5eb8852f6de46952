package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kavishzap/native-wallet/internal/platform/account"
)

// AccountRepository implements account.Repository against the native_users
// table.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, email, fname, lname, phone, nic, password, card_url, amount, created_at`

// GetByEmail retrieves an account by normalized email. Email is the
// case-insensitive comparison key, so the match runs on the lowered column.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM native_users
		WHERE LOWER(email) = $1
		LIMIT 1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*account.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM native_users
		WHERE id = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// UpdateCredential writes a new stored credential for the account
func (r *AccountRepository) UpdateCredential(ctx context.Context, id int64, credential string) error {
	query := `UPDATE native_users SET password = $2 WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, credential)
	if err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}

	if result.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}

func (r *AccountRepository) scanOne(row pgx.Row) (*account.Account, error) {
	var (
		acc     account.Account
		fname   sql.NullString
		lname   sql.NullString
		phone   sql.NullString
		nic     sql.NullString
		cardURL sql.NullString
		amount  sql.NullFloat64
	)

	err := row.Scan(
		&acc.ID,
		&acc.Email,
		&fname,
		&lname,
		&phone,
		&nic,
		&acc.Credential,
		&cardURL,
		&amount,
		&acc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	acc.FirstName = fname.String
	acc.LastName = lname.String
	acc.Phone = phone.String
	acc.NationalID = nic.String
	if cardURL.Valid {
		acc.CardURL = &cardURL.String
	}
	if amount.Valid {
		acc.Balance = &amount.Float64
	}

	return &acc, nil
}
