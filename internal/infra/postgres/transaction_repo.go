package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kavishzap/native-wallet/internal/module/statement"
)

// TransactionRepository implements statement.Ledger against the
// native_transactions table. Rows are immutable; this repository only reads.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new PostgreSQL transaction repository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// ListByAccount returns all of an account's transactions, newest first.
// The amount column is text, so it is handed to the projector as-is.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID int64) ([]statement.RawTransaction, error) {
	query := `
		SELECT id, account_id, type, amount, created_at
		FROM native_transactions
		WHERE account_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var raws []statement.RawTransaction
	for rows.Next() {
		var (
			raw    statement.RawTransaction
			txType sql.NullString
			amount sql.NullString
		)

		if err := rows.Scan(&raw.ID, &raw.AccountID, &txType, &amount, &raw.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		raw.Type = txType.String
		if amount.Valid {
			raw.Amount = amount.String
		}

		raws = append(raws, raw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	return raws, nil
}
