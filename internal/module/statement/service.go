package statement

import (
	"context"
	"fmt"
)

// Ledger is the read port for raw transaction rows. The implementation
// returns an account's rows ordered newest first.
type Ledger interface {
	ListByAccount(ctx context.Context, accountID int64) ([]RawTransaction, error)
}

// Service assembles statement pages: fetch raw rows, project, run the
// pipeline.
type Service struct {
	ledger Ledger
}

// NewService creates a new statement service
func NewService(ledger Ledger) *Service {
	return &Service{ledger: ledger}
}

// Statement returns one page of the account's projected transaction history
// for the given view state.
func (s *Service) Statement(ctx context.Context, accountID int64, state ListState) (Page, error) {
	raws, err := s.ledger.ListByAccount(ctx, accountID)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	txs := ProjectAll(raws)
	return Apply(txs, state.Filter, state.Sort, state.Direction, state.Page), nil
}
