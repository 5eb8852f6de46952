package handler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/kavishzap/native-wallet/internal/module/statement"
	"github.com/kavishzap/native-wallet/internal/transport/httpapi/middleware"
)

// StatementServiceInterface defines the statement read operations
type StatementServiceInterface interface {
	Statement(ctx context.Context, accountID int64, state statement.ListState) (statement.Page, error)
}

// StatementHandler serves the paginated transaction history
type StatementHandler struct {
	statements StatementServiceInterface
}

// NewStatementHandler creates a new statement handler
func NewStatementHandler(statements StatementServiceInterface) *StatementHandler {
	return &StatementHandler{statements: statements}
}

// StatementRowResponse is one rendered transaction row
type StatementRowResponse struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	DisplayAmount string  `json:"display_amount"`
}

// StatementResponse is one page of the statement plus the effective view
// state, so the client can round-trip it on the next request.
type StatementResponse struct {
	Transactions []StatementRowResponse `json:"transactions"`
	Total        int                    `json:"total"`
	Page         int                    `json:"page"`
	PageSize     int                    `json:"page_size"`
	TotalPages   int                    `json:"total_pages"`
	Filter       string                 `json:"filter"`
	Sort         string                 `json:"sort"`
	Direction    string                 `json:"direction"`
}

// GetStatement handles GET /transactions. Query params carry the client's
// current view state (filter, sort, direction, page); an optional select
// param applies the sort-column click semantics (toggle on the active
// field, descending on a new one) before the page is computed.
func (h *StatementHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		respondError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	state, err := stateFromQuery(r)
	if err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.statements.Statement(r.Context(), sess.AccountID, state)
	if err != nil {
		if errors.Is(err, statement.ErrServiceUnavailable) {
			respondError(w, "something went wrong, please try again", http.StatusServiceUnavailable)
			return
		}
		respondError(w, "internal error", http.StatusInternalServerError)
		return
	}

	rows := make([]StatementRowResponse, len(page.Rows))
	for i, tx := range page.Rows {
		rows[i] = StatementRowResponse{
			ID:            tx.ID,
			Date:          tx.Date,
			Category:      string(tx.Category),
			Amount:        tx.Amount,
			DisplayAmount: formatAmount(tx.Amount),
		}
	}

	respondJSON(w, StatementResponse{
		Transactions: rows,
		Total:        page.Total,
		Page:         page.Page,
		PageSize:     statement.PageSize,
		TotalPages:   page.TotalPages,
		Filter:       string(state.Filter),
		Sort:         string(state.Sort),
		Direction:    string(state.Direction),
	}, http.StatusOK)
}

// stateFromQuery rebuilds the view state from query params and applies the
// optional select action.
func stateFromQuery(r *http.Request) (statement.ListState, error) {
	state := statement.NewListState()
	q := r.URL.Query()

	filter, err := statement.ParseFilter(q.Get("filter"))
	if err != nil {
		return state, err
	}
	state.Filter = filter

	field, err := statement.ParseSortField(q.Get("sort"))
	if err != nil {
		return state, err
	}
	state.Sort = field

	dir, err := statement.ParseDirection(q.Get("direction"))
	if err != nil {
		return state, err
	}
	state.Direction = dir

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return state, fmt.Errorf("invalid page %q", raw)
		}
		state.SetPage(page)
	}

	if raw := q.Get("select"); raw != "" {
		selected, err := statement.ParseSortField(raw)
		if err != nil {
			return state, err
		}
		state.Select(selected)
	}

	return state, nil
}

// formatAmount renders a signed amount the way the dashboard shows it:
// explicit sign, dollar symbol, two decimals, thousands separators.
func formatAmount(amount float64) string {
	sign := "+"
	if amount < 0 {
		sign = "-"
	}

	s := strconv.FormatFloat(math.Abs(amount), 'f', 2, 64)
	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return sign + "$" + b.String() + fracPart
}
