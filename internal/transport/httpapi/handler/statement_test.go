package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavishzap/native-wallet/internal/module/statement"
	"github.com/kavishzap/native-wallet/internal/platform/session"
	"github.com/kavishzap/native-wallet/internal/transport/httpapi/middleware"
)

// stubStatementService records the state it was called with and returns a
// canned page.
type stubStatementService struct {
	gotAccountID int64
	gotState     statement.ListState
	page         statement.Page
	err          error
}

func (s *stubStatementService) Statement(ctx context.Context, accountID int64, state statement.ListState) (statement.Page, error) {
	s.gotAccountID = accountID
	s.gotState = state
	return s.page, s.err
}

func getStatement(t *testing.T, h *StatementHandler, target string, sess *session.Session) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if sess != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.SessionKey, sess))
	}
	rec := httptest.NewRecorder()
	h.GetStatement(rec, req)
	return rec
}

func TestStatementHandler_GetStatement(t *testing.T) {
	svc := &stubStatementService{
		page: statement.Page{
			Rows: []statement.Transaction{
				{ID: 2, Date: "2024-01-02", Amount: -50, Category: statement.CategoryPurchase},
				{ID: 1, Date: "2024-01-01", Amount: 100, Category: statement.CategoryTopUp},
			},
			Total:      2,
			Page:       1,
			TotalPages: 1,
		},
	}
	h := NewStatementHandler(svc)

	rec := getStatement(t, h, "/transactions", &session.Session{Authenticated: true, AccountID: 9})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), svc.gotAccountID)

	var resp StatementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Transactions, 2)
	assert.Equal(t, "-$50.00", resp.Transactions[0].DisplayAmount)
	assert.Equal(t, "+$100.00", resp.Transactions[1].DisplayAmount)
	assert.Equal(t, "All", resp.Filter)
	assert.Equal(t, "date", resp.Sort)
	assert.Equal(t, "desc", resp.Direction)
	assert.Equal(t, statement.PageSize, resp.PageSize)
}

func TestStatementHandler_GetStatement_QueryState(t *testing.T) {
	svc := &stubStatementService{page: statement.Page{Page: 2, TotalPages: 3}}
	h := NewStatementHandler(svc)

	rec := getStatement(t, h,
		"/transactions?filter=Top-up&sort=amount&direction=asc&page=2",
		&session.Session{Authenticated: true, AccountID: 9})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, statement.FilterTopUp, svc.gotState.Filter)
	assert.Equal(t, statement.SortByAmount, svc.gotState.Sort)
	assert.Equal(t, statement.Ascending, svc.gotState.Direction)
	assert.Equal(t, 2, svc.gotState.Page)
}

func TestStatementHandler_GetStatement_SelectTogglesSort(t *testing.T) {
	svc := &stubStatementService{page: statement.Page{Page: 1, TotalPages: 1}}
	h := NewStatementHandler(svc)

	// Clicking the already-active descending column flips it to ascending
	// and resets the page.
	rec := getStatement(t, h,
		"/transactions?sort=amount&direction=desc&page=3&select=amount",
		&session.Session{Authenticated: true, AccountID: 9})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, statement.SortByAmount, svc.gotState.Sort)
	assert.Equal(t, statement.Ascending, svc.gotState.Direction)
	assert.Equal(t, 1, svc.gotState.Page)
}

func TestStatementHandler_GetStatement_BadQuery(t *testing.T) {
	h := NewStatementHandler(&stubStatementService{})
	sess := &session.Session{Authenticated: true, AccountID: 9}

	for _, target := range []string{
		"/transactions?filter=bogus",
		"/transactions?sort=bogus",
		"/transactions?direction=sideways",
		"/transactions?page=abc",
		"/transactions?select=bogus",
	} {
		rec := getStatement(t, h, target, sess)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestStatementHandler_GetStatement_NoSession(t *testing.T) {
	h := NewStatementHandler(&stubStatementService{})

	rec := getStatement(t, h, "/transactions", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStatementHandler_GetStatement_ServiceUnavailable(t *testing.T) {
	h := NewStatementHandler(&stubStatementService{err: statement.ErrServiceUnavailable})

	rec := getStatement(t, h, "/transactions", &session.Session{Authenticated: true, AccountID: 9})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{500, "+$500.00"},
		{-49.99, "-$49.99"},
		{0, "+$0.00"},
		{1234567.5, "+$1,234,567.50"},
		{-1000, "-$1,000.00"},
		{0.005, "+$0.01"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.amount), "%v", tt.amount)
	}
}
