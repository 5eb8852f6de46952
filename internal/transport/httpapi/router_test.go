package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavishzap/native-wallet/internal/module/statement"
	"github.com/kavishzap/native-wallet/internal/platform/account"
	"github.com/kavishzap/native-wallet/internal/platform/credential"
	"github.com/kavishzap/native-wallet/internal/platform/session"
	"github.com/kavishzap/native-wallet/internal/transport/httpapi/handler"
	"github.com/kavishzap/native-wallet/internal/transport/httpapi/middleware"
	"github.com/kavishzap/native-wallet/pkg/logger"
)

// memAccountRepo is a minimal in-memory account.Repository for wiring the
// real services through the router.
type memAccountRepo struct {
	byEmail map[string]*account.Account
}

func (r *memAccountRepo) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	acc, ok := r.byEmail[email]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	cp := *acc
	return &cp, nil
}

func (r *memAccountRepo) GetByID(ctx context.Context, id int64) (*account.Account, error) {
	for _, acc := range r.byEmail {
		if acc.ID == id {
			cp := *acc
			return &cp, nil
		}
	}
	return nil, account.ErrAccountNotFound
}

func (r *memAccountRepo) UpdateCredential(ctx context.Context, id int64, cred string) error {
	for _, acc := range r.byEmail {
		if acc.ID == id {
			acc.Credential = cred
			return nil
		}
	}
	return account.ErrAccountNotFound
}

type memLedger struct {
	rows []statement.RawTransaction
}

func (l *memLedger) ListByAccount(ctx context.Context, accountID int64) ([]statement.RawTransaction, error) {
	var out []statement.RawTransaction
	for _, row := range l.rows {
		if row.AccountID == accountID {
			out = append(out, row)
		}
	}
	return out, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := &memAccountRepo{byEmail: map[string]*account.Account{
		"ada@example.com": {ID: 1, Email: "ada@example.com", FirstName: "Ada", Credential: "secret"},
	}}
	ledger := &memLedger{rows: []statement.RawTransaction{
		{ID: 1, AccountID: 1, Type: "top up", Amount: "500", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, AccountID: 1, Type: "coffee", Amount: "4.50", CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}}

	store := session.NewMemoryStore()
	accounts := account.NewService(repo, credential.Plain{})
	statements := statement.NewService(ledger)

	router := NewRouter(Config{
		Logger:           logger.NewDefault("test"),
		AllowedOrigins:   []string{"*"},
		AuthHandler:      handler.NewAuthHandler(accounts, store),
		AccountHandler:   handler.NewAccountHandler(accounts),
		StatementHandler: handler.NewStatementHandler(statements),
		SessionAuth:      middleware.SessionAuth(store),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, email, password string) (string, *http.Response) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(srv.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if resp.StatusCode != http.StatusOK {
		return "", resp
	}

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token, resp
}

func authedGet(t *testing.T, srv *httptest.Server, path, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRouter_LoginThenStatement(t *testing.T) {
	srv := newTestServer(t)

	token, _ := login(t, srv, "ada@example.com", "secret")

	resp := authedGet(t, srv, "/api/v1/transactions", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Transactions []struct {
			ID            int64   `json:"id"`
			Amount        float64 `json:"amount"`
			Category      string  `json:"category"`
			DisplayAmount string  `json:"display_amount"`
		} `json:"transactions"`
		Total int `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Transactions, 2)
	assert.Equal(t, 2, out.Total)

	// Newest first: the coffee purchase, negated, then the top-up.
	assert.Equal(t, int64(2), out.Transactions[0].ID)
	assert.Equal(t, "Purchase", out.Transactions[0].Category)
	assert.Equal(t, -4.5, out.Transactions[0].Amount)
	assert.Equal(t, "-$4.50", out.Transactions[0].DisplayAmount)
	assert.Equal(t, "Top-up", out.Transactions[1].Category)
	assert.Equal(t, 500.0, out.Transactions[1].Amount)
}

func TestRouter_ProtectedRoutesRequireSession(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/v1/account", "/api/v1/transactions"} {
		resp := authedGet(t, srv, path, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestRouter_LogoutRevokesToken(t *testing.T) {
	srv := newTestServer(t)

	token, _ := login(t, srv, "ada@example.com", "secret")

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/auth/logout", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	after := authedGet(t, srv, "/api/v1/account", token)
	assert.Equal(t, http.StatusUnauthorized, after.StatusCode)
}

func TestRouter_ChangePasswordThenLogin(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(map[string]string{
		"email":            "ada@example.com",
		"old_password":     "secret",
		"new_password":     "swapped1",
		"confirm_password": "swapped1",
	})
	resp, err := http.Post(srv.URL+"/api/v1/auth/password", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, failed := login(t, srv, "ada@example.com", "secret")
	assert.Equal(t, http.StatusUnauthorized, failed.StatusCode)

	token, _ := login(t, srv, "ada@example.com", "swapped1")
	assert.NotEmpty(t, token)
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
