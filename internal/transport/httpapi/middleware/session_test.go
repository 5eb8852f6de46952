package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavishzap/native-wallet/internal/platform/session"
)

func TestSessionAuth(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	token, err := store.Establish(ctx, session.Session{Authenticated: true, AccountID: 7, Email: "a@b.com"})
	require.NoError(t, err)

	var gotSess *session.Session
	var gotToken string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSess, _ = GetSessionFromContext(r.Context())
		gotToken, _ = GetSessionTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := SessionAuth(store)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	assert.Equal(t, int64(7), gotSess.AccountID)
	assert.Equal(t, token, gotToken)
}

func TestSessionAuth_ClearedTokenRejected(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	token, err := store.Establish(ctx, session.Session{Authenticated: true, AccountID: 7})
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx, token))

	protected := SessionAuth(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a cleared session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_UnauthenticatedSession(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	token, err := store.Establish(ctx, session.Session{Authenticated: false, AccountID: 7})
	require.NoError(t, err)

	protected := SessionAuth(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for an unauthenticated session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
