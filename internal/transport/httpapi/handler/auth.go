package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kavishzap/native-wallet/internal/platform/account"
	"github.com/kavishzap/native-wallet/internal/platform/session"
	"github.com/kavishzap/native-wallet/internal/transport/httpapi/middleware"
)

// AccountServiceInterface defines the account operations needed by AuthHandler
type AccountServiceInterface interface {
	Verify(ctx context.Context, email, password string) (*account.Account, error)
	ChangePassword(ctx context.Context, email, oldPassword, newPassword, confirmPassword string) error
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	accounts AccountServiceInterface
	sessions session.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts AccountServiceInterface, sessions session.Store) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		sessions: sessions,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest represents the password change request body
type ChangePasswordRequest struct {
	Email           string `json:"email"`
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginResponse represents the successful login response
type LoginResponse struct {
	Token   string       `json:"token"`
	Account *AccountInfo `json:"account"`
}

// AccountInfo is the minimal account projection returned on login
type AccountInfo struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	FirstName   string  `json:"fname"`
	LastName    string  `json:"lname"`
	DisplayName string  `json:"display_name"`
	CardURL     *string `json:"card_url,omitempty"`
}

// Login handles POST /auth/login. A verified credential establishes a
// session; the token is the client's handle for protected routes.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	acc, err := h.accounts.Verify(r.Context(), req.Email, req.Password)
	if err != nil {
		respondAccountError(w, err)
		return
	}

	token, err := h.sessions.Establish(r.Context(), session.FromAccount(acc))
	if err != nil {
		respondError(w, "failed to establish session", http.StatusInternalServerError)
		return
	}

	respondJSON(w, LoginResponse{
		Token: token,
		Account: &AccountInfo{
			ID:          acc.ID,
			Email:       acc.Email,
			FirstName:   acc.FirstName,
			LastName:    acc.LastName,
			DisplayName: acc.DisplayName(),
			CardURL:     acc.CardURL,
		},
	}, http.StatusOK)
}

// Logout handles POST /auth/logout. The session is cleared before the
// response goes out, so the token is dead by the time the client navigates.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetSessionTokenFromContext(r.Context())
	if !ok {
		respondError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.sessions.Clear(r.Context(), token); err != nil {
		respondError(w, "failed to clear session", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangePassword handles POST /auth/password. Public: the flow re-verifies
// the old password itself, so no session is required.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.accounts.ChangePassword(r.Context(), req.Email, req.OldPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		respondAccountError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondAccountError maps the account error taxonomy onto HTTP statuses.
func respondAccountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, account.ErrInvalidEmail),
		errors.Is(err, account.ErrPasswordRequired),
		errors.Is(err, account.ErrPasswordTooShort),
		errors.Is(err, account.ErrPasswordMismatch),
		errors.Is(err, account.ErrPasswordUnchanged):
		respondError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, account.ErrAccountNotFound):
		respondError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, account.ErrInvalidCredential),
		errors.Is(err, account.ErrWrongOldPassword):
		respondError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, account.ErrServiceUnavailable):
		respondError(w, "something went wrong, please try again", http.StatusServiceUnavailable)
	default:
		respondError(w, "internal error", http.StatusInternalServerError)
	}
}
