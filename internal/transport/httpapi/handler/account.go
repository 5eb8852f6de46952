package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/kavishzap/native-wallet/internal/platform/account"
	"github.com/kavishzap/native-wallet/internal/transport/httpapi/middleware"
)

// AccountReaderInterface defines the account read operations needed by AccountHandler
type AccountReaderInterface interface {
	GetByID(ctx context.Context, id int64) (*account.Account, error)
}

// AccountHandler serves the dashboard profile card
type AccountHandler struct {
	accounts AccountReaderInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts AccountReaderInterface) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// ProfileResponse is the dashboard profile projection: display name,
// activation card and balance, never the credential.
type ProfileResponse struct {
	ID          int64    `json:"id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"fname"`
	LastName    string   `json:"lname"`
	DisplayName string   `json:"display_name"`
	Phone       string   `json:"phone,omitempty"`
	NationalID  string   `json:"nic,omitempty"`
	CardURL     *string  `json:"card_url,omitempty"`
	Balance     *float64 `json:"balance,omitempty"`
	MemberSince string   `json:"member_since"`
}

// GetProfile handles GET /account
func (h *AccountHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		respondError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	acc, err := h.accounts.GetByID(r.Context(), sess.AccountID)
	if err != nil {
		respondAccountError(w, err)
		return
	}

	respondJSON(w, ProfileResponse{
		ID:          acc.ID,
		Email:       acc.Email,
		FirstName:   acc.FirstName,
		LastName:    acc.LastName,
		DisplayName: acc.DisplayName(),
		Phone:       acc.Phone,
		NationalID:  acc.NationalID,
		CardURL:     acc.CardURL,
		Balance:     acc.Balance,
		MemberSince: acc.CreatedAt.UTC().Format(time.RFC3339),
	}, http.StatusOK)
}
