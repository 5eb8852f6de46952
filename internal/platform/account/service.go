package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/kavishzap/native-wallet/internal/platform/credential"
)

// Service handles credential verification and password changes
type Service struct {
	repo   Repository
	scheme credential.Scheme
}

// NewService creates a new account service
func NewService(repo Repository, scheme credential.Scheme) *Service {
	return &Service{
		repo:   repo,
		scheme: scheme,
	}
}

// Verify checks an email/password pair against the stored account.
// On success it returns the account; establishing a session is the caller's
// responsibility. The lookup is a pure read and safe to retry.
func (s *Service) Verify(ctx context.Context, email, password string) (*Account, error) {
	email = NormalizeEmail(email)
	if !ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	acc, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	if err := s.scheme.Compare(acc.Credential, password); err != nil {
		if errors.Is(err, credential.ErrMismatch) {
			return nil, ErrInvalidCredential
		}
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	return acc, nil
}

// ChangePassword runs the linear password-change flow: validate locally,
// look up the account, re-verify the old credential, persist the new one.
// Every step is a single attempt; the first failure is terminal.
func (s *Service) ChangePassword(ctx context.Context, email, oldPassword, newPassword, confirmPassword string) error {
	email = NormalizeEmail(email)
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	if oldPassword == "" || newPassword == "" || confirmPassword == "" {
		return ErrPasswordRequired
	}
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if newPassword == oldPassword {
		return ErrPasswordUnchanged
	}

	acc, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	if err := s.scheme.Compare(acc.Credential, oldPassword); err != nil {
		if errors.Is(err, credential.ErrMismatch) {
			return ErrWrongOldPassword
		}
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	stored, err := s.scheme.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	if err := s.repo.UpdateCredential(ctx, acc.ID, stored); err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	return nil
}

// GetByID retrieves an account by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Account, error) {
	acc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	return acc, nil
}
