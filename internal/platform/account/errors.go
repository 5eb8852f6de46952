package account

import "errors"

// Account flow errors. Validation errors are resolved locally and never
// reach the repository; the rest map one-to-one onto the HTTP responses.
var (
	ErrInvalidEmail       = errors.New("enter a valid email address")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("new password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("new passwords do not match")
	ErrPasswordUnchanged  = errors.New("new password must differ from the current one")
	ErrAccountNotFound    = errors.New("no account found with this email")
	ErrInvalidCredential  = errors.New("incorrect password")
	ErrWrongOldPassword   = errors.New("current password is incorrect")
	ErrServiceUnavailable = errors.New("service unavailable")
)
