package statement

import "errors"

// ErrServiceUnavailable wraps ledger read failures surfaced to the caller.
var ErrServiceUnavailable = errors.New("service unavailable")
