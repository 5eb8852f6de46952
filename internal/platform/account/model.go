package account

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Account represents a row of the native_users table. Everything except the
// credential is read-only from this service's perspective.
type Account struct {
	ID         int64
	Email      string
	FirstName  string
	LastName   string
	Phone      string
	NationalID string
	Credential string
	CardURL    *string
	Balance    *float64
	CreatedAt  time.Time
}

// DisplayName derives the name shown on the dashboard: first and last name
// when present, otherwise the email local part with its first letter
// upper-cased.
func (a *Account) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(a.FirstName) + " " + strings.TrimSpace(a.LastName))
	if name != "" {
		return name
	}

	local := a.Email
	if idx := strings.Index(local, "@"); idx >= 0 {
		local = local[:idx]
	}
	if local == "" {
		return ""
	}

	runes := []rune(local)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// emailRegex is the local@domain.tld shape check applied before any lookup.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims whitespace and lowercases; this is the comparison key
// for account lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether a normalized email passes the shape check.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
