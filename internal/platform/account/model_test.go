package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccount_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		acc  Account
		want string
	}{
		{
			name: "full name",
			acc:  Account{FirstName: "Kavish", LastName: "Zap", Email: "k@z.com"},
			want: "Kavish Zap",
		},
		{
			name: "first name only",
			acc:  Account{FirstName: "Kavish", Email: "k@z.com"},
			want: "Kavish",
		},
		{
			name: "last name only",
			acc:  Account{LastName: "Zap", Email: "k@z.com"},
			want: "Zap",
		},
		{
			name: "whitespace names fall back to email",
			acc:  Account{FirstName: "  ", LastName: " ", Email: "jane.doe@example.com"},
			want: "Jane.doe",
		},
		{
			name: "email local part title cased",
			acc:  Account{Email: "alice@example.com"},
			want: "Alice",
		},
		{
			name: "already capitalized local part",
			acc:  Account{Email: "Bob@example.com"},
			want: "Bob",
		},
		{
			name: "empty everything",
			acc:  Account{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.acc.DisplayName())
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.Com  "))
	assert.Equal(t, "a@b.com", NormalizeEmail("a@b.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "first.last@sub.example.org", "x+tag@y.io"}
	for _, e := range valid {
		assert.True(t, ValidEmail(e), e)
	}

	invalid := []string{"", "plain", "a@b", "a b@c.com", "@b.com", "a@", "a@b."}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), e)
	}
}
