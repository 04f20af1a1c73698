package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"juan.dela.cruz+tag@example.edu.ph", true},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidEmail(tt.email), "email %q", tt.email)
	}
}

func TestIsValidMobileNumber(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"09171234567", true},
		{"09000000000", true},
		{"0917123456", false},   // ten digits
		{"091712345678", false}, // twelve digits
		{"08171234567", false},  // wrong prefix
		{"+639171234567", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidMobileNumber(tt.number), "number %q", tt.number)
	}
}

func TestIsValidGender(t *testing.T) {
	assert.True(t, IsValidGender("male"))
	assert.True(t, IsValidGender("female"))
	assert.True(t, IsValidGender("other"))
	assert.False(t, IsValidGender("MALE"))
	assert.False(t, IsValidGender(""))
	assert.False(t, IsValidGender("unknown"))
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Abc123", true},
		{"xY9", true}, // length is checked separately
		{"abc123", false},
		{"ABC123", false},
		{"Abcdef", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsStrongPassword(tt.password), "password %q", tt.password)
	}
}

func TestErrors_Accumulate(t *testing.T) {
	verrs := &Errors{}
	assert.False(t, verrs.HasErrors())

	verrs.Add("email", "Invalid email address")
	verrs.Add("password", "Password must be at least 6 characters")

	assert.True(t, verrs.HasErrors())
	assert.Len(t, verrs.Violations, 2)
	assert.Contains(t, verrs.Error(), "email: Invalid email address")
	assert.Contains(t, verrs.Error(), "password: Password must be at least 6 characters")
}
