package validation

import (
	"regexp"
	"unicode"
)

// Field rule constants
var (
	// EmailPattern matches a well-formed email address.
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// MobileNumberPattern matches a Philippine mobile number: 09 followed by
	// exactly nine digits.
	MobileNumberPattern = `^09[0-9]{9}$`

	// BirthdateLayout is the wire format for calendar dates.
	BirthdateLayout = "2006-01-02"

	// StudentIDLength is the exact length of a student identifier.
	StudentIDLength = 8

	// PasswordMinLength is the minimum password length.
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns.
var CompiledPatterns = struct {
	Email        *regexp.Regexp
	MobileNumber *regexp.Regexp
}{
	Email:        regexp.MustCompile(EmailPattern),
	MobileNumber: regexp.MustCompile(MobileNumberPattern),
}

// validGenders is the closed set of accepted gender values.
var validGenders = map[string]struct{}{
	"male":   {},
	"female": {},
	"other":  {},
}

// IsValidEmail reports whether the value is a well-formed email address.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidMobileNumber reports whether the value is a valid Philippine mobile
// number.
func IsValidMobileNumber(number string) bool {
	return CompiledPatterns.MobileNumber.MatchString(number)
}

// IsValidGender reports whether the value is one of male, female or other.
func IsValidGender(gender string) bool {
	_, ok := validGenders[gender]
	return ok
}

// IsStrongPassword reports whether the password contains at least one
// lowercase letter, one uppercase letter and one digit. Length is checked
// separately against PasswordMinLength.
func IsStrongPassword(password string) bool {
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}
