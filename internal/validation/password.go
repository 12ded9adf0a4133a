package validation

import (
	"errors"
	"strings"
)

// Punctuation accepted by the admin password policy.
const adminPasswordSpecials = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

var ErrWeakAdminPassword = errors.New(
	"Admin password must be at least 15 characters with 1 uppercase, 1 lowercase, 1 digit, and 1 special character")

// ValidateAdminPassword enforces the elevated-creation password policy: at
// least 15 characters with one lowercase letter, one uppercase letter, one
// digit and one special character, all four at once.
func ValidateAdminPassword(password string) error {
	var hasLower, hasUpper, hasDigit, hasSpecial bool

	length := 0

	for _, r := range password {
		length++

		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(adminPasswordSpecials, r):
			hasSpecial = true
		}
	}

	if length < 15 || !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return ErrWeakAdminPassword
	}

	return nil
}
