package utils

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// Bcrypt work factors. Signup and profile updates use the higher factor,
// administrative resets the lower one.
const (
	HashCost      = 11
	AdminHashCost = 10
)

// SpecialCharacters is the accepted special character set for passwords
const SpecialCharacters = "!@#$%^&*()-_=+[]{};:,.<>?"

// ValidatePasswordPolicy checks the password policy: 8-20 characters with at
// least one uppercase letter, one lowercase letter, one digit and one special
// character. The returned error names the rule that was broken.
func ValidatePasswordPolicy(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", models.ErrValidation)
	}
	if len(password) > 20 {
		return fmt.Errorf("%w: password must be at most 20 characters long", models.ErrValidation)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(SpecialCharacters, r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("%w: password must contain an uppercase letter", models.ErrValidation)
	}
	if !hasLower {
		return fmt.Errorf("%w: password must contain a lowercase letter", models.ErrValidation)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain a digit", models.ErrValidation)
	}
	if !hasSpecial {
		return fmt.Errorf("%w: password must contain a special character", models.ErrValidation)
	}

	return nil
}

// HashPassword hashes a password with the given bcrypt cost
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword reports whether the password matches the stored hash.
// bcrypt performs the comparison in constant time.
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
