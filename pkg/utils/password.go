package utils

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// passwordSymbols is the punctuation set the password policy accepts.
const passwordSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

const minPasswordLength = 8

// HashPassword generates a bcrypt hash from a plain text password.
// bcrypt embeds a random per-hash salt, so hashing the same password
// twice yields different strings that both verify.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// ComparePassword compares a bcrypt hashed password with plain text password.
// A malformed hash simply fails the comparison.
func ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// ValidatePasswordPolicy enforces the registration password policy:
// at least 8 characters with one digit, one uppercase letter, one
// lowercase letter and one punctuation symbol.
func ValidatePasswordPolicy(password string) error {
	// Characters, not bytes: multi-byte runes count once.
	if utf8.RuneCountInString(password) < minPasswordLength {
		return errors.New("Password must be at least 8 characters long")
	}

	var hasDigit, hasUpper, hasLower, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	switch {
	case !hasDigit:
		return errors.New("Password must contain at least one digit")
	case !hasUpper:
		return errors.New("Password must contain at least one uppercase letter")
	case !hasLower:
		return errors.New("Password must contain at least one lowercase letter")
	case !hasSymbol:
		return errors.New("Password must contain at least one symbol")
	}

	return nil
}
