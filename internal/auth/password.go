package auth

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

var (
	// ErrPasswordTooShort is returned when the password is below the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// ErrPasswordNeedsLetter is returned when the password has no letter.
	ErrPasswordNeedsLetter = errors.New("password must contain at least one letter")
	// ErrPasswordNeedsDigit is returned when the password has no digit.
	ErrPasswordNeedsDigit = errors.New("password must contain at least one number")
	// ErrPasswordNeedsSymbol is returned when the password has no special character.
	ErrPasswordNeedsSymbol = errors.New("password must contain at least one special character")
)

// HashPassword produces a salted bcrypt digest of the plaintext.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash. A mismatch
// is a normal control-flow outcome, not an error.
func CheckPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// ValidatePasswordPolicy enforces the complexity policy before hashing:
// minimum length, at least one letter, one digit, and one symbol.
func ValidatePasswordPolicy(plaintext string) error {
	if len(plaintext) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range plaintext {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasLetter {
		return ErrPasswordNeedsLetter
	}
	if !hasDigit {
		return ErrPasswordNeedsDigit
	}
	if !hasSymbol {
		return ErrPasswordNeedsSymbol
	}
	return nil
}
