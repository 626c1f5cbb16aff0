package security

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultBcryptCost = 12
	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

var (
	ErrWeakPassword  = errors.New("password does not meet the strength policy")
	ErrMalformedHash = errors.New("malformed password hash")
)

// PasswordHasher hashes and verifies passwords with bcrypt.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using cost, or DefaultBcryptCost when
// cost is out of bcrypt's range.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a salted bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether password matches hash. A mismatch is not an error;
// only a hash bcrypt cannot parse is.
func (h *PasswordHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}

// PasswordPolicyError explains which policy rule a password failed.
type PasswordPolicyError struct {
	Reason string
}

func (e *PasswordPolicyError) Error() string {
	return e.Reason
}

func (e *PasswordPolicyError) Is(target error) bool {
	return target == ErrWeakPassword
}

// ValidatePasswordStrength requires minLength characters, at most
// MaxPasswordBytes bytes, and an uppercase letter, a lowercase letter and a digit.
func ValidatePasswordStrength(password string, minLength int) error {
	if len([]rune(password)) < minLength {
		return &PasswordPolicyError{Reason: fmt.Sprintf("password must be at least %d characters long", minLength)}
	}
	if len(password) > MaxPasswordBytes {
		return &PasswordPolicyError{Reason: fmt.Sprintf("password must be at most %d bytes long", MaxPasswordBytes)}
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return &PasswordPolicyError{Reason: "password must contain at least one uppercase letter"}
	}
	if !hasLower {
		return &PasswordPolicyError{Reason: "password must contain at least one lowercase letter"}
	}
	if !hasDigit {
		return &PasswordPolicyError{Reason: "password must contain at least one digit"}
	}
	return nil
}
