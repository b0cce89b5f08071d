// Package auth provides password hashing and access token handling for the
// HTTP layer. The application core only sees the small hasher and verifier
// interfaces, so it stays free of crypto concerns.
package auth

import (
	"milkround/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes and verifies passwords with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher using the default bcrypt cost.
func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash returns the bcrypt hash of the plain-text password.
func (h BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// Verify compares a stored hash against a plain-text candidate.
func (h BcryptHasher) Verify(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errs.NewNotAuthorizedErrorWithCause("verify password", err)
	}

	return nil
}
