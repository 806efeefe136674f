// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"spoolmeter/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash generates a salted hash from a plaintext device secret.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt generate")
	}

	return string(bytes), nil
}

// Check compares a plaintext secret with a bcrypt hash.
func (h *bcryptHasher) Check(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
