// Package secret hashes and verifies shared secrets such as internal API keys.
package secret

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultCost = bcrypt.DefaultCost
)

var (
	ErrEmptySecret   = errors.New("secret cannot be empty")
	ErrInvalidSecret = errors.New("invalid secret")
)

// Hash generates a bcrypt hash of the secret.
func Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}

	return string(bytes), nil
}

// Verify checks the secret against a bcrypt hash.
func Verify(secret, hash string) error {
	if secret == "" || hash == "" {
		return ErrInvalidSecret
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidSecret
		}

		return fmt.Errorf("failed to verify secret: %w", err)
	}

	return nil
}
