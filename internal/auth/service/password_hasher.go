package service

import (
	"fmt"
	"strings"

	"github.com/allisson/go-pwdhash"
	"golang.org/x/crypto/bcrypt"

	"github.com/allisson/quiz/internal/config"
	apperrors "github.com/allisson/quiz/internal/errors"
)

const argon2idPrefix = "$argon2id$"

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// passwordHasher hashes with the configured algorithm and verifies hashes of
// either algorithm, so stored hashes keep working after the setting changes.
type passwordHasher struct {
	algorithm  string
	bcryptCost int
	argon2id   *pwdhash.PasswordHasher
}

// NewPasswordHasher creates a PasswordHasher. algorithm is "bcrypt" or
// "argon2id"; bcryptCost must be within bcrypt.MinCost and bcrypt.MaxCost.
func NewPasswordHasher(algorithm string, bcryptCost int) (PasswordHasher, error) {
	switch algorithm {
	case config.PasswordHashBcrypt, config.PasswordHashArgon2id:
	default:
		return nil, fmt.Errorf("unsupported password hash algorithm %q", algorithm)
	}

	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	argon2id, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyModerate))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create argon2id hasher")
	}

	return &passwordHasher{
		algorithm:  algorithm,
		bcryptCost: bcryptCost,
		argon2id:   argon2id,
	}, nil
}

// Hash hashes plaintext with the configured algorithm.
func (h *passwordHasher) Hash(plaintext string) (string, error) {
	if h.algorithm == config.PasswordHashArgon2id {
		hash, err := h.argon2id.Hash([]byte(plaintext))
		if err != nil {
			return "", apperrors.Wrap(err, "failed to hash password")
		}
		return hash, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.bcryptCost)
	if err != nil {
		if apperrors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.Wrap(apperrors.ErrInvalidInput, "password must be at most 72 bytes long")
		}
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// Verify dispatches on the hash prefix.
func (h *passwordHasher) Verify(plaintext, hash string) bool {
	if strings.HasPrefix(hash, argon2idPrefix) {
		ok, err := h.argon2id.Verify([]byte(plaintext), hash)
		return err == nil && ok
	}

	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(hash, prefix) {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
		}
	}

	return false
}
