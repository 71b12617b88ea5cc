// Package service provides the technical services behind authentication:
// password hashing, bearer token signing and signing key loading.
package service

import (
	authDomain "github.com/allisson/quiz/internal/auth/domain"
	userDomain "github.com/allisson/quiz/internal/user/domain"
)

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them.
type PasswordHasher interface {
	// Hash returns a salted hash of plaintext. Two calls with the same input
	// return different hashes.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash using a constant-time
	// comparison. A mismatch or an unrecognized hash returns false, never an error.
	Verify(plaintext, hash string) bool
}

// TokenService issues and checks self-contained signed bearer tokens. It keeps
// no record of issued tokens.
type TokenService interface {
	// Issue signs a token for subject with iat = now and exp = now + TTL.
	Issue(subject string, role userDomain.Role) (*authDomain.IssuedToken, error)

	// ExtractSubject decodes the subject claim without checking the signature.
	// The result must not be trusted until Validate succeeds.
	ExtractSubject(token string) (string, error)

	// Verify checks signature and expiry. It returns ErrMalformedToken,
	// ErrSignatureInvalid or ErrExpired on failure.
	Verify(token string) (*authDomain.TokenClaims, error)

	// Validate reports whether token verifies and belongs to expectedSubject.
	// It fails closed and never panics.
	Validate(token, expectedSubject string) bool
}
