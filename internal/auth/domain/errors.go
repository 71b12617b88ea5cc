package domain

import (
	"github.com/allisson/quiz/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrInvalidCredentials is returned for every failed login, whether the
	// account is unknown or the password is wrong.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrDuplicateUsername indicates the username is already registered.
	ErrDuplicateUsername = errors.Wrap(errors.ErrConflict, "username is already taken")

	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.Wrap(errors.ErrConflict, "email is already in use")

	// ErrMalformedToken indicates the token cannot be decoded or lacks required claims.
	ErrMalformedToken = errors.Wrap(errors.ErrUnauthorized, "malformed token")

	// ErrSignatureInvalid indicates the token signature does not verify.
	ErrSignatureInvalid = errors.Wrap(errors.ErrUnauthorized, "invalid token signature")

	// ErrExpired indicates the token's expiry is not after the current time.
	ErrExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrUnauthenticated indicates a protected resource was requested without a valid identity.
	ErrUnauthenticated = errors.Wrap(errors.ErrUnauthorized, "authentication required")

	// ErrForbidden indicates the identity's role is below the resource's minimum role.
	ErrForbidden = errors.Wrap(errors.ErrForbidden, "insufficient role")

	// ErrStoreUnavailable indicates the credential store failed for a reason
	// other than a missing record.
	ErrStoreUnavailable = errors.Wrap(errors.ErrUnavailable, "credential store unavailable")
)
