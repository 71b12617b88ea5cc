// Package domain defines the stateless authentication and authorization model:
// request identities, token claims and the role-based access policy.
package domain

import (
	"time"

	"github.com/google/uuid"

	userDomain "github.com/allisson/quiz/internal/user/domain"
)

// Identity is the authenticated principal attached to a single request.
// It lives only in the request context and is never persisted.
// UserID is carried so handlers need no second lookup.
type Identity struct {
	Subject string
	Role    userDomain.Role
	UserID  uuid.UUID
}

// TokenClaims are the verified contents of a bearer token.
type TokenClaims struct {
	Subject   string
	Role      userDomain.Role
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IssuedToken is a freshly signed bearer token.
type IssuedToken struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenTypeBearer is the only token type the service issues.
const TokenTypeBearer = "Bearer"

// RegisterInput carries a registration request. Role defaults to PLAYER when empty.
type RegisterInput struct {
	Username string
	Email    string
	Password string //nolint:gosec // plaintext only in transit, never stored or logged
	Role     userDomain.Role
}

// LoginInput carries a login request. UsernameOrEmail is treated as an email
// when it contains "@".
type LoginInput struct {
	UsernameOrEmail string
	Password        string //nolint:gosec // plaintext only in transit, never stored or logged
}

// LoginOutput is the result of a successful login. ExpiresIn is in milliseconds.
type LoginOutput struct {
	Token     string
	TokenType string
	User      *userDomain.User
	ExpiresIn int64
}
