// Package domain defines the credential entity owned by the credential store.
package domain

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/quiz/internal/errors"
)

// User is a stored credential. PasswordHash is opaque and never serialized or logged.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// LogValue implements slog.LogValuer and omits the password hash.
func (u *User) LogValue() slog.Value {
	if u == nil {
		return slog.StringValue("<nil>")
	}
	return slog.GroupValue(
		slog.String("id", u.ID.String()),
		slog.String("username", u.Username),
		slog.String("role", string(u.Role)),
	)
}

// Domain-specific errors for credential lookups.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates the username or email is already taken.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrInvalidRole indicates a role name outside PLAYER and ADMIN.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")
)
