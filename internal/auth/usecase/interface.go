// Package usecase implements registration, login and per-request token
// authentication on top of a credential store.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/quiz/internal/auth/domain"
	userDomain "github.com/allisson/quiz/internal/user/domain"
)

// CredentialStore is the persistence collaborator holding user credentials.
// Lookups return userDomain.ErrUserNotFound when no record matches; any other
// error means the store itself failed.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*userDomain.User, error)
	FindByEmail(ctx context.Context, email string) (*userDomain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)

	// Save inserts a new credential. It returns userDomain.ErrUserAlreadyExists
	// when a unique constraint is violated.
	Save(ctx context.Context, user *userDomain.User) error

	// UpdateRole changes the role of an existing credential.
	UpdateRole(ctx context.Context, id uuid.UUID, role userDomain.Role) error
}

// AuthUseCase verifies credentials, issues tokens and turns bearer tokens back
// into request identities. It holds no per-session state.
type AuthUseCase interface {
	// Register validates input and creates a credential. Uniqueness of the
	// username and then the email is checked before the password is hashed.
	// It returns ErrDuplicateUsername, ErrDuplicateEmail or an ErrInvalidInput
	// wrapped validation error listing every violated field.
	Register(ctx context.Context, input *authDomain.RegisterInput) (*userDomain.User, error)

	// Login checks a username-or-email and password pair and issues exactly one
	// token on success. Unknown accounts and wrong passwords both return
	// ErrInvalidCredentials.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error)

	// Authenticate resolves a bearer token into an Identity whose role comes
	// from the stored credential. It returns ErrMalformedToken,
	// ErrSignatureInvalid, ErrExpired, ErrUnauthenticated or ErrStoreUnavailable.
	Authenticate(ctx context.Context, token string) (*authDomain.Identity, error)

	// Profile returns the stored credential behind an authenticated identity.
	// It returns userDomain.ErrUserNotFound when the account no longer exists.
	Profile(ctx context.Context, userID uuid.UUID) (*userDomain.User, error)

	// SetRole changes the role of the credential identified by username.
	SetRole(ctx context.Context, username string, role userDomain.Role) (*userDomain.User, error)
}
