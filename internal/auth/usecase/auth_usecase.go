package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/quiz/internal/auth/domain"
	authService "github.com/allisson/quiz/internal/auth/service"
	userDomain "github.com/allisson/quiz/internal/user/domain"
	customValidation "github.com/allisson/quiz/internal/validation"
)

// dummyPassword is hashed once and verified whenever a login names an unknown
// account, so both failure paths pay for one hash comparison.
const dummyPassword = "quiz-dummy-password"

// bcryptMaxPasswordBytes is the longest input bcrypt accepts.
const bcryptMaxPasswordBytes = 72

var (
	playerPassword = customValidation.PasswordStrength{MinLength: 6}
	adminPassword  = customValidation.PasswordStrength{
		MinLength:      12,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}
)

// authUseCase implements AuthUseCase.
type authUseCase struct {
	store  CredentialStore
	hasher authService.PasswordHasher
	tokens authService.TokenService

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	store CredentialStore,
	hasher authService.PasswordHasher,
	tokens authService.TokenService,
) AuthUseCase {
	return &authUseCase{
		store:  store,
		hasher: hasher,
		tokens: tokens,
	}
}

func validateRegisterInput(input *authDomain.RegisterInput) error {
	password := playerPassword
	if input.Role == userDomain.RoleAdmin {
		password = adminPassword
	}

	return validation.ValidateStruct(input,
		validation.Field(&input.Username,
			validation.Required,
			validation.Length(3, 50),
			customValidation.Username,
		),
		validation.Field(&input.Email,
			validation.Required,
			validation.Length(0, 100),
			customValidation.Email,
		),
		validation.Field(&input.Password,
			validation.Required,
			password,
			customValidation.MaxBytes(bcryptMaxPasswordBytes),
		),
		validation.Field(&input.Role,
			validation.In(userDomain.RolePlayer, userDomain.RoleAdmin),
		),
	)
}

// Register creates a new credential.
func (a *authUseCase) Register(
	ctx context.Context,
	input *authDomain.RegisterInput,
) (*userDomain.User, error) {
	normalized := authDomain.RegisterInput{
		Username: strings.TrimSpace(input.Username),
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
		Role:     input.Role,
	}
	if normalized.Role == "" {
		normalized.Role = userDomain.RolePlayer
	}

	if err := validateRegisterInput(&normalized); err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	exists, err := a.store.ExistsByUsername(ctx, normalized.Username)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	if exists {
		return nil, authDomain.ErrDuplicateUsername
	}

	exists, err = a.store.ExistsByEmail(ctx, normalized.Email)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	if exists {
		return nil, authDomain.ErrDuplicateEmail
	}

	passwordHash, err := a.hasher.Hash(normalized.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &userDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     normalized.Username,
		Email:        normalized.Email,
		PasswordHash: passwordHash,
		Role:         normalized.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := a.store.Save(ctx, user); err != nil {
		if errors.Is(err, userDomain.ErrUserAlreadyExists) {
			return nil, err
		}
		return nil, storeUnavailable(err)
	}

	return user, nil
}

// Login verifies credentials and issues a token.
func (a *authUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	err := validation.ValidateStruct(input,
		validation.Field(&input.UsernameOrEmail, validation.Required, customValidation.NotBlank),
		validation.Field(&input.Password, validation.Required),
	)
	if err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	identifier := strings.TrimSpace(input.UsernameOrEmail)

	var user *userDomain.User
	if strings.Contains(identifier, "@") {
		user, err = a.store.FindByEmail(ctx, identifier)
	} else {
		user, err = a.store.FindByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			a.hasher.Verify(input.Password, a.dummyPasswordHash())
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, storeUnavailable(err)
	}

	if !a.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	issued, err := a.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &authDomain.LoginOutput{
		Token:     issued.Token,
		TokenType: authDomain.TokenTypeBearer,
		User:      user,
		ExpiresIn: issued.ExpiresAt.Sub(issued.IssuedAt).Milliseconds(),
	}, nil
}

// Authenticate resolves a bearer token. The signature and expiry are checked
// before the store is queried so forged tokens never reach the database.
func (a *authUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Identity, error) {
	subject, err := a.tokens.ExtractSubject(token)
	if err != nil {
		return nil, err
	}

	claims, err := a.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	if claims.Subject != subject {
		return nil, authDomain.ErrUnauthenticated
	}

	user, err := a.store.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrUnauthenticated
		}
		return nil, storeUnavailable(err)
	}

	return &authDomain.Identity{
		Subject: user.Username,
		Role:    user.Role,
		UserID:  user.ID,
	}, nil
}

// Profile loads the credential of an authenticated user.
func (a *authUseCase) Profile(ctx context.Context, userID uuid.UUID) (*userDomain.User, error) {
	user, err := a.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, err
		}
		return nil, storeUnavailable(err)
	}
	return user, nil
}

// SetRole changes the role of an existing credential.
func (a *authUseCase) SetRole(
	ctx context.Context,
	username string,
	role userDomain.Role,
) (*userDomain.User, error) {
	if !role.IsValid() {
		return nil, userDomain.ErrInvalidRole
	}

	user, err := a.store.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := a.store.UpdateRole(ctx, user.ID, role); err != nil {
		return nil, err
	}

	user.Role = role
	user.UpdatedAt = time.Now().UTC()
	return user, nil
}

func (a *authUseCase) dummyPasswordHash() string {
	a.dummyOnce.Do(func() {
		if hash, err := a.hasher.Hash(dummyPassword); err == nil {
			a.dummyHash = hash
		}
	})
	return a.dummyHash
}

func storeUnavailable(err error) error {
	return fmt.Errorf("%w: %w", authDomain.ErrStoreUnavailable, err)
}
