package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/quiz/internal/auth/domain"
	"github.com/allisson/quiz/internal/metrics"
	userDomain "github.com/allisson/quiz/internal/user/domain"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *authUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", operation, status)
	a.metrics.RecordDuration(ctx, "auth", operation, time.Since(start), status)
}

// Register records metrics for registrations.
func (a *authUseCaseWithMetrics) Register(
	ctx context.Context,
	input *authDomain.RegisterInput,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := a.next.Register(ctx, input)
	a.record(ctx, "register", start, err)
	return user, err
}

// Login records metrics for logins.
func (a *authUseCaseWithMetrics) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	start := time.Now()
	output, err := a.next.Login(ctx, input)
	a.record(ctx, "login", start, err)
	return output, err
}

// Authenticate records metrics for bearer token checks.
func (a *authUseCaseWithMetrics) Authenticate(ctx context.Context, token string) (*authDomain.Identity, error) {
	start := time.Now()
	identity, err := a.next.Authenticate(ctx, token)
	a.record(ctx, "authenticate", start, err)
	return identity, err
}

// Profile records metrics for profile lookups.
func (a *authUseCaseWithMetrics) Profile(ctx context.Context, userID uuid.UUID) (*userDomain.User, error) {
	start := time.Now()
	user, err := a.next.Profile(ctx, userID)
	a.record(ctx, "profile", start, err)
	return user, err
}

// SetRole records metrics for role changes.
func (a *authUseCaseWithMetrics) SetRole(
	ctx context.Context,
	username string,
	role userDomain.Role,
) (*userDomain.User, error) {
	start := time.Now()
	user, err := a.next.SetRole(ctx, username, role)
	a.record(ctx, "set_role", start, err)
	return user, err
}
