package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	authUseCase "github.com/allisson/quiz/internal/auth/usecase"
	userDomain "github.com/allisson/quiz/internal/user/domain"
)

// RunSetRole changes the role of the account named username. The new role
// applies to the account's next request since roles are read per request.
func RunSetRole(
	ctx context.Context,
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
	writer io.Writer,
	username string,
	role string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	parsed, err := userDomain.ParseRole(role)
	if err != nil {
		return fmt.Errorf("invalid role %q (valid options: PLAYER, ADMIN): %w", role, err)
	}

	user, err := authUseCase.SetRole(ctx, username, parsed)
	if err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}

	if err := outputUser(user, "Role updated successfully!", format, writer); err != nil {
		return err
	}

	logger.Info("role updated",
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
	)
	return nil
}
