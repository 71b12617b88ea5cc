package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	authDomain "github.com/allisson/quiz/internal/auth/domain"
	authUseCase "github.com/allisson/quiz/internal/auth/usecase"
	userDomain "github.com/allisson/quiz/internal/user/domain"
)

// RunCreateAdmin registers an ADMIN account through the same validation and
// uniqueness rules as public registration. When password is empty it is read
// as one line from io.Reader.
func RunCreateAdmin(
	ctx context.Context,
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
	username string,
	email string,
	password string,
	format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	if password == "" {
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	logger.Info("creating admin account", slog.String("username", username))

	user, err := authUseCase.Register(ctx, &authDomain.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
		Role:     userDomain.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	if err := outputUser(user, "Admin created successfully!", format, io.Writer); err != nil {
		return err
	}

	logger.Info("admin account created", slog.Any("user", user))
	return nil
}

func promptForPassword(io IOTuple) (string, error) {
	if io.Reader == nil {
		return "", fmt.Errorf("no password given and no input available")
	}

	_, _ = fmt.Fprint(io.Writer, "Enter password: ")

	line, err := bufio.NewReader(io.Reader).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}
