package domain

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/quiz/internal/errors"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = ParseRole(" Player ")
	require.NoError(t, err)
	assert.Equal(t, RolePlayer, role)

	_, err = ParseRole("moderator")
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RolePlayer))
	assert.True(t, RoleAdmin.AtLeast(RoleAdmin))
	assert.True(t, RolePlayer.AtLeast(RolePlayer))
	assert.False(t, RolePlayer.AtLeast(RoleAdmin))
	assert.False(t, Role("GUEST").AtLeast(RolePlayer))
	assert.False(t, Role("").IsValid())
}

func TestUser_NeverExposesPasswordHash(t *testing.T) {
	user := &User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$secrethashvalue",
		Role:         RolePlayer,
	}

	body, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "secrethashvalue")

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("user loaded", slog.Any("user", user))
	assert.Contains(t, buf.String(), "alice")
	assert.NotContains(t, buf.String(), "secrethashvalue")
	assert.NotContains(t, buf.String(), "alice@example.com")
}
