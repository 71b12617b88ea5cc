package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gameDomain "github.com/allisson/quiz/internal/game/domain"
	"github.com/allisson/quiz/internal/testutil"
)

func mustBinary(t *testing.T, id uuid.UUID) []byte {
	t.Helper()
	b, err := id.MarshalBinary()
	require.NoError(t, err)
	return b
}

func TestMySQLSessionRepository_CreateAndGet(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLSessionRepository(db)
	ctx := context.Background()
	s := newTestSession(uuid.Must(uuid.NewV7()))
	id := mustBinary(t, s.ID)
	userID := mustBinary(t, s.UserID)

	mock.ExpectExec(`INSERT INTO game_sessions`).
		WithArgs(id, userID, "sports", 10, 0, 0, sqlmock.AnyArg(), nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM game_sessions WHERE id = \?`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(sessionColumns).AddRow(
			id, userID, "sports", 10, 0, 0, s.StartedAt, nil,
		))

	require.NoError(t, repo.Create(ctx, s))
	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, s.UserID, got.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLSessionRepository_GetForUpdate_NotFound(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLSessionRepository(db)

	mock.ExpectQuery(`FOR UPDATE`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetForUpdate(context.Background(), uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, gameDomain.ErrSessionNotFound)
}

func TestMySQLSessionRepository_ListByUser(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLSessionRepository(db)
	userUUID := uuid.Must(uuid.NewV7())
	s := newTestSession(userUUID)
	finished := s.StartedAt.Add(time.Minute)

	mock.ExpectQuery(`WHERE user_id = \? ORDER BY started_at DESC`).
		WithArgs(mustBinary(t, userUUID), 5, 10).
		WillReturnRows(sqlmock.NewRows(sessionColumns).AddRow(
			mustBinary(t, s.ID), mustBinary(t, userUUID), "math", 5, 5, 50, s.StartedAt, finished,
		))

	sessions, err := repo.ListByUser(context.Background(), userUUID, 10, 5)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 50, sessions[0].Score)
	assert.Equal(t, finished, *sessions[0].FinishedAt)
}

func TestMySQLSessionRepository_Integration(t *testing.T) {
	testutil.SkipIfNoMySQL(t)
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLSessionRepository(db)
	ctx := context.Background()
	userID := testutil.CreateTestUser(t, db, "mysql", "player1")
	session := newTestSession(userID)

	require.NoError(t, repo.Create(ctx, session))
	got, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "sports", got.Category)
}
