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

	leaderboardDomain "github.com/allisson/quiz/internal/leaderboard/domain"
	"github.com/allisson/quiz/internal/testutil"
)

func TestPostgreSQLLeaderboardRepository_Top(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPostgreSQLLeaderboardRepository(db)
	alice := uuid.Must(uuid.NewV7())
	bob := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(`FROM game_sessions g\s+JOIN users u`).
		WithArgs("sports", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "games_played", "total_score"}).
			AddRow(alice.String(), "alice", 3, 210).
			AddRow(bob.String(), "bob", 1, 50))

	entries, err := repo.Top(context.Background(), "sports", 10)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, alice, entries[0].UserID)
	assert.Equal(t, int64(210), entries[0].TotalScore)
	assert.Equal(t, "sports", entries[0].Category)
}

func TestPostgreSQLLeaderboardRepository_UserStats(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	t.Run("Success_Aggregates", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		repo := NewPostgreSQLLeaderboardRepository(db)

		mock.ExpectQuery(`LEFT JOIN game_sessions`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "count", "sum", "avg"}).
				AddRow(userID.String(), "alice", 4, 200, 50.0))

		stats, err := repo.UserStats(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), stats.GamesPlayed)
		assert.InDelta(t, 50.0, stats.AverageScore, 0.001)
	})

	t.Run("Failure_UnknownUser", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		repo := NewPostgreSQLLeaderboardRepository(db)

		mock.ExpectQuery(`LEFT JOIN game_sessions`).WillReturnError(sql.ErrNoRows)

		_, err := repo.UserStats(ctx, userID)
		assert.ErrorIs(t, err, leaderboardDomain.ErrUserNotFound)
	})
}

func TestLeaderboardRepository_CategoryStats(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	pg := NewPostgreSQLLeaderboardRepository(db)
	my := NewMySQLLeaderboardRepository(db)
	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"category", "games_played"}).AddRow("math", 7).AddRow("sports", 2)
	}

	mock.ExpectQuery(`GROUP BY category`).WillReturnRows(rows())
	mock.ExpectQuery(`GROUP BY category`).WillReturnRows(rows())

	for _, repo := range []interface {
		CategoryStats(context.Context) ([]*leaderboardDomain.CategoryStats, error)
	}{pg, my} {
		stats, err := repo.CategoryStats(context.Background())
		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, "math", stats[0].Category)
		assert.Equal(t, int64(7), stats[0].GamesPlayed)
	}
}

func TestMySQLLeaderboardRepository_Top(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLLeaderboardRepository(db)
	alice := uuid.Must(uuid.NewV7())
	aliceBytes, err := alice.MarshalBinary()
	require.NoError(t, err)

	mock.ExpectQuery(`FROM game_sessions g\s+JOIN users u`).
		WithArgs("", "", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "games_played", "total_score"}).
			AddRow(aliceBytes, "alice", 2, 90))

	entries, err := repo.Top(context.Background(), "", 10)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, alice, entries[0].UserID)
	assert.Empty(t, entries[0].Category)
}

func TestMySQLLeaderboardRepository_UserStats(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewMySQLLeaderboardRepository(db)
	userID := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(`LEFT JOIN game_sessions`).
		WillReturnRows(sqlmock.NewRows([]string{"username", "count", "sum", "avg"}).AddRow("alice", 0, 0, 0.0))

	stats, err := repo.UserStats(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, stats.UserID)
	assert.Equal(t, int64(0), stats.GamesPlayed)
}

func TestPostgreSQLLeaderboardRepository_Integration(t *testing.T) {
	testutil.SkipIfNoPostgres(t)
	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	ctx := context.Background()
	alice := testutil.CreateTestUser(t, db, "postgres", "alice")
	bob := testutil.CreateTestUser(t, db, "postgres", "bob")
	now := time.Now().UTC()

	insert := `INSERT INTO game_sessions (id, user_id, category, total_questions, correct_answers, score, started_at, finished_at)
			   VALUES ($1, $2, $3, 10, $4, $5, $6, $7)`
	for _, row := range []struct {
		user     uuid.UUID
		category string
		correct  int
		finished bool
	}{
		{alice, "sports", 8, true},
		{alice, "math", 5, true},
		{bob, "sports", 9, true},
		{bob, "sports", 10, false},
	} {
		var finishedAt any
		if row.finished {
			finishedAt = now
		}
		_, err := db.ExecContext(ctx, insert, uuid.Must(uuid.NewV7()), row.user, row.category,
			row.correct, row.correct*10, now, finishedAt)
		require.NoError(t, err)
	}

	repo := NewPostgreSQLLeaderboardRepository(db)

	top, err := repo.Top(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "alice", top[0].Username)
	assert.Equal(t, int64(130), top[0].TotalScore)

	sports, err := repo.Top(ctx, "sports", 10)
	require.NoError(t, err)
	assert.Equal(t, "bob", sports[0].Username)

	stats, err := repo.UserStats(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.GamesPlayed)
}
