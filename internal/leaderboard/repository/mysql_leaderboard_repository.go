package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/quiz/internal/database"
	leaderboardDomain "github.com/allisson/quiz/internal/leaderboard/domain"

	apperrors "github.com/allisson/quiz/internal/errors"
)

// MySQLLeaderboardRepository runs leaderboard queries on MySQL.
type MySQLLeaderboardRepository struct {
	db *sql.DB
}

// NewMySQLLeaderboardRepository creates a new MySQLLeaderboardRepository.
func NewMySQLLeaderboardRepository(db *sql.DB) *MySQLLeaderboardRepository {
	return &MySQLLeaderboardRepository{db: db}
}

// Top ranks players by total score over finished sessions.
func (r *MySQLLeaderboardRepository) Top(
	ctx context.Context,
	category string,
	limit int,
) ([]*leaderboardDomain.Entry, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT u.id, u.username, COUNT(g.id) AS games_played, SUM(g.score) AS total_score
			  FROM game_sessions g
			  JOIN users u ON u.id = g.user_id
			  WHERE g.finished_at IS NOT NULL AND (? = '' OR g.category = ?)
			  GROUP BY u.id, u.username
			  ORDER BY total_score DESC, games_played ASC, u.username ASC
			  LIMIT ?`

	rows, err := querier.QueryContext(ctx, query, category, category, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query leaderboard")
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]*leaderboardDomain.Entry, 0)
	for rows.Next() {
		var idBytes []byte
		entry := &leaderboardDomain.Entry{Category: category}
		if err := rows.Scan(&idBytes, &entry.Username, &entry.GamesPlayed, &entry.TotalScore); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan leaderboard entry")
		}
		if err := entry.UserID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate leaderboard")
	}
	return entries, nil
}

// UserStats aggregates a single player's finished sessions.
func (r *MySQLLeaderboardRepository) UserStats(
	ctx context.Context,
	userID uuid.UUID,
) (*leaderboardDomain.UserStats, error) {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `SELECT u.username, COUNT(g.id), COALESCE(SUM(g.score), 0), COALESCE(AVG(g.score), 0)
			  FROM users u
			  LEFT JOIN game_sessions g ON g.user_id = u.id AND g.finished_at IS NOT NULL
			  WHERE u.id = ?
			  GROUP BY u.id, u.username`

	stats := leaderboardDomain.UserStats{UserID: userID}
	err = querier.QueryRowContext(ctx, query, idBytes).Scan(
		&stats.Username, &stats.GamesPlayed, &stats.TotalScore, &stats.AverageScore,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, leaderboardDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user stats")
	}
	return &stats, nil
}

// CategoryStats counts finished sessions per category.
func (r *MySQLLeaderboardRepository) CategoryStats(ctx context.Context) ([]*leaderboardDomain.CategoryStats, error) {
	return queryCategoryStats(ctx, database.GetTx(ctx, r.db))
}
