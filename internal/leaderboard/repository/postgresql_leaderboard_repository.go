// Package repository provides the SQL aggregate queries behind the leaderboard.
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

// PostgreSQLLeaderboardRepository runs leaderboard queries on PostgreSQL.
type PostgreSQLLeaderboardRepository struct {
	db *sql.DB
}

// NewPostgreSQLLeaderboardRepository creates a new PostgreSQLLeaderboardRepository.
func NewPostgreSQLLeaderboardRepository(db *sql.DB) *PostgreSQLLeaderboardRepository {
	return &PostgreSQLLeaderboardRepository{db: db}
}

// Top ranks players by total score over finished sessions.
func (r *PostgreSQLLeaderboardRepository) Top(
	ctx context.Context,
	category string,
	limit int,
) ([]*leaderboardDomain.Entry, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT u.id, u.username, COUNT(g.id) AS games_played, SUM(g.score) AS total_score
			  FROM game_sessions g
			  JOIN users u ON u.id = g.user_id
			  WHERE g.finished_at IS NOT NULL AND ($1::text = '' OR g.category = $1)
			  GROUP BY u.id, u.username
			  ORDER BY total_score DESC, games_played ASC, u.username ASC
			  LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, category, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query leaderboard")
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]*leaderboardDomain.Entry, 0)
	for rows.Next() {
		entry := &leaderboardDomain.Entry{Category: category}
		if err := rows.Scan(&entry.UserID, &entry.Username, &entry.GamesPlayed, &entry.TotalScore); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan leaderboard entry")
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate leaderboard")
	}
	return entries, nil
}

// UserStats aggregates a single player's finished sessions.
func (r *PostgreSQLLeaderboardRepository) UserStats(
	ctx context.Context,
	userID uuid.UUID,
) (*leaderboardDomain.UserStats, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT u.id, u.username, COUNT(g.id), COALESCE(SUM(g.score), 0), COALESCE(AVG(g.score), 0)
			  FROM users u
			  LEFT JOIN game_sessions g ON g.user_id = u.id AND g.finished_at IS NOT NULL
			  WHERE u.id = $1
			  GROUP BY u.id, u.username`

	var stats leaderboardDomain.UserStats
	err := querier.QueryRowContext(ctx, query, userID).Scan(
		&stats.UserID, &stats.Username, &stats.GamesPlayed, &stats.TotalScore, &stats.AverageScore,
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
func (r *PostgreSQLLeaderboardRepository) CategoryStats(ctx context.Context) ([]*leaderboardDomain.CategoryStats, error) {
	return queryCategoryStats(ctx, database.GetTx(ctx, r.db))
}

func queryCategoryStats(ctx context.Context, querier database.Querier) ([]*leaderboardDomain.CategoryStats, error) {
	query := `SELECT category, COUNT(id) AS games_played
			  FROM game_sessions
			  WHERE finished_at IS NOT NULL
			  GROUP BY category
			  ORDER BY games_played DESC, category ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query category stats")
	}
	defer func() {
		_ = rows.Close()
	}()

	stats := make([]*leaderboardDomain.CategoryStats, 0)
	for rows.Next() {
		var s leaderboardDomain.CategoryStats
		if err := rows.Scan(&s.Category, &s.GamesPlayed); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category stats")
		}
		stats = append(stats, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate category stats")
	}
	return stats, nil
}
