// Package usecase implements leaderboard queries.
package usecase

import (
	"context"

	"github.com/google/uuid"

	leaderboardDomain "github.com/allisson/quiz/internal/leaderboard/domain"
)

// LeaderboardRepository runs the aggregate queries behind the leaderboard.
// Only finished sessions are counted.
type LeaderboardRepository interface {
	// Top ranks players by total score, descending. An empty category ranks
	// across all categories.
	Top(ctx context.Context, category string, limit int) ([]*leaderboardDomain.Entry, error)

	// UserStats returns leaderboardDomain.ErrUserNotFound for an unknown user.
	UserStats(ctx context.Context, userID uuid.UUID) (*leaderboardDomain.UserStats, error)

	// CategoryStats counts sessions per category, most played first.
	CategoryStats(ctx context.Context) ([]*leaderboardDomain.CategoryStats, error)
}

// LeaderboardUseCase serves rankings and statistics.
type LeaderboardUseCase interface {
	Top(ctx context.Context, limit int) ([]*leaderboardDomain.Entry, error)
	TopByCategory(ctx context.Context, category string, limit int) ([]*leaderboardDomain.Entry, error)
	UserStats(ctx context.Context, userID uuid.UUID) (*leaderboardDomain.UserStats, error)
	CategoryStats(ctx context.Context) ([]*leaderboardDomain.CategoryStats, error)
}
