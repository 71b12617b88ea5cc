package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	leaderboardDomain "github.com/allisson/quiz/internal/leaderboard/domain"
	"github.com/allisson/quiz/internal/metrics"
)

// leaderboardUseCaseWithMetrics decorates LeaderboardUseCase with metrics instrumentation.
type leaderboardUseCaseWithMetrics struct {
	next    LeaderboardUseCase
	metrics metrics.BusinessMetrics
}

// NewLeaderboardUseCaseWithMetrics wraps a LeaderboardUseCase with metrics recording.
func NewLeaderboardUseCaseWithMetrics(useCase LeaderboardUseCase, m metrics.BusinessMetrics) LeaderboardUseCase {
	return &leaderboardUseCaseWithMetrics{next: useCase, metrics: m}
}

func (l *leaderboardUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	l.metrics.RecordOperation(ctx, "leaderboard", operation, status)
	l.metrics.RecordDuration(ctx, "leaderboard", operation, time.Since(start), status)
}

func (l *leaderboardUseCaseWithMetrics) Top(ctx context.Context, limit int) ([]*leaderboardDomain.Entry, error) {
	start := time.Now()
	entries, err := l.next.Top(ctx, limit)
	l.record(ctx, "top", start, err)
	return entries, err
}

func (l *leaderboardUseCaseWithMetrics) TopByCategory(
	ctx context.Context,
	category string,
	limit int,
) ([]*leaderboardDomain.Entry, error) {
	start := time.Now()
	entries, err := l.next.TopByCategory(ctx, category, limit)
	l.record(ctx, "top_by_category", start, err)
	return entries, err
}

func (l *leaderboardUseCaseWithMetrics) UserStats(
	ctx context.Context,
	userID uuid.UUID,
) (*leaderboardDomain.UserStats, error) {
	start := time.Now()
	stats, err := l.next.UserStats(ctx, userID)
	l.record(ctx, "user_stats", start, err)
	return stats, err
}

func (l *leaderboardUseCaseWithMetrics) CategoryStats(ctx context.Context) ([]*leaderboardDomain.CategoryStats, error) {
	start := time.Now()
	stats, err := l.next.CategoryStats(ctx)
	l.record(ctx, "category_stats", start, err)
	return stats, err
}
