package usecase

import (
	"context"

	"github.com/google/uuid"

	gameDomain "github.com/allisson/quiz/internal/game/domain"
	leaderboardDomain "github.com/allisson/quiz/internal/leaderboard/domain"
)

type leaderboardUseCase struct {
	repo LeaderboardRepository
}

// NewLeaderboardUseCase creates a LeaderboardUseCase.
func NewLeaderboardUseCase(repo LeaderboardRepository) LeaderboardUseCase {
	return &leaderboardUseCase{repo: repo}
}

// normalizeLimit maps non-positive limits to the default and caps the rest.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return leaderboardDomain.DefaultLimit
	}
	if limit > leaderboardDomain.MaxLimit {
		return leaderboardDomain.MaxLimit
	}
	return limit
}

func (l *leaderboardUseCase) Top(ctx context.Context, limit int) ([]*leaderboardDomain.Entry, error) {
	return l.repo.Top(ctx, "", normalizeLimit(limit))
}

func (l *leaderboardUseCase) TopByCategory(
	ctx context.Context,
	category string,
	limit int,
) ([]*leaderboardDomain.Entry, error) {
	if !gameDomain.IsValidCategory(category) {
		return nil, gameDomain.ErrInvalidCategory
	}
	return l.repo.Top(ctx, gameDomain.NormalizeCategory(category), normalizeLimit(limit))
}

func (l *leaderboardUseCase) UserStats(ctx context.Context, userID uuid.UUID) (*leaderboardDomain.UserStats, error) {
	return l.repo.UserStats(ctx, userID)
}

func (l *leaderboardUseCase) CategoryStats(ctx context.Context) ([]*leaderboardDomain.CategoryStats, error) {
	return l.repo.CategoryStats(ctx)
}
