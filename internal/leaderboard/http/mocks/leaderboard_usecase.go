// Package mocks provides testify mocks for the leaderboard HTTP layer.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	leaderboardDomain "github.com/allisson/quiz/internal/leaderboard/domain"
)

// MockLeaderboardUseCase is a mock implementation of usecase.LeaderboardUseCase.
type MockLeaderboardUseCase struct {
	mock.Mock
}

func (m *MockLeaderboardUseCase) Top(ctx context.Context, limit int) ([]*leaderboardDomain.Entry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*leaderboardDomain.Entry), args.Error(1)
}

func (m *MockLeaderboardUseCase) TopByCategory(
	ctx context.Context,
	category string,
	limit int,
) ([]*leaderboardDomain.Entry, error) {
	args := m.Called(ctx, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*leaderboardDomain.Entry), args.Error(1)
}

func (m *MockLeaderboardUseCase) UserStats(
	ctx context.Context,
	userID uuid.UUID,
) (*leaderboardDomain.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leaderboardDomain.UserStats), args.Error(1)
}

func (m *MockLeaderboardUseCase) CategoryStats(ctx context.Context) ([]*leaderboardDomain.CategoryStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*leaderboardDomain.CategoryStats), args.Error(1)
}
