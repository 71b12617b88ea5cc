// Package mocks provides testify mocks for the game HTTP layer.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	gameDomain "github.com/allisson/quiz/internal/game/domain"
)

// MockGameUseCase is a mock implementation of usecase.GameUseCase.
type MockGameUseCase struct {
	mock.Mock
}

func (m *MockGameUseCase) Start(
	ctx context.Context,
	userID uuid.UUID,
	category string,
	totalQuestions int,
) (*gameDomain.Session, error) {
	args := m.Called(ctx, userID, category, totalQuestions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gameDomain.Session), args.Error(1)
}

func (m *MockGameUseCase) Finish(
	ctx context.Context,
	sessionID, userID uuid.UUID,
	correctAnswers int,
) (*gameDomain.Session, error) {
	args := m.Called(ctx, sessionID, userID, correctAnswers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gameDomain.Session), args.Error(1)
}

func (m *MockGameUseCase) Get(ctx context.Context, sessionID uuid.UUID) (*gameDomain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gameDomain.Session), args.Error(1)
}

func (m *MockGameUseCase) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*gameDomain.Session, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*gameDomain.Session), args.Error(1)
}
