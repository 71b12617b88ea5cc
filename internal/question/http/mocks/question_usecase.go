// Package mocks provides testify mocks for the question HTTP layer.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	questionDomain "github.com/allisson/quiz/internal/question/domain"
)

// MockQuestionUseCase is a mock implementation of usecase.QuestionUseCase.
type MockQuestionUseCase struct {
	mock.Mock
}

func (m *MockQuestionUseCase) Create(
	ctx context.Context,
	input *questionDomain.CreateQuestionInput,
) (*questionDomain.Question, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*questionDomain.Question), args.Error(1)
}

func (m *MockQuestionUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionUseCase) List(
	ctx context.Context,
	category string,
	offset, limit int,
) ([]*questionDomain.Question, error) {
	args := m.Called(ctx, category, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*questionDomain.Question), args.Error(1)
}

func (m *MockQuestionUseCase) Random(
	ctx context.Context,
	category string,
	limit int,
) ([]*questionDomain.Question, error) {
	args := m.Called(ctx, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*questionDomain.Question), args.Error(1)
}
