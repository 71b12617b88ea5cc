package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	questionDomain "github.com/allisson/quiz/internal/question/domain"
)

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordCacheLookup(ctx context.Context, cache string, hit bool) {
	m.Called(ctx, cache, hit)
}

func TestQuestionUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CreateRecordsSuccess", func(t *testing.T) {
		repo := &mockQuestionRepository{}
		m := &mockBusinessMetrics{}
		uc := NewQuestionUseCaseWithMetrics(NewQuestionUseCase(repo), m)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Question")).Return(nil).Once()
		m.On("RecordOperation", ctx, "question", "create", "success").Once()
		m.On("RecordDuration", ctx, "question", "create", mock.AnythingOfType("time.Duration"), "success").Once()

		_, err := uc.Create(ctx, validInput())

		assert.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("Error_DeleteRecordsErrorStatus", func(t *testing.T) {
		repo := &mockQuestionRepository{}
		m := &mockBusinessMetrics{}
		uc := NewQuestionUseCaseWithMetrics(NewQuestionUseCase(repo), m)
		id := uuid.Must(uuid.NewV7())

		repo.On("Delete", ctx, id).Return(questionDomain.ErrQuestionNotFound).Once()
		m.On("RecordOperation", ctx, "question", "delete", "error").Once()
		m.On("RecordDuration", ctx, "question", "delete", mock.AnythingOfType("time.Duration"), "error").Once()

		err := uc.Delete(ctx, id)

		assert.ErrorIs(t, err, questionDomain.ErrQuestionNotFound)
		m.AssertExpectations(t)
	})
}
