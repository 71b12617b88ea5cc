package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/quiz/internal/metrics"
	questionDomain "github.com/allisson/quiz/internal/question/domain"
)

// questionUseCaseWithMetrics decorates QuestionUseCase with metrics instrumentation.
type questionUseCaseWithMetrics struct {
	next    QuestionUseCase
	metrics metrics.BusinessMetrics
}

// NewQuestionUseCaseWithMetrics wraps a QuestionUseCase with metrics recording.
func NewQuestionUseCaseWithMetrics(useCase QuestionUseCase, m metrics.BusinessMetrics) QuestionUseCase {
	return &questionUseCaseWithMetrics{next: useCase, metrics: m}
}

func (q *questionUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	q.metrics.RecordOperation(ctx, "question", operation, status)
	q.metrics.RecordDuration(ctx, "question", operation, time.Since(start), status)
}

func (q *questionUseCaseWithMetrics) Create(
	ctx context.Context,
	input *questionDomain.CreateQuestionInput,
) (*questionDomain.Question, error) {
	start := time.Now()
	question, err := q.next.Create(ctx, input)
	q.record(ctx, "create", start, err)
	return question, err
}

func (q *questionUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := q.next.Delete(ctx, id)
	q.record(ctx, "delete", start, err)
	return err
}

func (q *questionUseCaseWithMetrics) List(
	ctx context.Context,
	category string,
	offset, limit int,
) ([]*questionDomain.Question, error) {
	start := time.Now()
	questions, err := q.next.List(ctx, category, offset, limit)
	q.record(ctx, "list", start, err)
	return questions, err
}

func (q *questionUseCaseWithMetrics) Random(
	ctx context.Context,
	category string,
	limit int,
) ([]*questionDomain.Question, error) {
	start := time.Now()
	questions, err := q.next.Random(ctx, category, limit)
	q.record(ctx, "random", start, err)
	return questions, err
}
