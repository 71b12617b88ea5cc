// Package usecase implements the question catalogue.
package usecase

import (
	"context"

	"github.com/google/uuid"

	questionDomain "github.com/allisson/quiz/internal/question/domain"
)

// QuestionRepository persists questions. An empty category matches every question.
type QuestionRepository interface {
	Create(ctx context.Context, question *questionDomain.Question) error
	// Delete returns questionDomain.ErrQuestionNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, category string, offset, limit int) ([]*questionDomain.Question, error)
	// Random returns up to limit questions in random order.
	Random(ctx context.Context, category string, limit int) ([]*questionDomain.Question, error)
}

// QuestionUseCase manages the catalogue. Create and Delete are restricted to
// administrators by the HTTP authorization policy.
type QuestionUseCase interface {
	Create(ctx context.Context, input *questionDomain.CreateQuestionInput) (*questionDomain.Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, category string, offset, limit int) ([]*questionDomain.Question, error)
	Random(ctx context.Context, category string, limit int) ([]*questionDomain.Question, error)
}
