package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	questionDomain "github.com/allisson/quiz/internal/question/domain"
	customValidation "github.com/allisson/quiz/internal/validation"
)

type questionUseCase struct {
	repo QuestionRepository
	now  func() time.Time
}

// NewQuestionUseCase creates a QuestionUseCase.
func NewQuestionUseCase(repo QuestionRepository) QuestionUseCase {
	return &questionUseCase{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func validateCreateInput(input *questionDomain.CreateQuestionInput) error {
	return validation.ValidateStruct(input,
		validation.Field(&input.Question, validation.Required, customValidation.NotBlank, validation.Length(0, 1000)),
		validation.Field(&input.CorrectAnswer, validation.Required, customValidation.NotBlank, validation.Length(0, 255)),
		validation.Field(&input.IncorrectAnswers,
			validation.Required,
			validation.Length(1, questionDomain.MaxIncorrectAnswers),
			validation.Each(validation.Required, customValidation.NotBlank, validation.Length(0, 255)),
		),
		validation.Field(&input.Category, validation.Required, customValidation.NotBlank, validation.Length(0, 32)),
		validation.Field(&input.Difficulty, validation.Required, customValidation.InFold(questionDomain.Difficulties...)),
	)
}

func (q *questionUseCase) Create(
	ctx context.Context,
	input *questionDomain.CreateQuestionInput,
) (*questionDomain.Question, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	question := questionDomain.NewQuestion(input, q.now())
	if question.HasRepeatedAnswer() {
		return nil, questionDomain.ErrAnswerRepeated
	}

	if err := q.repo.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (q *questionUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return q.repo.Delete(ctx, id)
}

func (q *questionUseCase) List(
	ctx context.Context,
	category string,
	offset, limit int,
) ([]*questionDomain.Question, error) {
	return q.repo.List(ctx, normalizeCategory(category), offset, limit)
}

func (q *questionUseCase) Random(ctx context.Context, category string, limit int) ([]*questionDomain.Question, error) {
	if limit <= 0 {
		limit = questionDomain.DefaultRandomLimit
	}
	if limit > questionDomain.MaxRandomLimit {
		limit = questionDomain.MaxRandomLimit
	}
	return q.repo.Random(ctx, normalizeCategory(category), limit)
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
