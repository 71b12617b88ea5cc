package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/quiz/internal/database"
	gameDomain "github.com/allisson/quiz/internal/game/domain"
	customValidation "github.com/allisson/quiz/internal/validation"
)

type gameUseCase struct {
	txManager database.TxManager
	repo      SessionRepository
	now       func() time.Time
}

// NewGameUseCase creates a GameUseCase.
func NewGameUseCase(txManager database.TxManager, repo SessionRepository) GameUseCase {
	return &gameUseCase{
		txManager: txManager,
		repo:      repo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

type startInput struct {
	Category       string
	TotalQuestions int
}

func (i *startInput) validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Category,
			validation.Required,
			customValidation.InFold(gameDomain.Categories...),
		),
		validation.Field(&i.TotalQuestions,
			validation.Required,
			validation.Min(gameDomain.MinQuestions),
			validation.Max(gameDomain.MaxQuestions),
		),
	)
}

func (g *gameUseCase) Start(
	ctx context.Context,
	userID uuid.UUID,
	category string,
	totalQuestions int,
) (*gameDomain.Session, error) {
	input := startInput{Category: gameDomain.NormalizeCategory(category), TotalQuestions: totalQuestions}
	if err := input.validate(); err != nil {
		return nil, customValidation.WrapValidationError(err)
	}

	session := &gameDomain.Session{
		ID:             uuid.Must(uuid.NewV7()),
		UserID:         userID,
		Category:       input.Category,
		TotalQuestions: input.TotalQuestions,
		StartedAt:      g.now(),
	}
	if err := g.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (g *gameUseCase) Finish(
	ctx context.Context,
	sessionID, userID uuid.UUID,
	correctAnswers int,
) (*gameDomain.Session, error) {
	var session *gameDomain.Session

	err := g.txManager.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		session, err = g.repo.GetForUpdate(txCtx, sessionID)
		if err != nil {
			return err
		}
		if session.UserID != userID {
			return gameDomain.ErrNotSessionOwner
		}
		if err := session.Finish(correctAnswers, g.now()); err != nil {
			return err
		}
		return g.repo.Update(txCtx, session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (g *gameUseCase) Get(ctx context.Context, sessionID uuid.UUID) (*gameDomain.Session, error) {
	return g.repo.Get(ctx, sessionID)
}

func (g *gameUseCase) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*gameDomain.Session, error) {
	return g.repo.ListByUser(ctx, userID, offset, limit)
}
