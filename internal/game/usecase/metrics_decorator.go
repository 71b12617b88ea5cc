package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	gameDomain "github.com/allisson/quiz/internal/game/domain"
	"github.com/allisson/quiz/internal/metrics"
)

// gameUseCaseWithMetrics decorates GameUseCase with metrics instrumentation.
type gameUseCaseWithMetrics struct {
	next    GameUseCase
	metrics metrics.BusinessMetrics
}

// NewGameUseCaseWithMetrics wraps a GameUseCase with metrics recording.
func NewGameUseCaseWithMetrics(useCase GameUseCase, m metrics.BusinessMetrics) GameUseCase {
	return &gameUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (g *gameUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "game", operation, status)
	g.metrics.RecordDuration(ctx, "game", operation, time.Since(start), status)
}

func (g *gameUseCaseWithMetrics) Start(
	ctx context.Context,
	userID uuid.UUID,
	category string,
	totalQuestions int,
) (*gameDomain.Session, error) {
	start := time.Now()
	session, err := g.next.Start(ctx, userID, category, totalQuestions)
	g.record(ctx, "start", start, err)
	return session, err
}

func (g *gameUseCaseWithMetrics) Finish(
	ctx context.Context,
	sessionID, userID uuid.UUID,
	correctAnswers int,
) (*gameDomain.Session, error) {
	start := time.Now()
	session, err := g.next.Finish(ctx, sessionID, userID, correctAnswers)
	g.record(ctx, "finish", start, err)
	return session, err
}

func (g *gameUseCaseWithMetrics) Get(ctx context.Context, sessionID uuid.UUID) (*gameDomain.Session, error) {
	start := time.Now()
	session, err := g.next.Get(ctx, sessionID)
	g.record(ctx, "get", start, err)
	return session, err
}

func (g *gameUseCaseWithMetrics) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*gameDomain.Session, error) {
	start := time.Now()
	sessions, err := g.next.ListByUser(ctx, userID, offset, limit)
	g.record(ctx, "list_by_user", start, err)
	return sessions, err
}
