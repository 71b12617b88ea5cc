// Package usecase implements the game session lifecycle.
package usecase

import (
	"context"

	"github.com/google/uuid"

	gameDomain "github.com/allisson/quiz/internal/game/domain"
)

// SessionRepository persists game sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *gameDomain.Session) error
	Get(ctx context.Context, id uuid.UUID) (*gameDomain.Session, error)

	// GetForUpdate loads a session and locks its row until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*gameDomain.Session, error)

	Update(ctx context.Context, session *gameDomain.Session) error

	// ListByUser returns a user's sessions, most recent first.
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*gameDomain.Session, error)
}

// GameUseCase starts, finishes and reads game sessions.
type GameUseCase interface {
	Start(ctx context.Context, userID uuid.UUID, category string, totalQuestions int) (*gameDomain.Session, error)

	// Finish records the result of a session owned by userID. A session can be
	// finished once.
	Finish(ctx context.Context, sessionID, userID uuid.UUID, correctAnswers int) (*gameDomain.Session, error)

	Get(ctx context.Context, sessionID uuid.UUID) (*gameDomain.Session, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*gameDomain.Session, error)
}
