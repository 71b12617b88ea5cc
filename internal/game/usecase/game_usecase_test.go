package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/quiz/internal/errors"
	gameDomain "github.com/allisson/quiz/internal/game/domain"
)

type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	return fn(ctx)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Create(ctx context.Context, session *gameDomain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) Get(ctx context.Context, id uuid.UUID) (*gameDomain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gameDomain.Session), args.Error(1)
}

func (m *mockSessionRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*gameDomain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gameDomain.Session), args.Error(1)
}

func (m *mockSessionRepository) Update(ctx context.Context, session *gameDomain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) ListByUser(
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

func setupGameUseCase(t *testing.T) (GameUseCase, *mockTxManager, *mockSessionRepository) {
	t.Helper()
	tx := &mockTxManager{}
	repo := &mockSessionRepository{}
	return NewGameUseCase(tx, repo), tx, repo
}

func TestGameUseCase_Start(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	t.Run("Success_NormalizesCategory", func(t *testing.T) {
		uc, _, repo := setupGameUseCase(t)
		repo.On("Create", ctx, mock.MatchedBy(func(s *gameDomain.Session) bool {
			return s.Category == "geography" && s.TotalQuestions == 10 && s.UserID == userID
		})).Return(nil).Once()

		session, err := uc.Start(ctx, userID, "Geography", 10)

		require.NoError(t, err)
		assert.Equal(t, 0, session.CorrectAnswers)
		assert.Equal(t, 0, session.Score)
		assert.False(t, session.IsFinished())
		repo.AssertExpectations(t)
	})

	t.Run("Failure_UnknownCategory", func(t *testing.T) {
		uc, _, repo := setupGameUseCase(t)

		_, err := uc.Start(ctx, userID, "cooking", 10)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failure_QuestionBounds", func(t *testing.T) {
		uc, _, _ := setupGameUseCase(t)

		_, err := uc.Start(ctx, userID, "math", 0)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

		_, err = uc.Start(ctx, userID, "math", 51)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestGameUseCase_Finish(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	sessionID := uuid.Must(uuid.NewV7())

	newSession := func() *gameDomain.Session {
		return &gameDomain.Session{ID: sessionID, UserID: userID, Category: "math", TotalQuestions: 10}
	}

	t.Run("Success_ScoresInTransaction", func(t *testing.T) {
		uc, tx, repo := setupGameUseCase(t)
		tx.On("WithTx", ctx).Once()
		repo.On("GetForUpdate", ctx, sessionID).Return(newSession(), nil).Once()
		repo.On("Update", ctx, mock.MatchedBy(func(s *gameDomain.Session) bool {
			return s.Score == 70 && s.CorrectAnswers == 7 && s.FinishedAt != nil
		})).Return(nil).Once()

		session, err := uc.Finish(ctx, sessionID, userID, 7)

		require.NoError(t, err)
		assert.Equal(t, 70, session.Score)
		tx.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("Failure_NotOwner", func(t *testing.T) {
		uc, tx, repo := setupGameUseCase(t)
		tx.On("WithTx", ctx).Once()
		repo.On("GetForUpdate", ctx, sessionID).Return(newSession(), nil).Once()

		_, err := uc.Finish(ctx, sessionID, uuid.Must(uuid.NewV7()), 7)

		assert.ErrorIs(t, err, gameDomain.ErrNotSessionOwner)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Failure_AlreadyFinished", func(t *testing.T) {
		uc, tx, repo := setupGameUseCase(t)
		finished := newSession()
		require.NoError(t, finished.Finish(5, time.Now()))
		tx.On("WithTx", ctx).Once()
		repo.On("GetForUpdate", ctx, sessionID).Return(finished, nil).Once()

		_, err := uc.Finish(ctx, sessionID, userID, 7)

		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("Failure_TooManyCorrect", func(t *testing.T) {
		uc, tx, repo := setupGameUseCase(t)
		tx.On("WithTx", ctx).Once()
		repo.On("GetForUpdate", ctx, sessionID).Return(newSession(), nil).Once()

		_, err := uc.Finish(ctx, sessionID, userID, 11)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failure_NotFound", func(t *testing.T) {
		uc, tx, repo := setupGameUseCase(t)
		tx.On("WithTx", ctx).Once()
		repo.On("GetForUpdate", ctx, sessionID).Return(nil, gameDomain.ErrSessionNotFound).Once()

		_, err := uc.Finish(ctx, sessionID, userID, 1)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestGameUseCase_Reads(t *testing.T) {
	ctx := context.Background()
	uc, _, repo := setupGameUseCase(t)
	userID := uuid.Must(uuid.NewV7())
	sessions := []*gameDomain.Session{{ID: uuid.Must(uuid.NewV7()), UserID: userID}}

	repo.On("ListByUser", ctx, userID, 0, 20).Return(sessions, nil).Once()
	repo.On("Get", ctx, sessions[0].ID).Return(nil, errors.New("db down")).Once()

	got, err := uc.ListByUser(ctx, userID, 0, 20)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = uc.Get(ctx, sessions[0].ID)
	assert.Error(t, err)
}
