// Package repository provides SQL persistence for game sessions.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/quiz/internal/database"
	gameDomain "github.com/allisson/quiz/internal/game/domain"

	apperrors "github.com/allisson/quiz/internal/errors"
)

const postgresSelectSession = `SELECT id, user_id, category, total_questions, correct_answers, score,
	started_at, finished_at FROM game_sessions`

// PostgreSQLSessionRepository handles game session persistence for PostgreSQL.
type PostgreSQLSessionRepository struct {
	db *sql.DB
}

// NewPostgreSQLSessionRepository creates a new PostgreSQLSessionRepository.
func NewPostgreSQLSessionRepository(db *sql.DB) *PostgreSQLSessionRepository {
	return &PostgreSQLSessionRepository{db: db}
}

// Create inserts a new session.
func (r *PostgreSQLSessionRepository) Create(ctx context.Context, session *gameDomain.Session) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO game_sessions
			  (id, user_id, category, total_questions, correct_answers, score, started_at, finished_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(ctx, query,
		session.ID, session.UserID, session.Category, session.TotalQuestions,
		session.CorrectAnswers, session.Score, session.StartedAt, nullTime(session),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create game session")
	}
	return nil
}

// Get retrieves a session by ID.
func (r *PostgreSQLSessionRepository) Get(ctx context.Context, id uuid.UUID) (*gameDomain.Session, error) {
	return r.getOne(ctx, postgresSelectSession+` WHERE id = $1`, id)
}

// GetForUpdate retrieves a session by ID and locks its row.
func (r *PostgreSQLSessionRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*gameDomain.Session, error) {
	return r.getOne(ctx, postgresSelectSession+` WHERE id = $1 FOR UPDATE`, id)
}

// Update stores the result of a session.
func (r *PostgreSQLSessionRepository) Update(ctx context.Context, session *gameDomain.Session) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE game_sessions SET correct_answers = $1, score = $2, finished_at = $3 WHERE id = $4`

	result, err := querier.ExecContext(ctx, query,
		session.CorrectAnswers, session.Score, nullTime(session), session.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update game session")
	}
	return requireAffected(result)
}

// ListByUser returns a page of a user's sessions, most recent first.
func (r *PostgreSQLSessionRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*gameDomain.Session, error) {
	querier := database.GetTx(ctx, r.db)

	query := postgresSelectSession + ` WHERE user_id = $1 ORDER BY started_at DESC, id DESC LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list game sessions")
	}
	defer func() {
		_ = rows.Close()
	}()

	sessions := make([]*gameDomain.Session, 0)
	for rows.Next() {
		session, err := scanPostgresSession(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan game session")
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate game sessions")
	}
	return sessions, nil
}

func (r *PostgreSQLSessionRepository) getOne(ctx context.Context, query string, id uuid.UUID) (*gameDomain.Session, error) {
	querier := database.GetTx(ctx, r.db)

	session, err := scanPostgresSession(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gameDomain.ErrSessionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get game session")
	}
	return session, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPostgresSession(row scanner) (*gameDomain.Session, error) {
	var session gameDomain.Session
	var finishedAt sql.NullTime

	err := row.Scan(
		&session.ID, &session.UserID, &session.Category, &session.TotalQuestions,
		&session.CorrectAnswers, &session.Score, &session.StartedAt, &finishedAt,
	)
	if err != nil {
		return nil, err
	}
	if finishedAt.Valid {
		session.FinishedAt = &finishedAt.Time
	}
	return &session, nil
}

func nullTime(session *gameDomain.Session) sql.NullTime {
	if session.FinishedAt == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *session.FinishedAt, Valid: true}
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return gameDomain.ErrSessionNotFound
	}
	return nil
}
