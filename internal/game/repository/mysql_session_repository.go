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

const mysqlSelectSession = `SELECT id, user_id, category, total_questions, correct_answers, score,
	started_at, finished_at FROM game_sessions`

// MySQLSessionRepository handles game session persistence for MySQL. IDs are
// stored as BINARY(16).
type MySQLSessionRepository struct {
	db *sql.DB
}

// NewMySQLSessionRepository creates a new MySQLSessionRepository.
func NewMySQLSessionRepository(db *sql.DB) *MySQLSessionRepository {
	return &MySQLSessionRepository{db: db}
}

// Create inserts a new session.
func (r *MySQLSessionRepository) Create(ctx context.Context, session *gameDomain.Session) error {
	querier := database.GetTx(ctx, r.db)

	id, err := session.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	userID, err := session.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `INSERT INTO game_sessions
			  (id, user_id, category, total_questions, correct_answers, score, started_at, finished_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query,
		id, userID, session.Category, session.TotalQuestions,
		session.CorrectAnswers, session.Score, session.StartedAt, nullTime(session),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create game session")
	}
	return nil
}

// Get retrieves a session by ID.
func (r *MySQLSessionRepository) Get(ctx context.Context, id uuid.UUID) (*gameDomain.Session, error) {
	return r.getOne(ctx, mysqlSelectSession+` WHERE id = ?`, id)
}

// GetForUpdate retrieves a session by ID and locks its row.
func (r *MySQLSessionRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*gameDomain.Session, error) {
	return r.getOne(ctx, mysqlSelectSession+` WHERE id = ? FOR UPDATE`, id)
}

// Update stores the result of a session.
func (r *MySQLSessionRepository) Update(ctx context.Context, session *gameDomain.Session) error {
	querier := database.GetTx(ctx, r.db)

	id, err := session.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `UPDATE game_sessions SET correct_answers = ?, score = ?, finished_at = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, session.CorrectAnswers, session.Score, nullTime(session), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update game session")
	}
	return requireAffected(result)
}

// ListByUser returns a page of a user's sessions, most recent first.
func (r *MySQLSessionRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
) ([]*gameDomain.Session, error) {
	querier := database.GetTx(ctx, r.db)

	userIDBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := mysqlSelectSession + ` WHERE user_id = ? ORDER BY started_at DESC, id DESC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, userIDBytes, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list game sessions")
	}
	defer func() {
		_ = rows.Close()
	}()

	sessions := make([]*gameDomain.Session, 0)
	for rows.Next() {
		session, err := scanMySQLSession(rows)
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

func (r *MySQLSessionRepository) getOne(ctx context.Context, query string, id uuid.UUID) (*gameDomain.Session, error) {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	session, err := scanMySQLSession(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gameDomain.ErrSessionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get game session")
	}
	return session, nil
}

func scanMySQLSession(row scanner) (*gameDomain.Session, error) {
	var session gameDomain.Session
	var id, userID []byte
	var finishedAt sql.NullTime

	err := row.Scan(
		&id, &userID, &session.Category, &session.TotalQuestions,
		&session.CorrectAnswers, &session.Score, &session.StartedAt, &finishedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := session.ID.UnmarshalBinary(id); err != nil {
		return nil, err
	}
	if err := session.UserID.UnmarshalBinary(userID); err != nil {
		return nil, err
	}
	if finishedAt.Valid {
		session.FinishedAt = &finishedAt.Time
	}
	return &session, nil
}
