package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/quiz/internal/database"
	questionDomain "github.com/allisson/quiz/internal/question/domain"

	apperrors "github.com/allisson/quiz/internal/errors"
)

const postgresSelectQuestion = `SELECT id, question, correct_answer, incorrect_answers, category, difficulty,
	created_at FROM questions WHERE ($1::text = '' OR category = $1)`

// PostgreSQLQuestionRepository handles question persistence for PostgreSQL.
type PostgreSQLQuestionRepository struct {
	db *sql.DB
}

// NewPostgreSQLQuestionRepository creates a new PostgreSQLQuestionRepository.
func NewPostgreSQLQuestionRepository(db *sql.DB) *PostgreSQLQuestionRepository {
	return &PostgreSQLQuestionRepository{db: db}
}

// Create inserts a new question.
func (r *PostgreSQLQuestionRepository) Create(ctx context.Context, question *questionDomain.Question) error {
	querier := database.GetTx(ctx, r.db)

	answers, err := encodeAnswers(question.IncorrectAnswers)
	if err != nil {
		return err
	}

	query := `INSERT INTO questions (id, question, correct_answer, incorrect_answers, category, difficulty, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = querier.ExecContext(ctx, query,
		question.ID, question.Question, question.CorrectAnswer, answers,
		question.Category, string(question.Difficulty), question.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create question")
	}
	return nil
}

// Delete removes a question by ID.
func (r *PostgreSQLQuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete question")
	}
	return requireAffected(result)
}

// List returns a page of questions ordered by creation time.
func (r *PostgreSQLQuestionRepository) List(
	ctx context.Context,
	category string,
	offset, limit int,
) ([]*questionDomain.Question, error) {
	querier := database.GetTx(ctx, r.db)

	query := postgresSelectQuestion + ` ORDER BY created_at ASC, id ASC LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, category, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list questions")
	}
	return collect(rows, scanPostgresQuestion)
}

// Random returns up to limit questions in random order.
func (r *PostgreSQLQuestionRepository) Random(
	ctx context.Context,
	category string,
	limit int,
) ([]*questionDomain.Question, error) {
	querier := database.GetTx(ctx, r.db)

	query := postgresSelectQuestion + ` ORDER BY RANDOM() LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, category, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to select random questions")
	}
	return collect(rows, scanPostgresQuestion)
}

func scanPostgresQuestion(row scanner) (*questionDomain.Question, error) {
	var question questionDomain.Question
	var answers []byte
	var difficulty string

	err := row.Scan(
		&question.ID, &question.Question, &question.CorrectAnswer, &answers,
		&question.Category, &difficulty, &question.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if question.IncorrectAnswers, err = decodeAnswers(answers); err != nil {
		return nil, err
	}
	question.Difficulty = questionDomain.Difficulty(difficulty)
	return &question, nil
}
