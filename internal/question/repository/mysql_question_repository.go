package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/quiz/internal/database"
	questionDomain "github.com/allisson/quiz/internal/question/domain"

	apperrors "github.com/allisson/quiz/internal/errors"
)

const mysqlSelectQuestion = `SELECT id, question, correct_answer, incorrect_answers, category, difficulty,
	created_at FROM questions WHERE (? = '' OR category = ?)`

// MySQLQuestionRepository handles question persistence for MySQL. IDs are stored as BINARY(16).
type MySQLQuestionRepository struct {
	db *sql.DB
}

// NewMySQLQuestionRepository creates a new MySQLQuestionRepository.
func NewMySQLQuestionRepository(db *sql.DB) *MySQLQuestionRepository {
	return &MySQLQuestionRepository{db: db}
}

// Create inserts a new question.
func (r *MySQLQuestionRepository) Create(ctx context.Context, question *questionDomain.Question) error {
	querier := database.GetTx(ctx, r.db)

	id, err := question.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	answers, err := encodeAnswers(question.IncorrectAnswers)
	if err != nil {
		return err
	}

	query := `INSERT INTO questions (id, question, correct_answer, incorrect_answers, category, difficulty, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query,
		id, question.Question, question.CorrectAnswer, answers,
		question.Category, string(question.Difficulty), question.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create question")
	}
	return nil
}

// Delete removes a question by ID.
func (r *MySQLQuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete question")
	}
	return requireAffected(result)
}

// List returns a page of questions ordered by creation time.
func (r *MySQLQuestionRepository) List(
	ctx context.Context,
	category string,
	offset, limit int,
) ([]*questionDomain.Question, error) {
	querier := database.GetTx(ctx, r.db)

	query := mysqlSelectQuestion + ` ORDER BY created_at ASC, id ASC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, category, category, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list questions")
	}
	return collect(rows, scanMySQLQuestion)
}

// Random returns up to limit questions in random order.
func (r *MySQLQuestionRepository) Random(
	ctx context.Context,
	category string,
	limit int,
) ([]*questionDomain.Question, error) {
	querier := database.GetTx(ctx, r.db)

	query := mysqlSelectQuestion + ` ORDER BY RAND() LIMIT ?`

	rows, err := querier.QueryContext(ctx, query, category, category, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to select random questions")
	}
	return collect(rows, scanMySQLQuestion)
}

func scanMySQLQuestion(row scanner) (*questionDomain.Question, error) {
	var question questionDomain.Question
	var id, answers []byte
	var difficulty string

	err := row.Scan(
		&id, &question.Question, &question.CorrectAnswer, &answers,
		&question.Category, &difficulty, &question.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := question.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if question.IncorrectAnswers, err = decodeAnswers(answers); err != nil {
		return nil, err
	}
	question.Difficulty = questionDomain.Difficulty(difficulty)
	return &question, nil
}
