// Package repository provides SQL persistence for the question catalogue.
// Incorrect answers are stored as a JSON array column.
package repository

import (
	"database/sql"
	"encoding/json"

	questionDomain "github.com/allisson/quiz/internal/question/domain"

	apperrors "github.com/allisson/quiz/internal/errors"
)

type scanner interface {
	Scan(dest ...any) error
}

func encodeAnswers(answers []string) (string, error) {
	if answers == nil {
		answers = []string{}
	}
	raw, err := json.Marshal(answers)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encode incorrect answers")
	}
	return string(raw), nil
}

func decodeAnswers(raw []byte) ([]string, error) {
	answers := make([]string, 0)
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode incorrect answers")
	}
	return answers, nil
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return questionDomain.ErrQuestionNotFound
	}
	return nil
}

func collect(rows *sql.Rows, scan func(scanner) (*questionDomain.Question, error)) ([]*questionDomain.Question, error) {
	defer func() {
		_ = rows.Close()
	}()

	questions := make([]*questionDomain.Question, 0)
	for rows.Next() {
		question, err := scan(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan question")
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate questions")
	}
	return questions, nil
}
