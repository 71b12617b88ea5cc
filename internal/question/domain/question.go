// Package domain defines the quiz question catalogue.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/quiz/internal/errors"
)

// Difficulty grades a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the accepted difficulty values.
var Difficulties = []string{string(DifficultyEasy), string(DifficultyMedium), string(DifficultyHard)}

const (
	// DefaultRandomLimit is the number of random questions served when none is requested.
	DefaultRandomLimit = 10
	// MaxRandomLimit matches the largest game session.
	MaxRandomLimit = 50

	// MaxIncorrectAnswers bounds the distractors of a multiple-choice question.
	MaxIncorrectAnswers = 5
)

// Question is a multiple-choice question. Category is free-form and stored lowercase.
type Question struct {
	ID               uuid.UUID
	Question         string
	CorrectAnswer    string
	IncorrectAnswers []string
	Category         string
	Difficulty       Difficulty
	CreatedAt        time.Time
}

// CreateQuestionInput carries a new catalogue entry.
type CreateQuestionInput struct {
	Question         string
	CorrectAnswer    string
	IncorrectAnswers []string
	Category         string
	Difficulty       string
}

// Domain-specific errors for the question catalogue.
var (
	ErrQuestionNotFound = errors.Wrap(errors.ErrNotFound, "question not found")

	// ErrAnswerRepeated indicates the correct answer also appears among the incorrect ones.
	ErrAnswerRepeated = errors.Wrap(errors.ErrInvalidInput, "correct answer listed as incorrect")
)

// NewQuestion builds a Question from validated input, normalizing category and difficulty.
func NewQuestion(input *CreateQuestionInput, now time.Time) *Question {
	incorrect := make([]string, 0, len(input.IncorrectAnswers))
	for _, answer := range input.IncorrectAnswers {
		incorrect = append(incorrect, strings.TrimSpace(answer))
	}
	return &Question{
		ID:               uuid.Must(uuid.NewV7()),
		Question:         strings.TrimSpace(input.Question),
		CorrectAnswer:    strings.TrimSpace(input.CorrectAnswer),
		IncorrectAnswers: incorrect,
		Category:         strings.ToLower(strings.TrimSpace(input.Category)),
		Difficulty:       Difficulty(strings.ToLower(input.Difficulty)),
		CreatedAt:        now,
	}
}

// HasRepeatedAnswer reports whether the correct answer, ignoring case, is also
// listed as incorrect.
func (q *Question) HasRepeatedAnswer() bool {
	for _, answer := range q.IncorrectAnswers {
		if strings.EqualFold(answer, q.CorrectAnswer) {
			return true
		}
	}
	return false
}
