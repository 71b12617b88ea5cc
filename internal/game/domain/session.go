// Package domain defines quiz game sessions and their scoring rules.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/quiz/internal/errors"
)

const (
	// MinQuestions and MaxQuestions bound the size of a session.
	MinQuestions = 1
	MaxQuestions = 50

	// PointsPerCorrectAnswer is the score awarded for each correct answer.
	PointsPerCorrectAnswer = 10
)

// Categories lists the quiz categories a session can be played in.
var Categories = []string{"sports", "math", "geography", "science", "history", "movies", "games"}

// Session is one quiz played by a user. FinishedAt is nil while the game is in progress.
type Session struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Category       string
	TotalQuestions int
	CorrectAnswers int
	Score          int
	StartedAt      time.Time
	FinishedAt     *time.Time
}

// Domain-specific errors for game sessions.
var (
	ErrSessionNotFound = errors.Wrap(errors.ErrNotFound, "game session not found")

	// ErrSessionFinished indicates the session already has a final score.
	ErrSessionFinished = errors.Wrap(errors.ErrConflict, "game session already finished")

	// ErrNotSessionOwner indicates a user tried to finish someone else's session.
	ErrNotSessionOwner = errors.Wrap(errors.ErrForbidden, "game session belongs to another user")

	ErrInvalidCategory       = errors.Wrap(errors.ErrInvalidInput, "invalid category")
	ErrInvalidCorrectAnswers = errors.Wrap(errors.ErrInvalidInput, "correct answers out of range")
)

// NormalizeCategory lowercases and trims a category name.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// IsValidCategory reports whether category, in any case, is a known category.
func IsValidCategory(category string) bool {
	normalized := NormalizeCategory(category)
	for _, c := range Categories {
		if c == normalized {
			return true
		}
	}
	return false
}

// CalculateScore returns the score for a number of correct answers.
func CalculateScore(correctAnswers int) int {
	return correctAnswers * PointsPerCorrectAnswer
}

// IsFinished reports whether the session has a final score.
func (s *Session) IsFinished() bool {
	return s.FinishedAt != nil
}

// Finish records the result of the session at the given time.
func (s *Session) Finish(correctAnswers int, at time.Time) error {
	if s.IsFinished() {
		return ErrSessionFinished
	}
	if correctAnswers < 0 || correctAnswers > s.TotalQuestions {
		return ErrInvalidCorrectAnswers
	}

	s.CorrectAnswers = correctAnswers
	s.Score = CalculateScore(correctAnswers)
	s.FinishedAt = &at
	return nil
}
