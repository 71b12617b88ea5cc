// Package domain defines leaderboard rankings and player statistics derived
// from finished game sessions.
package domain

import (
	"github.com/google/uuid"

	"github.com/allisson/quiz/internal/errors"
)

const (
	// DefaultLimit is the size of a leaderboard when none is requested.
	DefaultLimit = 10
	// MaxLimit caps the size of a leaderboard.
	MaxLimit = 100
)

// Entry is one ranked player. Category is empty on the global leaderboard.
type Entry struct {
	UserID      uuid.UUID `json:"userId"`
	Username    string    `json:"username"`
	GamesPlayed int64     `json:"gamesPlayed"`
	TotalScore  int64     `json:"totalScore"`
	Category    string    `json:"category,omitempty"`
}

// UserStats aggregates the finished sessions of one player.
type UserStats struct {
	UserID       uuid.UUID
	Username     string
	GamesPlayed  int64
	TotalScore   int64
	AverageScore float64
}

// CategoryStats counts finished sessions in one category.
type CategoryStats struct {
	Category    string
	GamesPlayed int64
}

// ErrUserNotFound is returned for statistics of an unknown user.
var ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")
