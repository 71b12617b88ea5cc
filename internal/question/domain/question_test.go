package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewQuestion(t *testing.T) {
	now := time.Now().UTC()

	q := NewQuestion(&CreateQuestionInput{
		Question:         "  What is 2 + 2? ",
		CorrectAnswer:    "4",
		IncorrectAnswers: []string{" 3", "5 "},
		Category:         " Math",
		Difficulty:       "EASY",
	}, now)

	assert.NotEqual(t, uuid.Nil, q.ID)
	assert.Equal(t, "What is 2 + 2?", q.Question)
	assert.Equal(t, []string{"3", "5"}, q.IncorrectAnswers)
	assert.Equal(t, "math", q.Category)
	assert.Equal(t, DifficultyEasy, q.Difficulty)
	assert.Equal(t, now, q.CreatedAt)
}

func TestQuestion_HasRepeatedAnswer(t *testing.T) {
	tests := []struct {
		name      string
		correct   string
		incorrect []string
		want      bool
	}{
		{"distinct answers", "Bern", []string{"Zurich", "Basel"}, false},
		{"repeated ignoring case", "Bern", []string{"Zurich", "bern"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Question{CorrectAnswer: tt.correct, IncorrectAnswers: tt.incorrect}
			assert.Equal(t, tt.want, q.HasRepeatedAnswer())
		})
	}
}
