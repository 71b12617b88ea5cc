// Package dto provides the request and response bodies of the /api/questions endpoints.
package dto

import (
	"time"

	questionDomain "github.com/allisson/quiz/internal/question/domain"
)

// CreateQuestionRequest is the body of POST /api/questions/create. Field
// rules are enforced by the use case.
type CreateQuestionRequest struct {
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correctAnswer"`
	IncorrectAnswers []string `json:"incorrectAnswers"`
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
}

// ToDomain converts the request to use case input.
func (r *CreateQuestionRequest) ToDomain() *questionDomain.CreateQuestionInput {
	return &questionDomain.CreateQuestionInput{
		Question:         r.Question,
		CorrectAnswer:    r.CorrectAnswer,
		IncorrectAnswers: r.IncorrectAnswers,
		Category:         r.Category,
		Difficulty:       r.Difficulty,
	}
}

// QuestionResponse represents a question in API responses.
type QuestionResponse struct {
	ID               string    `json:"id"`
	Question         string    `json:"question"`
	CorrectAnswer    string    `json:"correctAnswer"`
	IncorrectAnswers []string  `json:"incorrectAnswers"`
	Category         string    `json:"category"`
	Difficulty       string    `json:"difficulty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// MapQuestionToResponse converts a domain question.
func MapQuestionToResponse(q *questionDomain.Question) QuestionResponse {
	return QuestionResponse{
		ID:               q.ID.String(),
		Question:         q.Question,
		CorrectAnswer:    q.CorrectAnswer,
		IncorrectAnswers: q.IncorrectAnswers,
		Category:         q.Category,
		Difficulty:       string(q.Difficulty),
		CreatedAt:        q.CreatedAt,
	}
}

// ListQuestionsResponse wraps a page of questions.
type ListQuestionsResponse struct {
	Data []QuestionResponse `json:"data"`
}

// MapQuestionsToListResponse converts domain questions.
func MapQuestionsToListResponse(questions []*questionDomain.Question) ListQuestionsResponse {
	data := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		data = append(data, MapQuestionToResponse(q))
	}
	return ListQuestionsResponse{Data: data}
}
