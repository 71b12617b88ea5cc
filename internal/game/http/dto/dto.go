// Package dto provides the request and response bodies of the /api/game endpoints.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	gameDomain "github.com/allisson/quiz/internal/game/domain"
	customValidation "github.com/allisson/quiz/internal/validation"
)

// StartGameRequest is the body of POST /api/game/start.
type StartGameRequest struct {
	Category       string `json:"category"`
	TotalQuestions int    `json:"totalQuestions"`
}

// Validate checks the request.
func (r *StartGameRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Category, validation.Required, customValidation.InFold(gameDomain.Categories...)),
		validation.Field(&r.TotalQuestions,
			validation.Required,
			validation.Min(gameDomain.MinQuestions),
			validation.Max(gameDomain.MaxQuestions),
		),
	)
}

// FinishGameRequest is the body of PUT /api/game/:id/finish. CorrectAnswers
// is a pointer so a missing field can be told apart from zero.
type FinishGameRequest struct {
	CorrectAnswers *int `json:"correctAnswers"`
}

// Validate checks the request.
func (r *FinishGameRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CorrectAnswers, validation.NotNil, validation.Min(0)),
	)
}

// SessionResponse represents a game session in API responses.
type SessionResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	Category       string     `json:"category"`
	TotalQuestions int        `json:"totalQuestions"`
	CorrectAnswers int        `json:"correctAnswers"`
	Score          int        `json:"score"`
	StartedAt      time.Time  `json:"startedAt"`
	FinishedAt     *time.Time `json:"finishedAt"`
}

// MapSessionToResponse converts a domain session.
func MapSessionToResponse(session *gameDomain.Session) SessionResponse {
	return SessionResponse{
		ID:             session.ID.String(),
		UserID:         session.UserID.String(),
		Category:       session.Category,
		TotalQuestions: session.TotalQuestions,
		CorrectAnswers: session.CorrectAnswers,
		Score:          session.Score,
		StartedAt:      session.StartedAt,
		FinishedAt:     session.FinishedAt,
	}
}

// ListSessionsResponse is a page of sessions.
type ListSessionsResponse struct {
	Data []SessionResponse `json:"data"`
}

// MapSessionsToListResponse converts a page of domain sessions.
func MapSessionsToListResponse(sessions []*gameDomain.Session) ListSessionsResponse {
	data := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		data = append(data, MapSessionToResponse(s))
	}
	return ListSessionsResponse{Data: data}
}
