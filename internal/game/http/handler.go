// Package http provides the /api/game handlers.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/quiz/internal/auth/domain"
	authHTTP "github.com/allisson/quiz/internal/auth/http"
	"github.com/allisson/quiz/internal/game/http/dto"
	gameUseCase "github.com/allisson/quiz/internal/game/usecase"
	"github.com/allisson/quiz/internal/httputil"
	customValidation "github.com/allisson/quiz/internal/validation"
)

// GameHandler serves the game session endpoints. Every route requires an
// authenticated identity.
type GameHandler struct {
	gameUseCase gameUseCase.GameUseCase
	logger      *slog.Logger
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(gameUseCase gameUseCase.GameUseCase, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameUseCase: gameUseCase,
		logger:      logger,
	}
}

func (h *GameHandler) identity(c *gin.Context) (*authDomain.Identity, bool) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrUnauthenticated, h.logger)
		return nil, false
	}
	return identity, true
}

// StartHandler starts a session for the caller.
// POST /api/game/start - 201 with the new session.
func (h *GameHandler) StartHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	session, err := h.gameUseCase.Start(c.Request.Context(), identity.UserID, req.Category, req.TotalQuestions)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapSessionToResponse(session))
}

// FinishHandler records the result of one of the caller's sessions.
// PUT /api/game/:id/finish - 200 with the scored session.
func (h *GameHandler) FinishHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	sessionID, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.FinishGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	session, err := h.gameUseCase.Finish(c.Request.Context(), sessionID, identity.UserID, *req.CorrectAnswers)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSessionToResponse(session))
}

// GetHandler returns a session by ID.
// GET /api/game/:id
func (h *GameHandler) GetHandler(c *gin.Context) {
	sessionID, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	session, err := h.gameUseCase.Get(c.Request.Context(), sessionID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSessionToResponse(session))
}

// HistoryHandler lists the caller's sessions, most recent first.
// GET /api/game/history?offset=0&limit=50
func (h *GameHandler) HistoryHandler(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	sessions, err := h.gameUseCase.ListByUser(c.Request.Context(), identity.UserID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSessionsToListResponse(sessions))
}
