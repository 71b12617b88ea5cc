// Package http provides the /api/questions handlers.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/quiz/internal/httputil"
	questionDomain "github.com/allisson/quiz/internal/question/domain"
	"github.com/allisson/quiz/internal/question/http/dto"
	questionUseCase "github.com/allisson/quiz/internal/question/usecase"
)

// QuestionHandler serves the question catalogue. Role checks happen in the
// authorization middleware before these handlers run.
type QuestionHandler struct {
	questionUseCase questionUseCase.QuestionUseCase
	logger          *slog.Logger
}

// NewQuestionHandler creates a QuestionHandler.
func NewQuestionHandler(questionUseCase questionUseCase.QuestionUseCase, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionUseCase: questionUseCase,
		logger:          logger,
	}
}

// ListHandler lists questions, optionally filtered by category.
// GET /api/questions?category=math&offset=0&limit=50
func (h *QuestionHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	questions, err := h.questionUseCase.List(c.Request.Context(), c.Query("category"), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapQuestionsToListResponse(questions))
}

// RandomHandler picks random questions for a game.
// GET /api/questions/random?category=sports&limit=5
func (h *QuestionHandler) RandomHandler(c *gin.Context) {
	limit, err := httputil.ParseLimit(c, questionDomain.DefaultRandomLimit, questionDomain.MaxRandomLimit)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	questions, err := h.questionUseCase.Random(c.Request.Context(), c.Query("category"), limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapQuestionsToListResponse(questions))
}

// CreateHandler adds a question to the catalogue.
// POST /api/questions/create - 201 with the stored question.
func (h *QuestionHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	question, err := h.questionUseCase.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapQuestionToResponse(question))
}

// DeleteHandler removes a question.
// DELETE /api/questions/:id - 204
func (h *QuestionHandler) DeleteHandler(c *gin.Context) {
	id, err := httputil.ParseUUIDParam(c, "id")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.questionUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
