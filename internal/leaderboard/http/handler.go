// Package http provides the /api/leaderboard handlers.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/quiz/internal/auth/domain"
	authHTTP "github.com/allisson/quiz/internal/auth/http"
	"github.com/allisson/quiz/internal/httputil"
	leaderboardDomain "github.com/allisson/quiz/internal/leaderboard/domain"
	"github.com/allisson/quiz/internal/leaderboard/http/dto"
	leaderboardUseCase "github.com/allisson/quiz/internal/leaderboard/usecase"
)

// LeaderboardHandler serves rankings and statistics.
type LeaderboardHandler struct {
	leaderboardUseCase leaderboardUseCase.LeaderboardUseCase
	logger             *slog.Logger
}

// NewLeaderboardHandler creates a LeaderboardHandler.
func NewLeaderboardHandler(
	leaderboardUseCase leaderboardUseCase.LeaderboardUseCase,
	logger *slog.Logger,
) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardUseCase: leaderboardUseCase,
		logger:             logger,
	}
}

// TopHandler returns the global ranking.
// GET /api/leaderboard/top10?limit=10
func (h *LeaderboardHandler) TopHandler(c *gin.Context) {
	limit, err := httputil.ParseLimit(c, leaderboardDomain.DefaultLimit, leaderboardDomain.MaxLimit)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	entries, err := h.leaderboardUseCase.Top(c.Request.Context(), limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEntriesToResponse(entries))
}

// TopByCategoryHandler returns the ranking of one category.
// GET /api/leaderboard/top10/:category?limit=10
func (h *LeaderboardHandler) TopByCategoryHandler(c *gin.Context) {
	limit, err := httputil.ParseLimit(c, leaderboardDomain.DefaultLimit, leaderboardDomain.MaxLimit)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	entries, err := h.leaderboardUseCase.TopByCategory(c.Request.Context(), c.Param("category"), limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEntriesToResponse(entries))
}

// UserStatsHandler returns the caller's statistics.
// GET /api/leaderboard/user/stats
func (h *LeaderboardHandler) UserStatsHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrUnauthenticated, h.logger)
		return
	}

	stats, err := h.leaderboardUseCase.UserStats(c.Request.Context(), identity.UserID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserStatsToResponse(stats))
}

// CategoriesHandler returns per-category session counts.
// GET /api/leaderboard/categories
func (h *LeaderboardHandler) CategoriesHandler(c *gin.Context) {
	stats, err := h.leaderboardUseCase.CategoryStats(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCategoryStatsToListResponse(stats))
}
