// Package http assembles the gin router and runs the API and metrics servers.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/quiz/internal/auth/domain"
	authHTTP "github.com/allisson/quiz/internal/auth/http"
	authUseCase "github.com/allisson/quiz/internal/auth/usecase"
	"github.com/allisson/quiz/internal/config"
	gameHTTP "github.com/allisson/quiz/internal/game/http"
	leaderboardHTTP "github.com/allisson/quiz/internal/leaderboard/http"
	"github.com/allisson/quiz/internal/metrics"
	questionHTTP "github.com/allisson/quiz/internal/question/http"
)

// readinessTimeout bounds the database ping of /ready.
const readinessTimeout = 2 * time.Second

// Server is the API HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// Dependencies are the components mounted by SetupRouter. MetricsProvider is
// nil when metrics are disabled.
type Dependencies struct {
	AuthUseCase        authUseCase.AuthUseCase
	Policy             *authDomain.Policy
	AuthHandler        *authHTTP.AuthHandler
	GameHandler        *gameHTTP.GameHandler
	LeaderboardHandler *leaderboardHTTP.LeaderboardHandler
	QuestionHandler    *questionHTTP.QuestionHandler
	MetricsProvider    *metrics.Provider
}

// NewServer creates a Server. db may be nil, in which case /ready reports not ready.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the middleware chain and registers every route.
// Authentication runs on every request and never rejects on its own; the
// authorization policy decides whether a request without an identity may pass.
// ctx bounds background work such as the login limiter cleanup.
func (s *Server) SetupRouter(ctx context.Context, cfg *config.Config, deps Dependencies) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if deps.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(deps.MetricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.Use(authHTTP.AuthenticationMiddleware(deps.AuthUseCase, s.logger))
	router.Use(authHTTP.AuthorizationMiddleware(deps.Policy, s.logger))

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", deps.AuthHandler.RegisterHandler)
		loginHandlers := []gin.HandlerFunc{}
		if cfg.RateLimitLoginEnabled {
			loginHandlers = append(loginHandlers, authHTTP.LoginRateLimitMiddleware(
				ctx, cfg.RateLimitLoginRequestsPerSec, cfg.RateLimitLoginBurst, s.logger,
			))
		}
		loginHandlers = append(loginHandlers, deps.AuthHandler.LoginHandler)
		auth.POST("/login", loginHandlers...)
		auth.GET("/me", deps.AuthHandler.MeHandler)
	}

	game := api.Group("/game")
	{
		game.POST("/start", deps.GameHandler.StartHandler)
		game.PUT("/:id/finish", deps.GameHandler.FinishHandler)
		game.GET("/history", deps.GameHandler.HistoryHandler)
		game.GET("/:id", deps.GameHandler.GetHandler)
	}

	leaderboard := api.Group("/leaderboard")
	{
		leaderboard.GET("/top10", deps.LeaderboardHandler.TopHandler)
		leaderboard.GET("/top10/:category", deps.LeaderboardHandler.TopByCategoryHandler)
		leaderboard.GET("/user/stats", deps.LeaderboardHandler.UserStatsHandler)
		leaderboard.GET("/categories", deps.LeaderboardHandler.CategoriesHandler)
	}

	questions := api.Group("/questions")
	{
		questions.GET("", deps.QuestionHandler.ListHandler)
		questions.GET("/random", deps.QuestionHandler.RandomHandler)
		questions.POST("/create", deps.QuestionHandler.CreateHandler)
		questions.DELETE("/:id", deps.QuestionHandler.DeleteHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler pings the database.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
