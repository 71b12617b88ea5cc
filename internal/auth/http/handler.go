package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/quiz/internal/auth/domain"
	"github.com/allisson/quiz/internal/auth/http/dto"
	authUseCase "github.com/allisson/quiz/internal/auth/usecase"
	apperrors "github.com/allisson/quiz/internal/errors"
	"github.com/allisson/quiz/internal/httputil"
	userDomain "github.com/allisson/quiz/internal/user/domain"
	customValidation "github.com/allisson/quiz/internal/validation"
)

// AuthHandler serves the /api/auth endpoints.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// RegisterHandler creates a PLAYER account.
// POST /api/auth/register - 201 on success, 400 on validation failure or a
// taken username or email.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleAuthValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.authUseCase.Register(c.Request.Context(), &authDomain.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     userDomain.RolePlayer,
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidInput) || apperrors.Is(err, apperrors.ErrConflict) {
			httputil.HandleAuthValidationErrorGin(c, err, h.logger)
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToRegisterResponse(user))
}

// LoginHandler exchanges credentials for a bearer token.
// POST /api/auth/login - 200 with the token, 401 on bad credentials.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleAuthValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.authUseCase.Login(c.Request.Context(), &authDomain.LoginInput{
		UsernameOrEmail: req.UsernameOrEmail,
		Password:        req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLoginOutputToResponse(output))
}

// MeHandler returns the account of the caller.
// GET /api/auth/me - the path is public in the policy, so the missing
// identity check happens here.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	identity, ok := GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrUnauthenticated, h.logger)
		return
	}

	user, err := h.authUseCase.Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToMeResponse(user))
}
