package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/quiz/internal/auth/domain"
	authUseCase "github.com/allisson/quiz/internal/auth/usecase"
	apperrors "github.com/allisson/quiz/internal/errors"
	"github.com/allisson/quiz/internal/httputil"
)

const bearerPrefix = "bearer "

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}
	return token, true
}

// AuthenticationMiddleware resolves a bearer token into a request identity.
//
// It never rejects a request: a missing, malformed, forged or expired token
// simply leaves the request unauthenticated and AuthorizationMiddleware decides
// what to do with it. Credential store outages are logged at warn level and
// also leave the request unauthenticated. A request that already carries an
// identity is passed through untouched. Cookies are ignored.
func AuthenticationMiddleware(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if _, ok := GetIdentity(ctx); ok {
			c.Next()
			return
		}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		identity, err := authUseCase.Authenticate(ctx, token)
		if err != nil {
			if apperrors.Is(err, authDomain.ErrStoreUnavailable) {
				logger.Warn("authentication skipped: credential store unavailable",
					slog.Any("error", err))
			} else {
				logger.Debug("authentication failed", slog.String("error", err.Error()))
			}
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(WithIdentity(ctx, identity))
		logger.Debug("authentication successful",
			slog.String("subject", identity.Subject),
			slog.String("role", string(identity.Role)))

		c.Next()
	}
}

// AuthorizationMiddleware enforces policy on every request. It must run after
// AuthenticationMiddleware. Unauthenticated requests to protected paths get
// 401 and requests below the minimum role get 403.
func AuthorizationMiddleware(policy *authDomain.Policy, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := GetIdentity(c.Request.Context())
		path := c.Request.URL.Path

		if err := policy.Evaluate(c.Request.Method, path, identity); err != nil {
			attrs := []any{
				slog.String("method", c.Request.Method),
				slog.String("path", path),
			}
			if identity != nil {
				attrs = append(attrs,
					slog.String("subject", identity.Subject),
					slog.String("role", string(identity.Role)))
			}
			logger.Debug("authorization denied", attrs...)
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
