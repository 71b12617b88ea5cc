package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/quiz/internal/auth/domain"
	"github.com/allisson/quiz/internal/auth/http/dto"
	httpMocks "github.com/allisson/quiz/internal/auth/http/mocks"
	apperrors "github.com/allisson/quiz/internal/errors"
	userDomain "github.com/allisson/quiz/internal/user/domain"
)

func setupAuthTestHandler(t *testing.T) (*AuthHandler, *httpMocks.MockAuthUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	uc := &httpMocks.MockAuthUseCase{}
	return NewAuthHandler(uc, testLogger()), uc
}

func createTestContext(method, url string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, url, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestAuthHandler_RegisterHandler(t *testing.T) {
	t.Run("Success_CreatesPlayer", func(t *testing.T) {
		handler, uc := setupAuthTestHandler(t)
		user := &userDomain.User{
			ID:       uuid.Must(uuid.NewV7()),
			Username: "alice",
			Email:    "alice@example.com",
			Role:     userDomain.RolePlayer,
		}
		uc.On("Register", mock.Anything, &authDomain.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret1",
			Role:     userDomain.RolePlayer,
		}).Return(user, nil).Once()

		c, w := createTestContext(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret1",
		})
		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp dto.RegisterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, "PLAYER", resp.Role)
		assert.NotEmpty(t, resp.Message)
		uc.AssertExpectations(t)
	})

	t.Run("Failure_DuplicateUsernameIsBadRequest", func(t *testing.T) {
		handler, uc := setupAuthTestHandler(t)
		uc.On("Register", mock.Anything, mock.Anything).Return(nil, authDomain.ErrDuplicateUsername).Once()

		c, w := createTestContext(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret1",
		})
		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "username is already taken")
	})

	t.Run("Failure_UseCaseValidationIsBadRequest", func(t *testing.T) {
		handler, uc := setupAuthTestHandler(t)
		uc.On("Register", mock.Anything, mock.Anything).
			Return(nil, apperrors.Wrap(apperrors.ErrInvalidInput, "Password: the length must be at least 6")).Once()

		c, w := createTestContext(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "123",
		})
		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failure_MissingFields", func(t *testing.T) {
		handler, uc := setupAuthTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/auth/register", dto.RegisterRequest{})
		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Failure_InvalidJSON", func(t *testing.T) {
		handler, _ := setupAuthTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/auth/register", "{not json")
		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_StoreUnavailable", func(t *testing.T) {
		handler, uc := setupAuthTestHandler(t)
		uc.On("Register", mock.Anything, mock.Anything).
			Return(nil, errors.Join(authDomain.ErrStoreUnavailable, errors.New("db down"))).Once()

		c, w := createTestContext(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret1",
		})
		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db down")
	})
}

func TestAuthHandler_LoginHandler(t *testing.T) {
	t.Run("Success_ReturnsToken", func(t *testing.T) {
		handler, uc := setupAuthTestHandler(t)
		user := &userDomain.User{
			ID:       uuid.Must(uuid.NewV7()),
			Username: "alice",
			Email:    "alice@example.com",
			Role:     userDomain.RolePlayer,
		}
		uc.On("Login", mock.Anything, &authDomain.LoginInput{UsernameOrEmail: "alice", Password: "secret1"}).
			Return(&authDomain.LoginOutput{
				Token:     "jwt",
				TokenType: authDomain.TokenTypeBearer,
				User:      user,
				ExpiresIn: (24 * time.Hour).Milliseconds(),
			}, nil).Once()

		c, w := createTestContext(http.MethodPost, "/api/auth/login", dto.LoginRequest{
			UsernameOrEmail: "alice",
			Password:        "secret1",
		})
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "jwt", resp.Token)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, user.ID.String(), resp.UserID)
		assert.Equal(t, int64(86400000), resp.ExpiresIn)
	})

	t.Run("Failure_InvalidCredentials", func(t *testing.T) {
		handler, uc := setupAuthTestHandler(t)
		uc.On("Login", mock.Anything, mock.Anything).Return(nil, authDomain.ErrInvalidCredentials).Once()

		c, w := createTestContext(http.MethodPost, "/api/auth/login", dto.LoginRequest{
			UsernameOrEmail: "alice",
			Password:        "wrong",
		})
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failure_MissingPassword", func(t *testing.T) {
		handler, uc := setupAuthTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/auth/login", dto.LoginRequest{UsernameOrEmail: "alice"})
		handler.LoginHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_MeHandler(t *testing.T) {
	t.Run("Success_ReturnsStoredAccount", func(t *testing.T) {
		handler, uc := setupAuthTestHandler(t)
		userID := uuid.Must(uuid.NewV7())
		uc.On("Profile", mock.Anything, userID).Return(&userDomain.User{
			ID:       userID,
			Username: "alice",
			Email:    "alice@example.com",
			Role:     userDomain.RolePlayer,
		}, nil).Once()

		c, w := createTestContext(http.MethodGet, "/api/auth/me", nil)
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(),
			&authDomain.Identity{Subject: "alice", Role: userDomain.RolePlayer, UserID: userID}))
		handler.MeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"id":"`+userID.String()+`","username":"alice","email":"alice@example.com","role":"PLAYER"}`,
			w.Body.String())
		uc.AssertExpectations(t)
	})

	t.Run("Failure_AccountGone", func(t *testing.T) {
		handler, uc := setupAuthTestHandler(t)
		userID := uuid.Must(uuid.NewV7())
		uc.On("Profile", mock.Anything, userID).Return(nil, userDomain.ErrUserNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/api/auth/me", nil)
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(),
			&authDomain.Identity{Subject: "alice", Role: userDomain.RolePlayer, UserID: userID}))
		handler.MeHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failure_NoIdentity", func(t *testing.T) {
		handler, uc := setupAuthTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/api/auth/me", nil)
		handler.MeHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		uc.AssertNotCalled(t, "Profile", mock.Anything, mock.Anything)
	})
}
