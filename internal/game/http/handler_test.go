package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
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
	authHTTP "github.com/allisson/quiz/internal/auth/http"
	gameDomain "github.com/allisson/quiz/internal/game/domain"
	"github.com/allisson/quiz/internal/game/http/dto"
	gameMocks "github.com/allisson/quiz/internal/game/http/mocks"
	userDomain "github.com/allisson/quiz/internal/user/domain"
)

func setupGameRouter(t *testing.T, identity *authDomain.Identity) (*gin.Engine, *gameMocks.MockGameUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc := &gameMocks.MockGameUseCase{}
	handler := NewGameHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if identity != nil {
			c.Request = c.Request.WithContext(authHTTP.WithIdentity(c.Request.Context(), identity))
		}
		c.Next()
	})
	router.POST("/api/game/start", handler.StartHandler)
	router.PUT("/api/game/:id/finish", handler.FinishHandler)
	router.GET("/api/game/history", handler.HistoryHandler)
	router.GET("/api/game/:id", handler.GetHandler)
	return router, uc
}

func serve(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func testIdentity() *authDomain.Identity {
	return &authDomain.Identity{Subject: "alice", Role: userDomain.RolePlayer, UserID: uuid.Must(uuid.NewV7())}
}

func TestGameHandler_StartHandler(t *testing.T) {
	t.Run("Success_Created", func(t *testing.T) {
		identity := testIdentity()
		router, uc := setupGameRouter(t, identity)
		session := &gameDomain.Session{
			ID:             uuid.Must(uuid.NewV7()),
			UserID:         identity.UserID,
			Category:       "sports",
			TotalQuestions: 10,
			StartedAt:      time.Now().UTC(),
		}
		uc.On("Start", mock.Anything, identity.UserID, "Sports", 10).Return(session, nil).Once()

		rec := serve(router, http.MethodPost, "/api/game/start", dto.StartGameRequest{Category: "Sports", TotalQuestions: 10})

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.SessionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, session.ID.String(), resp.ID)
		assert.Nil(t, resp.FinishedAt)
	})

	t.Run("Failure_InvalidCategory", func(t *testing.T) {
		router, uc := setupGameRouter(t, testIdentity())

		rec := serve(router, http.MethodPost, "/api/game/start", dto.StartGameRequest{Category: "cooking", TotalQuestions: 10})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		uc.AssertNotCalled(t, "Start", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure_Unauthenticated", func(t *testing.T) {
		router, _ := setupGameRouter(t, nil)

		rec := serve(router, http.MethodPost, "/api/game/start", dto.StartGameRequest{Category: "math", TotalQuestions: 5})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGameHandler_FinishHandler(t *testing.T) {
	identity := testIdentity()
	sessionID := uuid.Must(uuid.NewV7())
	correct := 4

	t.Run("Success_Scored", func(t *testing.T) {
		router, uc := setupGameRouter(t, identity)
		finishedAt := time.Now().UTC()
		uc.On("Finish", mock.Anything, sessionID, identity.UserID, 4).Return(&gameDomain.Session{
			ID: sessionID, UserID: identity.UserID, Category: "math", TotalQuestions: 5,
			CorrectAnswers: 4, Score: 40, FinishedAt: &finishedAt,
		}, nil).Once()

		rec := serve(router, http.MethodPut, "/api/game/"+sessionID.String()+"/finish", dto.FinishGameRequest{CorrectAnswers: &correct})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"score":40`)
	})

	t.Run("Failure_NotOwner", func(t *testing.T) {
		router, uc := setupGameRouter(t, identity)
		uc.On("Finish", mock.Anything, sessionID, identity.UserID, 4).Return(nil, gameDomain.ErrNotSessionOwner).Once()

		rec := serve(router, http.MethodPut, "/api/game/"+sessionID.String()+"/finish", dto.FinishGameRequest{CorrectAnswers: &correct})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Failure_AlreadyFinished", func(t *testing.T) {
		router, uc := setupGameRouter(t, identity)
		uc.On("Finish", mock.Anything, sessionID, identity.UserID, 4).Return(nil, gameDomain.ErrSessionFinished).Once()

		rec := serve(router, http.MethodPut, "/api/game/"+sessionID.String()+"/finish", dto.FinishGameRequest{CorrectAnswers: &correct})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Failure_MissingCorrectAnswers", func(t *testing.T) {
		router, _ := setupGameRouter(t, identity)

		rec := serve(router, http.MethodPut, "/api/game/"+sessionID.String()+"/finish", map[string]any{})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Failure_InvalidID", func(t *testing.T) {
		router, _ := setupGameRouter(t, identity)

		rec := serve(router, http.MethodPut, "/api/game/42/finish", dto.FinishGameRequest{CorrectAnswers: &correct})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGameHandler_GetAndHistory(t *testing.T) {
	identity := testIdentity()
	router, uc := setupGameRouter(t, identity)
	sessionID := uuid.Must(uuid.NewV7())

	uc.On("Get", mock.Anything, sessionID).Return(nil, gameDomain.ErrSessionNotFound).Once()
	uc.On("ListByUser", mock.Anything, identity.UserID, 0, 10).
		Return([]*gameDomain.Session{{ID: sessionID, UserID: identity.UserID, Category: "math"}}, nil).Once()

	rec := serve(router, http.MethodGet, "/api/game/"+sessionID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, http.MethodGet, "/api/game/history?limit=10", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ListSessionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
}
