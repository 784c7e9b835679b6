package login

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventra/internal/http-server/handlers/auth/login/mocks"
	"eventra/internal/lib/jwt"
	"eventra/internal/lib/logger/handlers/slogdiscard"
	"eventra/internal/lib/password"
	"eventra/internal/models"
	"eventra/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testUser(t *testing.T) *models.User {
	t.Helper()

	hash, err := password.Hash("s3cret-pass")
	require.NoError(t, err)

	return &models.User{
		ID:           5,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		TokenVersion: 2,
	}
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success with username", func(t *testing.T) {
		t.Parallel()

		user := testUser(t)

		mockProvider := mocks.NewUserProvider(t)
		mockProvider.On("GetUserByUsername", "alice").Return(user, nil)

		handler := New(logger, testSecret, time.Hour, mockProvider)

		rr := doLogin(t, handler, `{"identifier": "alice", "password": "s3cret-pass"}`)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		assert.Equal(t, "OK", resp.Status)
		assert.Equal(t, 5, resp.ID)
		assert.Equal(t, "bearer", resp.TokenType)

		// The issued token must carry the user's current session version.
		claims, err := jwt.ParseToken(resp.AccessToken, testSecret)
		require.NoError(t, err)
		assert.Equal(t, 5, claims.UserID)
		assert.Equal(t, "alice@example.com", claims.Email)
		assert.Equal(t, 2, claims.TokenVersion)
	})

	t.Run("Success with email", func(t *testing.T) {
		t.Parallel()

		user := testUser(t)

		mockProvider := mocks.NewUserProvider(t)
		mockProvider.On("GetUserByEmail", "alice@example.com").Return(user, nil)

		handler := New(logger, testSecret, time.Hour, mockProvider)

		rr := doLogin(t, handler, `{"identifier": "alice@example.com", "password": "s3cret-pass"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Wrong password", func(t *testing.T) {
		t.Parallel()

		user := testUser(t)

		mockProvider := mocks.NewUserProvider(t)
		mockProvider.On("GetUserByUsername", "alice").Return(user, nil)

		handler := New(logger, testSecret, time.Hour, mockProvider)

		rr := doLogin(t, handler, `{"identifier": "alice", "password": "wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid credentials")
	})

	t.Run("Unknown identifier", func(t *testing.T) {
		t.Parallel()

		mockProvider := mocks.NewUserProvider(t)
		mockProvider.On("GetUserByUsername", "nobody").Return(nil, storage.ErrUserNotFound)

		handler := New(logger, testSecret, time.Hour, mockProvider)

		rr := doLogin(t, handler, `{"identifier": "nobody", "password": "whatever"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid credentials")
	})

	t.Run("Missing fields", func(t *testing.T) {
		t.Parallel()

		mockProvider := mocks.NewUserProvider(t)
		handler := New(logger, testSecret, time.Hour, mockProvider)

		rr := doLogin(t, handler, `{}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func doLogin(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	return rr
}
