package logout

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventra/internal/http-server/handlers/auth/logout/mocks"
	mwauth "eventra/internal/http-server/middleware/auth"
	"eventra/internal/lib/logger/handlers/slogdiscard"
	"eventra/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogoutHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	identity := mwauth.Identity{UserID: 5, Email: "alice@example.com"}

	testCases := []struct {
		name           string
		authenticated  bool
		mockSetup      func(m *mocks.SessionRevoker)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:          "Success",
			authenticated: true,
			mockSetup: func(m *mocks.SessionRevoker) {
				m.On("BumpTokenVersion", 5).Return(3, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:           "Unauthenticated",
			authenticated:  false,
			mockSetup:      func(m *mocks.SessionRevoker) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "authentication required",
		},
		{
			name:          "User gone",
			authenticated: true,
			mockSetup: func(m *mocks.SessionRevoker) {
				m.On("BumpTokenVersion", 5).Return(0, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "user not found",
		},
		{
			name:          "Store error",
			authenticated: true,
			mockSetup: func(m *mocks.SessionRevoker) {
				m.On("BumpTokenVersion", 5).Return(0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "failed to log out",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockRevoker := mocks.NewSessionRevoker(t)
			tc.mockSetup(mockRevoker)

			handler := New(logger, mockRevoker)

			req, err := http.NewRequest(http.MethodPost, "/auth/logout", nil)
			require.NoError(t, err)

			if tc.authenticated {
				req = req.WithContext(mwauth.WithIdentity(req.Context(), identity))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}
