package reconcileStatuses

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventra/internal/http-server/handlers/event/reconcileStatuses/mocks"
	"eventra/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileStatusesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	const token = "internal-secret"

	testCases := []struct {
		name           string
		configToken    string
		headerToken    string
		mockSetup      func(m *mocks.StatusReconciler)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			configToken: token,
			headerToken: token,
			mockSetup: func(m *mocks.StatusReconciler) {
				m.On("ReconcileStatuses", mock.AnythingOfType("time.Time")).Return(int64(3), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","updated":3}`,
		},
		{
			name:           "Missing token",
			configToken:    token,
			headerToken:    "",
			mockSetup:      func(m *mocks.StatusReconciler) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:           "Wrong token",
			configToken:    token,
			headerToken:    "guess",
			mockSetup:      func(m *mocks.StatusReconciler) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:           "Endpoint disabled without configured token",
			configToken:    "",
			headerToken:    "",
			mockSetup:      func(m *mocks.StatusReconciler) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:        "Store error",
			configToken: token,
			headerToken: token,
			mockSetup: func(m *mocks.StatusReconciler) {
				m.On("ReconcileStatuses", mock.AnythingOfType("time.Time")).Return(int64(0), errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to reconcile event statuses"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockReconciler := mocks.NewStatusReconciler(t)
			tc.mockSetup(mockReconciler)

			handler := New(logger, tc.configToken, mockReconciler)

			req, err := http.NewRequest(http.MethodPost, "/internal/reconcile-statuses", nil)
			require.NoError(t, err)

			if tc.headerToken != "" {
				req.Header.Set("X-Internal-Token", tc.headerToken)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
