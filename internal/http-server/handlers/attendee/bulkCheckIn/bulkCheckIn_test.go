package bulkCheckIn

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventra/internal/http-server/handlers/attendee/bulkCheckIn/mocks"
	"eventra/internal/lib/logger/handlers/slogdiscard"
	"eventra/internal/storage"
	"eventra/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkCheckInHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	emails := []string{"alice@example.com", "bob@example.com", "ghost@example.com"}

	mixed := []postgres.BulkCheckInResult{
		{Email: "alice@example.com", Status: postgres.OutcomeCheckedIn},
		{Email: "bob@example.com", Status: postgres.OutcomeAlreadyCheckedIn},
		{Email: "ghost@example.com", Status: postgres.OutcomeNotRegistered},
	}

	testCases := []struct {
		name           string
		url            string
		requestBody    string
		mockSetup      func(m *mocks.BulkChecker)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Mixed outcomes",
			url:         "/attendees/10/checkin_bulk",
			requestBody: `{"emails": ["alice@example.com", "bob@example.com", "ghost@example.com"]}`,
			mockSetup: func(m *mocks.BulkChecker) {
				m.On("BulkCheckIn", 10, emails).Return(mixed, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"checked_in"`)
				assert.Contains(t, body, `"already_checked_in"`)
				assert.Contains(t, body, `"not_registered"`)
			},
		},
		{
			name:           "Empty email list",
			url:            "/attendees/10/checkin_bulk",
			requestBody:    `{"emails": []}`,
			mockSetup:      func(m *mocks.BulkChecker) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
			},
		},
		{
			name:           "Malformed email",
			url:            "/attendees/10/checkin_bulk",
			requestBody:    `{"emails": ["not-an-email"]}`,
			mockSetup:      func(m *mocks.BulkChecker) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
			},
		},
		{
			name:        "Event not found",
			url:         "/attendees/99/checkin_bulk",
			requestBody: `{"emails": ["alice@example.com"]}`,
			mockSetup: func(m *mocks.BulkChecker) {
				m.On("BulkCheckIn", 99, []string{"alice@example.com"}).
					Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "event not found")
			},
		},
		{
			name:        "Event closed",
			url:         "/attendees/10/checkin_bulk",
			requestBody: `{"emails": ["alice@example.com"]}`,
			mockSetup: func(m *mocks.BulkChecker) {
				m.On("BulkCheckIn", 10, []string{"alice@example.com"}).
					Return(nil, storage.ErrEventClosed)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "event is closed for check-in")
			},
		},
		{
			name:           "Invalid JSON",
			url:            "/attendees/10/checkin_bulk",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.BulkChecker) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to decode request")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockChecker := mocks.NewBulkChecker(t)
			tc.mockSetup(mockChecker)

			router := chi.NewRouter()
			router.Post("/attendees/{event_id}/checkin_bulk", New(logger, mockChecker))

			req, err := http.NewRequest(http.MethodPost, tc.url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
