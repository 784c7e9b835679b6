package listEvents

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventra/internal/http-server/handlers/event/listEvents/mocks"
	"eventra/internal/lib/logger/handlers/slogdiscard"
	"eventra/internal/models"
	"eventra/internal/storage/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	at := time.Date(2030, 12, 25, 19, 0, 0, 0, time.UTC)

	sample := []models.Event{
		{
			ID:           1,
			Name:         "Tech Conference",
			StartTime:    time.Date(2030, 12, 25, 18, 0, 0, 0, time.UTC),
			EndTime:      time.Date(2030, 12, 25, 21, 0, 0, 0, time.UTC),
			Location:     "Berlin",
			MaxAttendees: 100,
			Status:       models.StatusScheduled,
		},
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.EventLister)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "No filters",
			url:  "/events",
			mockSetup: func(m *mocks.EventLister) {
				m.On("ListEvents", postgres.EventFilter{}).Return(sample, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, "Tech Conference")
			},
		},
		{
			name: "Status and location filters",
			url:  "/events?status=scheduled&location=ber",
			mockSetup: func(m *mocks.EventLister) {
				m.On("ListEvents", postgres.EventFilter{
					Status:   models.StatusScheduled,
					Location: "ber",
				}).Return(sample, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Date filter",
			url:  "/events?date=2030-12-25T19:00:00Z",
			mockSetup: func(m *mocks.EventLister) {
				m.On("ListEvents", postgres.EventFilter{At: &at}).Return(sample, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid status filter",
			url:            "/events?status=bogus",
			mockSetup:      func(m *mocks.EventLister) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid status filter")
			},
		},
		{
			name:           "Invalid date filter",
			url:            "/events?date=tomorrow",
			mockSetup:      func(m *mocks.EventLister) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid date filter")
			},
		},
		{
			name: "Empty result is a list",
			url:  "/events",
			mockSetup: func(m *mocks.EventLister) {
				m.On("ListEvents", postgres.EventFilter{}).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"events":[]`)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewEventLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
