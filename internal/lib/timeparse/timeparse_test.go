package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		date      string
		startTime string
		endTime   string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "Evening event",
			date:      "25/12/2030",
			startTime: "6:00 PM",
			endTime:   "9:30 PM",
			wantStart: time.Date(2030, 12, 25, 18, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2030, 12, 25, 21, 30, 0, 0, time.UTC),
		},
		{
			name:      "Morning event",
			date:      "01/01/2031",
			startTime: "9:15 AM",
			endTime:   "11:00 AM",
			wantStart: time.Date(2031, 1, 1, 9, 15, 0, 0, time.UTC),
			wantEnd:   time.Date(2031, 1, 1, 11, 0, 0, 0, time.UTC),
		},
		{
			name:      "Noon boundary",
			date:      "01/01/2031",
			startTime: "12:00 PM",
			endTime:   "1:00 PM",
			wantStart: time.Date(2031, 1, 1, 12, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2031, 1, 1, 13, 0, 0, 0, time.UTC),
		},
		{
			name:      "End before start",
			date:      "25/12/2030",
			startTime: "9:00 PM",
			endTime:   "6:00 PM",
			wantErr:   true,
		},
		{
			name:      "End equals start",
			date:      "25/12/2030",
			startTime: "6:00 PM",
			endTime:   "6:00 PM",
			wantErr:   true,
		},
		{
			name:      "Bad date layout",
			date:      "2030-12-25",
			startTime: "6:00 PM",
			endTime:   "9:00 PM",
			wantErr:   true,
		},
		{
			name:      "Bad time layout",
			date:      "25/12/2030",
			startTime: "18:00",
			endTime:   "9:00 PM",
			wantErr:   true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			start, end, err := Combine(tc.date, tc.startTime, tc.endTime)

			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.True(t, start.Equal(tc.wantStart), "start: got %v want %v", start, tc.wantStart)
			assert.True(t, end.Equal(tc.wantEnd), "end: got %v want %v", end, tc.wantEnd)
		})
	}
}

func TestCombineEndBeforeStartSentinel(t *testing.T) {
	t.Parallel()

	_, _, err := Combine("25/12/2030", "9:00 PM", "6:00 PM")
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}
