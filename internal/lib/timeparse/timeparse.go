// Package timeparse combines the wire format for event schedules — a date
// plus two clock times — into full timestamps.
package timeparse

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout = "02/01/2006"
	TimeLayout = "3:04 PM"
)

var ErrEndBeforeStart = errors.New("end_time must be after start_time")

// Combine parses "02/01/2006" + two "3:04 PM" clock times into UTC start and
// end timestamps on that date. The end must be strictly after the start.
func Combine(date, startTime, endTime string) (start, end time.Time, err error) {
	day, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	startClock, err := time.Parse(TimeLayout, startTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_time %q: %w", startTime, err)
	}

	endClock, err := time.Parse(TimeLayout, endTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_time %q: %w", endTime, err)
	}

	start = day.Add(time.Duration(startClock.Hour())*time.Hour + time.Duration(startClock.Minute())*time.Minute)
	end = day.Add(time.Duration(endClock.Hour())*time.Hour + time.Duration(endClock.Minute())*time.Minute)

	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrEndBeforeStart
	}

	return start, end, nil
}
