package models

import "time"

type EventStatus string

const (
	StatusScheduled EventStatus = "scheduled"
	StatusOngoing   EventStatus = "ongoing"
	StatusCompleted EventStatus = "completed"
	StatusCanceled  EventStatus = "canceled"
)

// Closed reports whether the event no longer accepts registrations or
// check-ins. Canceled events are treated the same as completed ones.
func (s EventStatus) Closed() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// Valid reports whether s is one of the known statuses.
func (s EventStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusOngoing, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

type Event struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	StartTime    time.Time   `json:"start_time"`
	EndTime      time.Time   `json:"end_time"`
	Location     string      `json:"location"`
	MaxAttendees int         `json:"max_attendees"`
	Status       EventStatus `json:"status"`
}
