// Package storage defines the error set shared by the postgres
// implementation and the HTTP handlers that map these onto statuses.
package storage

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventExists   = errors.New("event with the same details already exists")
	ErrEventClosed   = errors.New("event is closed")
	ErrEventFull     = errors.New("event has reached max attendees")

	ErrAttendeeExists   = errors.New("attendee already registered")
	ErrAttendeeNotFound = errors.New("attendee not found")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username or email already taken")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
