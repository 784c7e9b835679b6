package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"eventra/internal/models"
	"eventra/internal/storage"

	"github.com/lib/pq"
)

// Bulk check-in outcomes, reported per email.
const (
	OutcomeCheckedIn        = "checked_in"
	OutcomeAlreadyCheckedIn = "already_checked_in"
	OutcomeNotRegistered    = "not_registered"
)

type BulkCheckInResult struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

// RegisterAttendee inserts a registration for (userID, eventID) under a row
// lock on the event, so concurrent registrations for the same event cannot
// jointly exceed max_attendees.
func (s *Storage) RegisterAttendee(eventID, userID int) (*models.Attendee, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The FOR UPDATE lock serializes count-then-insert per event.
	var (
		status       models.EventStatus
		maxAttendees int
	)
	lockQuery := `
		SELECT status, max_attendees
		FROM events
		WHERE id = $1
		FOR UPDATE`

	err = tx.QueryRow(lockQuery, eventID).Scan(&status, &maxAttendees)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to lock event row: %w", err)
	}

	if status.Closed() {
		return nil, storage.ErrEventClosed
	}

	var exists bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM attendees
			WHERE user_id = $1 AND event_id = $2
		)`

	err = tx.QueryRow(checkQuery, userID, eventID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}

	if exists {
		return nil, storage.ErrAttendeeExists
	}

	var count int
	err = tx.QueryRow(`SELECT COUNT(*) FROM attendees WHERE event_id = $1`, eventID).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendees: %w", err)
	}

	if count >= maxAttendees {
		return nil, storage.ErrEventFull
	}

	attendee := models.Attendee{
		UserID:  userID,
		EventID: eventID,
	}

	insertQuery := `
		INSERT INTO attendees (user_id, event_id, check_in_status)
		VALUES ($1, $2, false)
		RETURNING id`

	err = tx.QueryRow(insertQuery, userID, eventID).Scan(&attendee.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, storage.ErrAttendeeExists
		}
		return nil, fmt.Errorf("failed to register attendee: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &attendee, nil
}

// CheckIn marks the registration as checked in. It is idempotent: checking
// in an already checked-in attendee succeeds without a second effect.
func (s *Storage) CheckIn(userID, eventID int) (*models.Attendee, error) {
	var status models.EventStatus
	err := s.DB.QueryRow(`SELECT status FROM events WHERE id = $1`, eventID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event status: %w", err)
	}

	if status.Closed() {
		return nil, storage.ErrEventClosed
	}

	query := `
		UPDATE attendees
		SET check_in_status = true
		WHERE user_id = $1 AND event_id = $2
		RETURNING id, user_id, event_id, check_in_status`

	var attendee models.Attendee
	err = s.DB.QueryRow(query, userID, eventID).Scan(
		&attendee.ID,
		&attendee.UserID,
		&attendee.EventID,
		&attendee.CheckInStatus,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAttendeeNotFound
		}
		return nil, fmt.Errorf("failed to check in attendee: %w", err)
	}

	return &attendee, nil
}

// BulkCheckIn checks in registrations resolved by user email. One bad email
// never aborts the rest; the whole call fails only when the event itself is
// missing or closed.
func (s *Storage) BulkCheckIn(eventID int, emails []string) ([]BulkCheckInResult, error) {
	var status models.EventStatus
	err := s.DB.QueryRow(`SELECT status FROM events WHERE id = $1`, eventID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event status: %w", err)
	}

	if status.Closed() {
		return nil, storage.ErrEventClosed
	}

	results := make([]BulkCheckInResult, 0, len(emails))

	for _, email := range emails {
		var (
			attendeeID int
			checkedIn  bool
		)
		findQuery := `
			SELECT a.id, a.check_in_status
			FROM attendees a
			JOIN users u ON u.id = a.user_id
			WHERE a.event_id = $1 AND u.email = $2`

		err = s.DB.QueryRow(findQuery, eventID, email).Scan(&attendeeID, &checkedIn)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				results = append(results, BulkCheckInResult{Email: email, Status: OutcomeNotRegistered})
				continue
			}
			return nil, fmt.Errorf("failed to resolve attendee by email: %w", err)
		}

		if checkedIn {
			results = append(results, BulkCheckInResult{Email: email, Status: OutcomeAlreadyCheckedIn})
			continue
		}

		_, err = s.DB.Exec(`UPDATE attendees SET check_in_status = true WHERE id = $1`, attendeeID)
		if err != nil {
			return nil, fmt.Errorf("failed to check in attendee: %w", err)
		}

		results = append(results, BulkCheckInResult{Email: email, Status: OutcomeCheckedIn})
	}

	return results, nil
}

// ListAttendees returns the registrations for an event, optionally filtered
// by check-in status. An unknown event yields an empty list, not an error.
func (s *Storage) ListAttendees(eventID int, checkedIn *bool) ([]models.Attendee, error) {
	query := `
		SELECT id, user_id, event_id, check_in_status
		FROM attendees
		WHERE event_id = $1`
	args := []any{eventID}

	if checkedIn != nil {
		args = append(args, *checkedIn)
		query += fmt.Sprintf(" AND check_in_status = $%d", len(args))
	}

	query += " ORDER BY id ASC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendees: %w", err)
	}
	defer rows.Close()

	attendees := make([]models.Attendee, 0)
	for rows.Next() {
		var attendee models.Attendee
		err = rows.Scan(
			&attendee.ID,
			&attendee.UserID,
			&attendee.EventID,
			&attendee.CheckInStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendee: %w", err)
		}
		attendees = append(attendees, attendee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendees: %w", err)
	}

	return attendees, nil
}
