package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventra/internal/models"
	"eventra/internal/storage"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// EventFilter narrows ListEvents results. Zero values mean "no filter".
type EventFilter struct {
	Status   models.EventStatus
	Location string
	At       *time.Time
}

// EventUpdate carries a partial event update. Nil fields are left untouched.
// StartTime and EndTime are always set together by the caller.
type EventUpdate struct {
	Name         *string
	Description  *string
	Location     *string
	MaxAttendees *int
	StartTime    *time.Time
	EndTime      *time.Time
}

func (s *Storage) CreateEvent(event models.Event) (int, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM events
			WHERE name = $1 AND location = $2 AND start_time = $3 AND end_time = $4
		)`

	err = tx.QueryRow(checkQuery, event.Name, event.Location, event.StartTime, event.EndTime).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check for duplicate event: %w", err)
	}

	if exists {
		return 0, storage.ErrEventExists
	}

	insertQuery := `
		INSERT INTO events (name, description, start_time, end_time, location, max_attendees, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int
	err = tx.QueryRow(insertQuery,
		event.Name,
		event.Description,
		event.StartTime,
		event.EndTime,
		event.Location,
		event.MaxAttendees,
		models.StatusScheduled,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, storage.ErrEventExists
		}
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

func (s *Storage) GetEvent(id int) (*models.Event, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), start_time, end_time, location, max_attendees, status
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.StartTime,
		&event.EndTime,
		&event.Location,
		&event.MaxAttendees,
		&event.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

// ListEvents reconciles stale statuses first so the result never shows a
// past event as scheduled, then applies the filters.
func (s *Storage) ListEvents(filter EventFilter) ([]models.Event, error) {
	if _, err := s.ReconcileStatuses(time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to reconcile statuses before listing: %w", err)
	}

	var (
		conds []string
		args  []any
	)

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filter.At != nil {
		args = append(args, *filter.At)
		conds = append(conds, fmt.Sprintf("start_time <= $%d AND end_time >= $%d", len(args), len(args)))
	}

	query := `
		SELECT id, name, COALESCE(description, ''), start_time, end_time, location, max_attendees, status
		FROM events`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY start_time ASC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Name,
			&event.Description,
			&event.StartTime,
			&event.EndTime,
			&event.Location,
			&event.MaxAttendees,
			&event.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) UpdateEvent(id int, upd EventUpdate) (*models.Event, error) {
	var (
		sets []string
		args []any
	)

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		set("name", *upd.Name)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.Location != nil {
		set("location", *upd.Location)
	}
	if upd.MaxAttendees != nil {
		set("max_attendees", *upd.MaxAttendees)
	}
	if upd.StartTime != nil {
		set("start_time", *upd.StartTime)
	}
	if upd.EndTime != nil {
		set("end_time", *upd.EndTime)
	}

	if len(sets) == 0 {
		return s.GetEvent(id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING id, name, COALESCE(description, ''), start_time, end_time, location, max_attendees, status`,
		strings.Join(sets, ", "), len(args))

	var event models.Event
	err := s.DB.QueryRow(query, args...).Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.StartTime,
		&event.EndTime,
		&event.Location,
		&event.MaxAttendees,
		&event.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, storage.ErrEventExists
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return &event, nil
}

// DeleteEvent removes the event; attendee records go with it via
// ON DELETE CASCADE.
func (s *Storage) DeleteEvent(id int) error {
	result, err := s.DB.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// ReconcileStatuses marks every event whose end_time has passed as completed.
// It is a single conditional bulk update, so it is idempotent and safe to run
// concurrently with live traffic. Canceled events stay canceled, and an event
// ending exactly at now is not yet completed (strict comparison).
func (s *Storage) ReconcileStatuses(now time.Time) (int64, error) {
	query := `
		UPDATE events
		SET status = $1
		WHERE status NOT IN ($1, $2)
		AND end_time < $3`

	result, err := s.DB.Exec(query, models.StatusCompleted, models.StatusCanceled, now)
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile event statuses: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected, nil
}
