package updateEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventra/internal/lib/api/response"
	"eventra/internal/lib/logger/sl"
	"eventra/internal/lib/timeparse"
	"eventra/internal/models"
	"eventra/internal/storage"
	"eventra/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type UpdateRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Location     *string `json:"location,omitempty"`
	MaxAttendees *int    `json:"max_attendees,omitempty" validate:"omitempty,gt=0"`
	Date         *string `json:"date,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
}

type UpdateResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(id int, upd postgres.EventUpdate) (*models.Event, error)
}

func New(log *slog.Logger, events EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id"))

			return
		}

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		upd := postgres.EventUpdate{
			Name:         req.Name,
			Description:  req.Description,
			Location:     req.Location,
			MaxAttendees: req.MaxAttendees,
		}

		// Schedule fields come as a date plus two clock times and only make
		// sense together. A partial triple is rejected, not ignored.
		scheduleFields := 0
		for _, f := range []*string{req.Date, req.StartTime, req.EndTime} {
			if f != nil {
				scheduleFields++
			}
		}

		switch scheduleFields {
		case 0:
		case 3:
			start, end, err := timeparse.Combine(*req.Date, *req.StartTime, *req.EndTime)
			if err != nil {
				log.Error("invalid event schedule", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid date or time"))

				return
			}
			upd.StartTime = &start
			upd.EndTime = &end
		default:
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("date, start_time and end_time must be supplied together"))

			return
		}

		event, err := events.UpdateEvent(id, upd)
		if errors.Is(err, storage.ErrEventNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))

			return
		}
		if errors.Is(err, storage.ErrEventExists) {
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("event with the same details already exists"))

			return
		}
		if err != nil {
			log.Error("failed to update event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update event"))

			return
		}

		log.Info("event updated", slog.Int("id", id))

		render.JSON(w, r, UpdateResponse{
			Response: response.OK(),
			Event:    event,
		})
	}
}
