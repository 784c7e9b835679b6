package createEvent

import (
	"errors"
	"log/slog"
	"net/http"

	"eventra/internal/lib/api/response"
	"eventra/internal/lib/logger/sl"
	"eventra/internal/lib/timeparse"
	"eventra/internal/models"
	"eventra/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Date         string `json:"date" validate:"required"`
	StartTime    string `json:"start_time" validate:"required"`
	EndTime      string `json:"end_time" validate:"required"`
	Location     string `json:"location" validate:"required"`
	MaxAttendees int    `json:"max_attendees" validate:"required,gt=0"`
}

type EventResponse struct {
	response.Response
	EventID int `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(event models.Event) (int, error)
}

func New(log *slog.Logger, events EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		start, end, err := timeparse.Combine(req.Date, req.StartTime, req.EndTime)
		if err != nil {
			log.Error("invalid event schedule", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date or time"))

			return
		}

		eventID, err := events.CreateEvent(models.Event{
			Name:         req.Name,
			Description:  req.Description,
			StartTime:    start,
			EndTime:      end,
			Location:     req.Location,
			MaxAttendees: req.MaxAttendees,
		})
		if errors.Is(err, storage.ErrEventExists) {
			log.Info("duplicate event rejected")
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("event with the same details already exists"))

			return
		}
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))

			return
		}

		log.Info("event created", slog.Int("id", eventID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			EventID:  eventID,
		})
	}
}
