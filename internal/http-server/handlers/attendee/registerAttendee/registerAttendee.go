package registerAttendee

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventra/internal/http-server/middleware/auth"
	"eventra/internal/lib/api/response"
	"eventra/internal/lib/logger/sl"
	"eventra/internal/models"
	"eventra/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type RegisterResponse struct {
	response.Response
	Attendee *models.Attendee `json:"attendee"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeRegistrar
type AttendeeRegistrar interface {
	RegisterAttendee(eventID, userID int) (*models.Attendee, error)
}

func New(log *slog.Logger, attendees AttendeeRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendee.registerAttendee.New"

		log = log.With(
			slog.String("op", op),
		)

		identity, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))

			return
		}

		eventID, err := strconv.Atoi(chi.URLParam(r, "event_id"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id"))

			return
		}

		attendee, err := attendees.RegisterAttendee(eventID, identity.UserID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrEventClosed):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("event is closed for registration"))
			case errors.Is(err, storage.ErrAttendeeExists):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("already registered for this event"))
			case errors.Is(err, storage.ErrEventFull):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event has reached max attendees"))
			default:
				log.Error("failed to register attendee", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to register attendee"))
			}

			return
		}

		log.Info("attendee registered",
			slog.Int("event_id", eventID),
			slog.Int("user_id", identity.UserID),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, RegisterResponse{
			Response: response.OK(),
			Attendee: attendee,
		})
	}
}
