package checkIn

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

type CheckInResponse struct {
	response.Response
	Attendee *models.Attendee `json:"attendee"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeChecker
type AttendeeChecker interface {
	CheckIn(userID, eventID int) (*models.Attendee, error)
}

// New returns the self check-in handler. Checking in twice is a no-op
// success.
func New(log *slog.Logger, attendees AttendeeChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendee.checkIn.New"

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

		attendee, err := attendees.CheckIn(identity.UserID, eventID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrEventClosed):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("event is closed for check-in"))
			case errors.Is(err, storage.ErrAttendeeNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("no registration found for current user"))
			default:
				log.Error("failed to check in attendee", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to check in"))
			}

			return
		}

		log.Info("attendee checked in",
			slog.Int("event_id", eventID),
			slog.Int("user_id", identity.UserID),
		)

		render.JSON(w, r, CheckInResponse{
			Response: response.OK(),
			Attendee: attendee,
		})
	}
}
