package listAttendees

import (
	"log/slog"
	"net/http"
	"strconv"

	"eventra/internal/lib/api/response"
	"eventra/internal/lib/logger/sl"
	"eventra/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type AttendeesResponse struct {
	response.Response
	Attendees []models.Attendee `json:"attendees"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendeeLister
type AttendeeLister interface {
	ListAttendees(eventID int, checkedIn *bool) ([]models.Attendee, error)
}

func New(log *slog.Logger, attendees AttendeeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendee.listAttendees.New"

		log = log.With(
			slog.String("op", op),
		)

		eventID, err := strconv.Atoi(chi.URLParam(r, "event_id"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id"))

			return
		}

		var checkedIn *bool
		if raw := r.URL.Query().Get("checked_in"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid checked_in filter"))

				return
			}
			checkedIn = &parsed
		}

		list, err := attendees.ListAttendees(eventID, checkedIn)
		if err != nil {
			log.Error("failed to list attendees", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list attendees"))

			return
		}

		if list == nil {
			list = []models.Attendee{}
		}

		log.Info("attendees listed",
			slog.Int("event_id", eventID),
			slog.Int("count", len(list)),
		)

		render.JSON(w, r, AttendeesResponse{
			Response:  response.OK(),
			Attendees: list,
		})
	}
}
