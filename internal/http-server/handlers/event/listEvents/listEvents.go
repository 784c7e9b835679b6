package listEvents

import (
	"log/slog"
	"net/http"
	"time"

	"eventra/internal/lib/api/response"
	"eventra/internal/lib/logger/sl"
	"eventra/internal/models"
	"eventra/internal/storage/postgres"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	ListEvents(filter postgres.EventFilter) ([]models.Event, error)
}

func New(log *slog.Logger, events EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log = log.With(
			slog.String("op", op),
		)

		var filter postgres.EventFilter

		if status := r.URL.Query().Get("status"); status != "" {
			if !models.EventStatus(status).Valid() {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid status filter"))

				return
			}
			filter.Status = models.EventStatus(status)
		}

		filter.Location = r.URL.Query().Get("location")

		if date := r.URL.Query().Get("date"); date != "" {
			at, err := time.Parse(time.RFC3339, date)
			if err != nil {
				log.Debug("invalid date filter", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid date filter, expected RFC3339"))

				return
			}
			filter.At = &at
		}

		list, err := events.ListEvents(filter)
		if err != nil {
			log.Error("failed to list events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list events"))

			return
		}

		if list == nil {
			list = []models.Event{}
		}

		log.Info("events listed", slog.Int("count", len(list)))

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   list,
		})
	}
}
