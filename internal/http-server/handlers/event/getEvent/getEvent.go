package getEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventra/internal/lib/api/response"
	"eventra/internal/lib/logger/sl"
	"eventra/internal/models"
	"eventra/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventProvider
type EventProvider interface {
	GetEvent(id int) (*models.Event, error)
}

func New(log *slog.Logger, events EventProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id"))

			return
		}

		event, err := events.GetEvent(id)
		if errors.Is(err, storage.ErrEventNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))

			return
		}
		if err != nil {
			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event"))

			return
		}

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    event,
		})
	}
}
