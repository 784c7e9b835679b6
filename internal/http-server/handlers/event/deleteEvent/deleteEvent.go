package deleteEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventra/internal/lib/api/response"
	"eventra/internal/lib/logger/sl"
	"eventra/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(id int) error
}

func New(log *slog.Logger, events EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id"))

			return
		}

		err = events.DeleteEvent(id)
		if errors.Is(err, storage.ErrEventNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))

			return
		}
		if err != nil {
			log.Error("failed to delete event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))

			return
		}

		log.Info("event deleted", slog.Int("id", id))

		render.JSON(w, r, response.OK())
	}
}
