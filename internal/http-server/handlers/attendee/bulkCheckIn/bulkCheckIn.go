package bulkCheckIn

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventra/internal/lib/api/response"
	"eventra/internal/lib/logger/sl"
	"eventra/internal/storage"
	"eventra/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BulkRequest struct {
	Emails []string `json:"emails" validate:"required,min=1,dive,email"`
}

type BulkResponse struct {
	response.Response
	Results []postgres.BulkCheckInResult `json:"results"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BulkChecker
type BulkChecker interface {
	BulkCheckIn(eventID int, emails []string) ([]postgres.BulkCheckInResult, error)
}

// New returns the bulk check-in handler. One unresolvable email never fails
// the batch; the call fails wholesale only when the event itself is missing
// or closed.
func New(log *slog.Logger, attendees BulkChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.attendee.bulkCheckIn.New"

		log = log.With(
			slog.String("op", op),
		)

		eventID, err := strconv.Atoi(chi.URLParam(r, "event_id"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id"))

			return
		}

		var req BulkRequest

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

		results, err := attendees.BulkCheckIn(eventID, req.Emails)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrEventClosed):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("event is closed for check-in"))
			default:
				log.Error("failed to bulk check in", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to bulk check in"))
			}

			return
		}

		log.Info("bulk check-in processed",
			slog.Int("event_id", eventID),
			slog.Int("count", len(results)),
		)

		render.JSON(w, r, BulkResponse{
			Response: response.OK(),
			Results:  results,
		})
	}
}
