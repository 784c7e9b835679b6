// Package reconcileStatuses exposes the status sweep to an external
// scheduler. The endpoint is not part of the public surface; callers must
// present the shared internal token.
package reconcileStatuses

import (
	"log/slog"
	"net/http"
	"time"

	"eventra/internal/lib/api/response"
	"eventra/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

const tokenHeader = "X-Internal-Token"

type ReconcileResponse struct {
	response.Response
	Updated int64 `json:"updated"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatusReconciler
type StatusReconciler interface {
	ReconcileStatuses(now time.Time) (int64, error)
}

func New(log *slog.Logger, internalToken string, events StatusReconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.reconcileStatuses.New"

		log = log.With(
			slog.String("op", op),
		)

		if internalToken == "" || r.Header.Get(tokenHeader) != internalToken {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))

			return
		}

		updated, err := events.ReconcileStatuses(time.Now().UTC())
		if err != nil {
			log.Error("failed to reconcile event statuses", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to reconcile event statuses"))

			return
		}

		log.Info("event statuses reconciled", slog.Int64("updated", updated))

		render.JSON(w, r, ReconcileResponse{
			Response: response.OK(),
			Updated:  updated,
		})
	}
}
