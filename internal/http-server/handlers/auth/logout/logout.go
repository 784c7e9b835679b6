package logout

import (
	"errors"
	"log/slog"
	"net/http"

	"eventra/internal/http-server/middleware/auth"
	"eventra/internal/lib/api/response"
	"eventra/internal/lib/logger/sl"
	"eventra/internal/storage"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionRevoker
type SessionRevoker interface {
	BumpTokenVersion(userID int) (int, error)
}

// New returns the logout handler. Bumping the token version revokes every
// token issued before this call in one counter increment.
func New(log *slog.Logger, sessions SessionRevoker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log = log.With(
			slog.String("op", op),
		)

		identity, ok := auth.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))

			return
		}

		_, err := sessions.BumpTokenVersion(identity.UserID)
		if errors.Is(err, storage.ErrUserNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))

			return
		}
		if err != nil {
			log.Error("failed to revoke sessions", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log out"))

			return
		}

		log.Info("user logged out", slog.Int("user_id", identity.UserID))

		render.JSON(w, r, response.OK())
	}
}
