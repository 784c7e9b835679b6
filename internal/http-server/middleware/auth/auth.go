// Package auth resolves a bearer token to a user identity and rejects
// tokens whose embedded session version no longer matches the stored one.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"eventra/internal/lib/api/response"
	"eventra/internal/lib/jwt"
	"eventra/internal/lib/logger/sl"
	"eventra/internal/models"

	"github.com/go-chi/render"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller as seen by the handlers.
type Identity struct {
	UserID int
	Email  string
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	GetUser(id int) (*models.User, error)
}

// New returns a middleware that requires a valid, non-revoked access token.
func New(log *slog.Logger, secret string, users UserProvider) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				unauthorized(w, r, "missing bearer token")

				return
			}

			claims, err := jwt.ParseToken(token, secret)
			if err != nil {
				log.Debug("failed to parse token", sl.Err(err))
				unauthorized(w, r, "invalid token")

				return
			}

			user, err := users.GetUser(claims.UserID)
			if err != nil {
				log.Debug("failed to resolve token subject", sl.Err(err))
				unauthorized(w, r, "invalid token")

				return
			}

			// A bumped version means the user logged out after this
			// token was issued.
			if user.TokenVersion != claims.TokenVersion {
				unauthorized(w, r, "token has been invalidated")

				return
			}

			ctx := context.WithValue(r.Context(), identityKey, Identity{
				UserID: user.ID,
				Email:  user.Email,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// FromContext returns the identity stored by the middleware.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)

	return id, ok
}

// WithIdentity injects an identity into the context. Used by tests that call
// handlers without the middleware.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(msg))
}
