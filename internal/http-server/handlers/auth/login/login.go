package login

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventra/internal/lib/api/response"
	"eventra/internal/lib/jwt"
	"eventra/internal/lib/logger/sl"
	"eventra/internal/lib/password"
	"eventra/internal/models"
	"eventra/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	response.Response
	ID          int    `json:"id"`
	TokenType   string `json:"token_type"`
	AccessToken string `json:"access_token"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
}

// New returns the login handler. The identifier is looked up as an email
// when it contains '@', as a username otherwise.
func New(log *slog.Logger, secret string, tokenTTL time.Duration, users UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log = log.With(
			slog.String("op", op),
		)

		var req LoginRequest

		err := render.DecodeJSON(r.Body, &req)
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

		var user *models.User
		if strings.Contains(req.Identifier, "@") {
			user, err = users.GetUserByEmail(req.Identifier)
		} else {
			user, err = users.GetUserByUsername(req.Identifier)
		}

		if errors.Is(err, storage.ErrUserNotFound) {
			log.Info("login attempt for unknown identifier")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid credentials"))

			return
		}
		if err != nil {
			log.Error("failed to look up user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))

			return
		}

		if !password.Verify(req.Password, user.PasswordHash) {
			log.Info("login attempt with wrong password", slog.Int("user_id", user.ID))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid credentials"))

			return
		}

		token, err := jwt.NewToken(user, secret, tokenTTL)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))

			return
		}

		log.Info("user logged in", slog.Int("user_id", user.ID))

		render.JSON(w, r, LoginResponse{
			Response:    response.OK(),
			ID:          user.ID,
			TokenType:   "bearer",
			AccessToken: token,
		})
	}
}
