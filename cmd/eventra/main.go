package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventra/internal/config"
	"eventra/internal/http-server/handlers/attendee/bulkCheckIn"
	"eventra/internal/http-server/handlers/attendee/checkIn"
	"eventra/internal/http-server/handlers/attendee/listAttendees"
	"eventra/internal/http-server/handlers/attendee/registerAttendee"
	"eventra/internal/http-server/handlers/auth/login"
	"eventra/internal/http-server/handlers/auth/logout"
	"eventra/internal/http-server/handlers/auth/register"
	"eventra/internal/http-server/handlers/event/createEvent"
	"eventra/internal/http-server/handlers/event/deleteEvent"
	"eventra/internal/http-server/handlers/event/getEvent"
	"eventra/internal/http-server/handlers/event/listEvents"
	"eventra/internal/http-server/handlers/event/reconcileStatuses"
	"eventra/internal/http-server/handlers/event/updateEvent"
	mwauth "eventra/internal/http-server/middleware/auth"
	"eventra/internal/http-server/middleware/mwlogger"
	"eventra/internal/lib/logger/handlers/slogpretty"
	"eventra/internal/lib/logger/sl"
	"eventra/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting eventra", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	requireAuth := mwauth.New(log, cfg.Auth.Secret, storage)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", register.New(log, storage))
		r.Post("/login", login.New(log, cfg.Auth.Secret, cfg.Auth.TokenTTL, storage))
		r.With(requireAuth).Post("/logout", logout.New(log, storage))
	})

	router.Route("/events", func(r chi.Router) {
		r.Get("/", listEvents.New(log, storage))
		r.Get("/{id}", getEvent.New(log, storage))

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", createEvent.New(log, storage))
			r.Patch("/{id}", updateEvent.New(log, storage))
			r.Delete("/{id}", deleteEvent.New(log, storage))
		})
	})

	router.Route("/attendees", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/{event_id}/register", registerAttendee.New(log, storage))
		r.Post("/{event_id}/checkin", checkIn.New(log, storage))
		r.Post("/{event_id}/checkin_bulk", bulkCheckIn.New(log, storage))
		r.Get("/{event_id}/list", listAttendees.New(log, storage))
	})

	router.Post("/internal/reconcile-statuses", reconcileStatuses.New(log, cfg.InternalToken, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		ticker := time.NewTicker(cfg.ReconcileInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				updated, err := storage.ReconcileStatuses(time.Now().UTC())
				if err != nil {
					// Next tick retries; no backoff needed.
					log.Error("failed to reconcile event statuses", sl.Err(err))

					continue
				}
				if updated > 0 {
					log.Info("event statuses reconciled", slog.Int64("updated", updated))
				}
			case <-stop:
				return
			}
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
