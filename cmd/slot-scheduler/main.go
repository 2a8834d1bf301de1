package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"slotScheduler/internal/config"
	"slotScheduler/internal/http-server/handlers/attendance/getAttendanceTable"
	"slotScheduler/internal/http-server/handlers/attendance/submitResponse"
	"slotScheduler/internal/http-server/handlers/booking/cancelBooking"
	"slotScheduler/internal/http-server/handlers/booking/submitBooking"
	"slotScheduler/internal/http-server/handlers/menu/createMenu"
	"slotScheduler/internal/http-server/handlers/menu/updateMenu"
	"slotScheduler/internal/http-server/handlers/slot/createSlots"
	"slotScheduler/internal/http-server/handlers/slot/deleteSlot"
	"slotScheduler/internal/http-server/handlers/slot/listSlots"
	"slotScheduler/internal/http-server/middleware/mwlogger"
	"slotScheduler/internal/lib/logger/handlers/slogpretty"
	"slotScheduler/internal/lib/logger/sl"
	"slotScheduler/internal/storage/postgres"

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

	log.Info("Starting slot scheduler", slog.String("env", cfg.Env))
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

	router.Route("/menus", func(r chi.Router) {
		r.Post("/", createMenu.New(log, storage))
		r.Route("/{id}", func(r chi.Router) {
			r.Patch("/", updateMenu.New(log, storage))
			r.Post("/slots", createSlots.New(log, storage))
			r.Get("/slots", listSlots.New(log, storage))
			r.Post("/responses", submitResponse.New(log, storage))
			r.Get("/attendance", getAttendanceTable.New(log, storage))
		})
	})
	router.Delete("/slots/{id}", deleteSlot.New(log, storage))
	router.Post("/slots/{id}/bookings", submitBooking.New(log, storage))
	router.Post("/bookings/{id}/cancel", cancelBooking.New(log, storage))

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
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	if err = srv.Close(); err != nil {
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
