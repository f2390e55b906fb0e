// Package main is the entry point for the RigReport API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/rigreport/rigreport/internal/auth"
	"github.com/rigreport/rigreport/internal/config"
	"github.com/rigreport/rigreport/internal/handler"
	"github.com/rigreport/rigreport/internal/kv"
	"github.com/rigreport/rigreport/internal/middleware"
	"github.com/rigreport/rigreport/internal/query"
	"github.com/rigreport/rigreport/internal/service"
	"github.com/rigreport/rigreport/internal/store"
	"github.com/rigreport/rigreport/spec"
)

// maxBodySize caps request bodies at 1 MiB. Every payload in this API is a
// small JSON document; anything larger is a mistake or abuse.
const maxBodySize = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	// The key-value backing store is SQLite by default; an empty DATA_PATH
	// selects the in-memory store, which loses everything on restart.
	var backing kv.Store
	if cfg.DataPath == "" {
		backing = kv.NewMemory()
		slog.Info("using in-memory storage")
	} else {
		db, err := kv.NewSQLite(cfg.DataPath)
		if err != nil {
			slog.Error("failed to open storage", "path", cfg.DataPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		backing = db
		slog.Info("storage opened", "path", cfg.DataPath)
	}

	// Constructing the store runs the version-gated bootstrap: stale data is
	// purged and reseeded, current data is hydrated as-is.
	dataStore := store.New(backing, store.WithLatency(cfg.LatencyMin, cfg.LatencyMax))
	data := query.New(dataStore)
	session := auth.NewManager(backing)

	// --- Services ---------------------------------------------------------
	boats := service.NewBoatService(data)
	equipment := service.NewEquipmentService(data)
	maintenance := service.NewMaintenanceService(data)
	reservations := service.NewReservationService(data)
	slips := service.NewSlipService(data)
	admin := service.NewAdminService(data)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))

	srv := handler.NewServer(boats, equipment, maintenance, reservations, slips, admin, session, spec.OpenAPI)
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// The write timeout leaves headroom for the simulated store latency.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
