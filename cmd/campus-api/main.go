// main is the entry point of the Campus Directory API.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Create the in-memory record store
//  4. Register all HTTP routes
//  5. Start the HTTP server in a separate goroutine
//  6. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/campus-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/campus-api
//
// Storage is volatile by design: every record lives in process memory
// and is gone on restart. There are no delete endpoints — records are
// destroyed only by process termination.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kashsosa-888/cloud-computing-project/internal/config"
	"github.com/kashsosa-888/cloud-computing-project/internal/http/handlers/address"
	"github.com/kashsosa-888/cloud-computing-project/internal/http/handlers/course"
	"github.com/kashsosa-888/cloud-computing-project/internal/http/handlers/health"
	"github.com/kashsosa-888/cloud-computing-project/internal/http/handlers/organization"
	"github.com/kashsosa-888/cloud-computing-project/internal/http/handlers/person"
	"github.com/kashsosa-888/cloud-computing-project/internal/storage/memory"
	"github.com/kashsosa-888/cloud-computing-project/internal/utils/response"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad reads the YAML config and panics if anything is wrong.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// slog is Go's structured logger (stdlib since Go 1.21): key=value
	// pairs rather than plain strings, easy to filter in log aggregators.
	log := setupLogger(cfg.Env)

	log.Info("starting campus-api",
		slog.String("env", cfg.Env),
		slog.String("version", "0.2.0"),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// memory.New builds the empty in-memory store. The rest of the code
	// only sees the storage.Storage interface, so a durable backend would
	// be a one-line swap here.
	store := memory.New()

	log.Info("in-memory storage initialised")

	// ── 4. Register HTTP Routes ───────────────────────────────────────────
	// The handler functions (address.New, course.GetList, …) are
	// FACTORIES: they receive the store once at startup and return the
	// actual per-request handler (dependency injection via closure).
	//
	// Updates are PATCH, not PUT: payloads are partial and merge onto the
	// stored record. There are intentionally no DELETE routes.
	router := http.NewServeMux()

	router.HandleFunc("POST /api/addresses", address.New(store))
	router.HandleFunc("GET /api/addresses", address.GetList(store))
	router.HandleFunc("GET /api/addresses/{id}", address.GetByID(store))
	router.HandleFunc("PATCH /api/addresses/{id}", address.Update(store))

	router.HandleFunc("POST /api/persons", person.New(store))
	router.HandleFunc("GET /api/persons", person.GetList(store))
	router.HandleFunc("GET /api/persons/{id}", person.GetByID(store))
	router.HandleFunc("PATCH /api/persons/{id}", person.Update(store))

	router.HandleFunc("POST /api/organizations", organization.New(store))
	router.HandleFunc("GET /api/organizations", organization.GetList(store))
	router.HandleFunc("GET /api/organizations/{id}", organization.GetByID(store))
	router.HandleFunc("PATCH /api/organizations/{id}", organization.Update(store))

	router.HandleFunc("POST /api/courses", course.New(store))
	router.HandleFunc("GET /api/courses", course.GetList(store))
	router.HandleFunc("GET /api/courses/{id}", course.GetByID(store))
	router.HandleFunc("PATCH /api/courses/{id}", course.Update(store))

	router.HandleFunc("GET /health", health.Get())
	router.HandleFunc("GET /health/{path_echo}", health.Get())

	// "GET /{$}" matches the bare root only, not every unregistered path.
	router.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Welcome to the Campus Directory API",
			"endpoints": map[string]string{
				"health":        "/health",
				"addresses":     "/api/addresses",
				"persons":       "/api/persons",
				"organizations": "/api/organizations",
				"courses":       "/api/courses",
			},
		})
	})

	// ── 5. Create the HTTP Server ─────────────────────────────────────────
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr, // e.g. "localhost:8082"
		Handler: router,

		// Production hardening — timeouts against slow-client attacks.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 6. Start Server in a Goroutine ────────────────────────────────────
	// ListenAndServe blocks forever, so it runs in its own goroutine and
	// the main goroutine stays free to wait for the shutdown signal.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ErrServerClosed is the expected return after Shutdown().
		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 7. Wait for Shutdown Signal ───────────────────────────────────────
	// Buffered channel of size 1 so the signal isn't missed if main is
	// briefly busy.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	// Give in-flight requests 5 seconds to finish. All stored records are
	// lost at this point — that is the documented lifecycle, not a bug.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
