// main is the entry point of the student-structs demonstration.
//
// STARTUP SEQUENCE:
//  1. Load configuration (YAML file or environment)
//  2. Initialise the logger (stderr; stdout is the demonstration itself)
//  3. Open the in-memory step journal, if enabled
//  4. Run the demonstration
//
// RUNNING:
//
//	go run ./cmd/student-structs
//	go run ./cmd/student-structs --config=config/local.yaml
//	SHOW_LAYOUT=true go run ./cmd/student-structs
package main

import (
	"log/slog"
	"os"

	"github.com/aanand-mishra/student-structs/internal/config"
	"github.com/aanand-mishra/student-structs/internal/demo"
	"github.com/aanand-mishra/student-structs/internal/heap"
	"github.com/aanand-mishra/student-structs/internal/storage"
	"github.com/aanand-mishra/student-structs/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	log := setupLogger(cfg.Env)

	log.Debug("starting student-structs",
		slog.String("env", cfg.Env),
		slog.Bool("journal", cfg.Journal),
		slog.Int("heap_limit", cfg.HeapLimit),
	)

	// ── 3. Journal ────────────────────────────────────────────────────────
	// Declared as the interface so a disabled journal is simply nil and the
	// runner records nothing.
	var journal storage.Journal
	if cfg.Journal {
		j, err := sqlite.New()
		if err != nil {
			log.Error("failed to open journal", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer j.Close()
		journal = j
	}

	// ── 4. Run ────────────────────────────────────────────────────────────
	runner := &demo.Runner{
		Out:        os.Stdout,
		Log:        log,
		Alloc:      heap.NewArena(cfg.HeapLimit),
		Journal:    journal,
		ShowLayout: cfg.ShowLayout,
	}

	if _, err := runner.Run(); err != nil {
		log.Error("demonstration failed", slog.String("error", err.Error()))
		if journal != nil {
			journal.Close()
		}
		os.Exit(1)
	}
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
