// Package main is the entry point for the Pass It driving school server.
//
// The architecture follows Clean Architecture and DDD:
// - Domain: pure record-keeping logic with no external dependencies
// - Application: use case orchestration (Commands/Queries)
// - Infrastructure: sqlite/postgres repositories, redis summary cache
// - Interface: HTTP endpoints, export rendering
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/passit-driving/school-hub/config"
	"github.com/passit-driving/school-hub/internal/application/query"
	"github.com/passit-driving/school-hub/internal/domain/instructor"
	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/payment"
	"github.com/passit-driving/school-hub/internal/domain/student"
	"github.com/passit-driving/school-hub/internal/infrastructure/persistence/postgres"
	"github.com/passit-driving/school-hub/internal/infrastructure/persistence/redis"
	"github.com/passit-driving/school-hub/internal/infrastructure/persistence/sqlite"
	httpserver "github.com/passit-driving/school-hub/internal/interface/http"
	"github.com/passit-driving/school-hub/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "school-hub: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(os.Stdout, logger.ParseLevel(cfg.Observability.LogLevel))
	log.Info("starting",
		logger.String("app", cfg.App.Name),
		logger.String("version", cfg.App.Version),
		logger.String("env", string(cfg.App.Environment)),
		logger.String("storage", cfg.Storage.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var cache query.SummaryCache
	if cfg.CacheEnabled() {
		rc, err := redis.NewSummaryCache(ctx, cfg.Redis.URL, cfg.Redis.TTL)
		if err != nil {
			// The summary works without a cache; a dead Redis must not
			// keep the school from opening.
			log.Warn("summary cache unavailable, continuing without it", logger.Err(err))
		} else {
			defer rc.Close()
			cache = rc
		}
	}

	handlers := httpserver.NewHandlers(
		repos.students, repos.instructors, repos.lessons, repos.payments,
		cache, log,
	)

	srv := httpserver.NewServer(httpserver.Config{
		Host:         cfg.HTTP.Host,
		Port:         cfg.HTTP.Port,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}, handlers, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("stopped")
	return nil
}

// repositories bundles the four stores behind their domain interfaces so
// the rest of main does not care which driver backs them.
type repositories struct {
	students    student.Repository
	instructors instructor.Repository
	lessons     lesson.Repository
	payments    payment.Repository
}

func openStore(ctx context.Context, cfg *config.Config) (repositories, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		conn, err := postgres.NewConnectionFromURL(ctx, cfg.Storage.PostgresURL)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("postgres: %w", err)
		}
		if err := conn.Migrate(ctx); err != nil {
			conn.Close()
			return repositories{}, nil, fmt.Errorf("postgres migrate: %w", err)
		}
		return repositories{
			students:    postgres.NewStudentRepository(conn),
			instructors: postgres.NewInstructorRepository(conn),
			lessons:     postgres.NewLessonRepository(conn),
			payments:    postgres.NewPaymentRepository(conn),
		}, conn.Close, nil

	default:
		store, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("sqlite: %w", err)
		}
		return repositories{
			students:    sqlite.NewStudentRepository(store),
			instructors: sqlite.NewInstructorRepository(store),
			lessons:     sqlite.NewLessonRepository(store),
			payments:    sqlite.NewPaymentRepository(store),
		}, func() { _ = store.Close() }, nil
	}
}
