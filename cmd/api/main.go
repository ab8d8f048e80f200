// Package main is the entry point for the courseinfo API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/pkordes/courseinfo/backend/api"
	"github.com/pkordes/courseinfo/backend/internal/config"
	"github.com/pkordes/courseinfo/backend/internal/handler"
	"github.com/pkordes/courseinfo/backend/internal/handler/gen"
	"github.com/pkordes/courseinfo/backend/internal/middleware"
	"github.com/pkordes/courseinfo/backend/internal/repo"
	"github.com/pkordes/courseinfo/backend/internal/service"
	"github.com/pkordes/courseinfo/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A .env file is a local-development convenience; in other environments
	// the variables come from the process and the file does not exist.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to read .env", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		// The default text logger is still in place here.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if cfg.MigrateOnStart {
		// goose drives database/sql; borrow a *sql.DB view of the same pool.
		db := stdlib.OpenDBFromPool(pool)
		err := migrations.Up(context.Background(), db)
		db.Close()
		if err != nil {
			slog.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	// --- Repos and services -----------------------------------------------
	periodRepo := repo.NewPeriodRepo(pool)
	semesterRepo := repo.NewSemesterRepo(pool)
	courseRepo := repo.NewCourseRepo(pool)
	instructorRepo := repo.NewInstructorRepo(pool)
	studentRepo := repo.NewStudentRepo(pool)
	sectionRepo := repo.NewSectionRepo(pool)

	services := handler.Services{
		Periods:     service.NewPeriodService(periodRepo),
		Semesters:   service.NewSemesterService(semesterRepo, periodRepo),
		Courses:     service.NewCourseService(courseRepo),
		Instructors: service.NewInstructorService(instructorRepo, sectionRepo),
		Students:    service.NewStudentService(studentRepo, sectionRepo),
		Sections:    service.NewSectionService(sectionRepo, semesterRepo, courseRepo, instructorRepo, studentRepo),
		Rosters:     service.NewRosterService(sectionRepo),
	}

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → echo ID → RealIP → Logger → Recoverer → CORS → body limit.
	// Recoverer sits inside the logger so a recovered panic is logged as a 500.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.EchoRequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	// gen.NewStrictHandlerWithOptions adapts our StrictServerInterface
	// implementation to the lower-level ServerInterface chi expects.
	server := handler.NewServer(services, api.OpenAPI, logger)
	r.Mount("/", gen.HandlerWithOptions(
		gen.NewStrictHandlerWithOptions(server, nil, server.StrictOptions()),
		server.ChiOptions(),
	))

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
