// Package app wires configuration, storage, services, and the HTTP server
// into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hi5jack/compass-backend/internal/adapter/llm"
	"github.com/hi5jack/compass-backend/internal/adapter/postgres"
	commitmentrepo "github.com/hi5jack/compass-backend/internal/adapter/postgres/commitment"
	entryrepo "github.com/hi5jack/compass-backend/internal/adapter/postgres/entry"
	projectrepo "github.com/hi5jack/compass-backend/internal/adapter/postgres/project"
	reflectionrepo "github.com/hi5jack/compass-backend/internal/adapter/postgres/reflection"
	"github.com/hi5jack/compass-backend/internal/auth"
	"github.com/hi5jack/compass-backend/internal/config"
	"github.com/hi5jack/compass-backend/internal/service/capture"
	"github.com/hi5jack/compass-backend/internal/service/commitment"
	"github.com/hi5jack/compass-backend/internal/service/dashboard"
	"github.com/hi5jack/compass-backend/internal/service/insight"
	"github.com/hi5jack/compass-backend/internal/service/prep"
	"github.com/hi5jack/compass-backend/internal/service/project"
	"github.com/hi5jack/compass-backend/internal/service/reflection"
	"github.com/hi5jack/compass-backend/internal/transport/middleware"
	"github.com/hi5jack/compass-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and the router, and serves HTTP until the
// context is canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	start := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	projects := projectrepo.New(pool)
	entries := entryrepo.New(pool)
	commitments := commitmentrepo.New(pool)
	reflections := reflectionrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	aiClient := llm.New(cfg.LLM, logger)

	captureSvc := capture.NewService(logger, entries, commitments, reflections, projects)
	insightSvc := insight.NewService(logger, entries, projects, commitments, aiClient, txManager)
	dashboardSvc := dashboard.NewService(logger, commitments, projects, entries, reflections, cfg.Dashboard)
	prepSvc := prep.NewService(logger, projects, entries, commitments, aiClient)
	projectSvc := project.NewService(logger, projects)
	commitmentSvc := commitment.NewService(logger, commitments)
	reflectionSvc := reflection.NewService(logger, reflections, entries, commitments, aiClient)

	jwtManager := auth.NewJWTManager(cfg.Auth)

	handlers := rest.Handlers{
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Capture:     rest.NewCaptureHandler(captureSvc, logger),
		Entries:     rest.NewEntryHandler(insightSvc, logger),
		Commitments: rest.NewCommitmentHandler(commitmentSvc, logger),
		Projects:    rest.NewProjectHandler(projectSvc, logger),
		Dashboard:   rest.NewDashboardHandler(dashboardSvc, logger),
		Prep:        rest.NewPrepHandler(prepSvc, logger),
		Reflections: rest.NewReflectionHandler(reflectionSvc, logger),
	}

	base := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
	)
	authn := middleware.Auth(jwtManager)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      rest.NewRouter(handlers, base, authn),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete", slog.Duration("uptime", time.Since(start)))
	return nil
}
