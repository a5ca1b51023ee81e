package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"

	"github.com/Bahjat/a11y-lint-tool/frontend/internal/lintapi"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/config"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/logger"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/metrics"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/middleware"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/report"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/ui"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	layout, err := report.ParseLayout(cfg.ReportLayout)
	if err != nil {
		return err
	}
	renderer, err := report.NewRenderer()
	if err != nil {
		return err
	}

	client := lintapi.NewClient(cfg.LintAPIURL, cfg.LintTimeout)
	service := lintapi.NewService(client, log)
	sessions := ui.NewSessions(cfg.SessionCapacity, cfg.SessionTTL)

	transport, err := ui.NewTransport(service, renderer, sessions, layout, log)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	transport.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metrics.Handler())

	var handler http.Handler = mux
	handler = handlers.CompressHandler(handler)
	handler = middleware.Logging(log)(handler)
	handler = middleware.RequestID(handler)

	// WriteTimeout has to outlast a full lint API round trip.
	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.LintTimeout + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("lint ui listening", "addr", srv.Addr, "lint_api", cfg.LintAPIURL, "layout", layout.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
