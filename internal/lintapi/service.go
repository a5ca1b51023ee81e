package lintapi

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Bahjat/a11y-lint-tool/frontend/internal/model"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/errs"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/metrics"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/requestid"
)

// Service orchestrates a Provider, logs results and records metrics.
type Service struct {
	provider Provider
	logger   *slog.Logger
}

// NewService creates a Service backed by the given provider.
func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Lint delegates to the provider and logs the outcome.
func (s *Service) Lint(ctx context.Context, req model.LintRequest) (*model.Report, error) {
	kind := req.Kind().String()
	logger := s.logger.With("kind", kind, "request_id", requestid.FromContext(ctx))
	if req.Kind() == model.KindURL {
		logger = logger.With("url", req.URL)
	} else {
		logger = logger.With("html_length", len(req.HTML))
	}

	start := time.Now()
	report, err := s.provider.Lint(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			err = &errs.AppError{
				Kind:    errs.Timeout,
				Message: "The lint service took too long to respond.",
				Cause:   err,
			}
		case errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled):
			err = &errs.AppError{
				Kind:    errs.Canceled,
				Message: "The lint request was canceled.",
				Cause:   err,
			}
		}

		result := errs.Unknown.String()
		attrs := []any{"error", err, "duration", elapsed.String()}
		var appErr *errs.AppError
		if errors.As(err, &appErr) {
			result = appErr.Kind.String()
			if appErr.UpstreamStatus != 0 {
				attrs = append(attrs, "upstream_status", appErr.UpstreamStatus)
			}
		}
		metrics.ObserveLint(kind, result, elapsed)
		if result == errs.Canceled.String() {
			logger.Debug("lint canceled", attrs...)
			return nil, err
		}
		logger.Error("lint failed", attrs...)
		return nil, err
	}

	metrics.ObserveLint(kind, "ok", elapsed)
	logger.Info("lint complete",
		"sections", len(report.Sections),
		"issues", report.IssueCount(),
		"errors", report.Summary.Errors,
		"warnings", report.Summary.Warnings,
		"duration", elapsed.String(),
	)
	return report, nil
}
