package lintapi

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/Bahjat/a11y-lint-tool/frontend/internal/model"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/errs"
)

// mockProvider implements Provider for testing.
type mockProvider struct {
	report *model.Report
	err    error
	calls  int
}

func (m *mockProvider) Lint(ctx context.Context, _ model.LintRequest) (*model.Report, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.report, ctx.Err()
}

func TestService_Lint_Success(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	provider := &mockProvider{report: &model.Report{Sections: []model.Section{{Name: "main", Issues: []model.Issue{{Code: "WCAG1.1.1"}}}}}}

	report, err := NewService(provider, logger).Lint(context.Background(), model.LintRequest{URL: "https://example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.IssueCount() != 1 {
		t.Errorf("IssueCount() = %d, want 1", report.IssueCount())
	}
	if !strings.Contains(buf.String(), `"msg":"lint complete"`) {
		t.Errorf("log = %s, want a lint complete entry", buf.String())
	}
	if !strings.Contains(buf.String(), `"url":"https://example.com"`) {
		t.Errorf("log = %s, want the url attribute", buf.String())
	}
}

func TestService_Lint_PassesAppError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	provider := &mockProvider{err: &errs.AppError{Kind: errs.Rejected, UpstreamStatus: 400, Message: "bad url"}}

	_, err := NewService(provider, logger).Lint(context.Background(), model.LintRequest{HTML: "<p></p>"})

	var appErr *errs.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *errs.AppError, got %T", err)
	}
	if appErr.Message != "bad url" {
		t.Errorf("Message = %q, want %q", appErr.Message, "bad url")
	}
	if !strings.Contains(buf.String(), `"upstream_status":400`) {
		t.Errorf("log = %s, want upstream_status", buf.String())
	}
}

func TestService_Lint_DeadlineBecomesTimeout(t *testing.T) {
	provider := &mockProvider{err: context.DeadlineExceeded}

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := NewService(provider, slog.New(slog.DiscardHandler)).Lint(ctx, model.LintRequest{URL: "https://slow.example.com"})

	var appErr *errs.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *errs.AppError, got %T", err)
	}
	if appErr.Kind != errs.Timeout {
		t.Errorf("Kind = %s, want %s", appErr.Kind, errs.Timeout)
	}
}

func TestService_Lint_CanceledIsNotAnError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	provider := &mockProvider{err: &errs.AppError{Kind: errs.Unreachable, Message: "The lint service could not be reached.", Cause: context.Canceled}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(provider, logger).Lint(ctx, model.LintRequest{URL: "https://example.com"})

	var appErr *errs.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *errs.AppError, got %T", err)
	}
	if appErr.Kind != errs.Canceled {
		t.Errorf("Kind = %s, want %s", appErr.Kind, errs.Canceled)
	}
	if strings.Contains(buf.String(), `"level":"ERROR"`) {
		t.Errorf("log = %s, want no error entry for a canceled request", buf.String())
	}
	if !strings.Contains(buf.String(), `"msg":"lint canceled"`) {
		t.Errorf("log = %s, want a lint canceled entry", buf.String())
	}
}
