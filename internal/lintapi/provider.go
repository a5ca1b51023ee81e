package lintapi

import (
	"context"

	"github.com/Bahjat/a11y-lint-tool/frontend/internal/model"
)

// Provider defines the contract for anything that can lint a request.
type Provider interface {
	Lint(ctx context.Context, req model.LintRequest) (*model.Report, error)
}
