package controller

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"strings"

	"github.com/Bahjat/a11y-lint-tool/frontend/internal/model"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/errs"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/requestid"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/report"
)

const (
	msgEmptyInput   = "Enter URL or HTML."
	msgGenericError = "Error"

	// fallbackMarkup is shown when even the error view fails to render.
	fallbackMarkup = template.HTML(`<div class="alert alert-danger" role="alert">Error: the report could not be displayed.</div>`)
)

// Field is one of the two text inputs.
type Field interface {
	Value() string
	SetDisabled(disabled bool)
}

// Region is the output area the report is rendered into. Replace swaps
// the whole content; nothing is merged.
type Region interface {
	Replace(content template.HTML)
}

// Tooltips activates hover detail for elements already placed in the region.
type Tooltips interface {
	Activate(ids []string)
}

// Linter submits a request to the lint API.
type Linter interface {
	Lint(ctx context.Context, req model.LintRequest) (*model.Report, error)
}

// Handles are the UI regions the controller reads from and writes to.
type Handles struct {
	URL      Field
	HTML     Field
	Report   Region
	Tooltips Tooltips
}

// Outcome is the result of one submission.
type Outcome int

const (
	// Rendered means a report (or the no-issues state) was shown.
	Rendered Outcome = iota
	// Warned means the input was blank and nothing was sent.
	Warned
	// Failed means an error state was shown.
	Failed
	// Discarded means a newer submission superseded this one.
	Discarded
)

func (o Outcome) String() string {
	switch o {
	case Rendered:
		return "rendered"
	case Warned:
		return "warned"
	case Failed:
		return "failed"
	case Discarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Controller wires the input fields, the lint API and the report region.
// It is safe for concurrent use.
type Controller struct {
	handles  Handles
	linter   Linter
	renderer *report.Renderer
	layout   report.Layout
	seq      *Sequence
	logger   *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLayout selects the report layout. The default is report.Sectioned.
func WithLayout(l report.Layout) Option {
	return func(c *Controller) { c.layout = l }
}

// WithSequence shares a submission sequence between controllers, e.g. all
// requests of one browser session.
func WithSequence(s *Sequence) Option {
	return func(c *Controller) { c.seq = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New returns a Controller over the given handles.
func New(h Handles, linter Linter, renderer *report.Renderer, opts ...Option) *Controller {
	c := &Controller{
		handles:  h,
		linter:   linter,
		renderer: renderer,
		layout:   report.Sectioned,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.seq == nil {
		c.seq = &Sequence{}
	}
	return c
}

// ToggleFields disables each field while its sibling has content. Call it
// on every input event of either field.
func (c *Controller) ToggleFields() {
	urlFilled := strings.TrimSpace(c.handles.URL.Value()) != ""
	htmlFilled := strings.TrimSpace(c.handles.HTML.Value()) != ""

	c.handles.HTML.SetDisabled(urlFilled)
	c.handles.URL.SetDisabled(htmlFilled)
}

// Submit lints whichever field is filled in and renders the result. It
// blocks for the lint API round trip; other submissions may start in the
// meantime and only the latest one is rendered.
func (c *Controller) Submit(ctx context.Context) Outcome {
	token := c.seq.Next()
	logger := c.logger.With("token", token, "request_id", requestid.FromContext(ctx))

	c.seq.Commit(token, func() { c.show(report.Loading()) })

	req, ok := model.NewLintRequest(c.handles.URL.Value(), c.handles.HTML.Value())
	if !ok {
		return c.finish(token, report.Warning(msgEmptyInput), Warned, logger)
	}
	if err := req.Validate(); err != nil {
		return c.finish(token, report.Error(errorMessage(err)), Failed, logger)
	}

	rep, err := c.linter.Lint(ctx, req)
	if err != nil {
		logger.Debug("submission failed", "error", err)
		return c.finish(token, report.Error(errorMessage(err)), Failed, logger)
	}
	if rep == nil {
		logger.Error("linter returned no report")
		return c.finish(token, report.Error(msgGenericError), Failed, logger)
	}

	return c.finish(token, report.Build(rep, c.layout), Rendered, logger)
}

// finish renders v if token is still current.
func (c *Controller) finish(token uint64, v report.View, outcome Outcome, logger *slog.Logger) Outcome {
	committed := c.seq.Commit(token, func() {
		c.show(v)
		if len(v.Tooltips) > 0 && c.handles.Tooltips != nil {
			c.handles.Tooltips.Activate(v.Tooltips)
		}
	})
	if !committed {
		logger.Debug("stale submission discarded", "latest", c.seq.Latest())
		return Discarded
	}
	return outcome
}

func (c *Controller) show(v report.View) {
	content, err := c.renderer.RenderHTML(v)
	if err != nil {
		c.logger.Error("render failed", "error", err, "state", v.State)
		content, err = c.renderer.RenderHTML(report.Error("the report could not be displayed."))
		if err != nil {
			content = fallbackMarkup
		}
	}
	c.handles.Report.Replace(content)
}

func errorMessage(err error) string {
	var appErr *errs.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return msgGenericError
}
