package ui

import (
	"html/template"
	"io"
	"strings"

	"github.com/Bahjat/a11y-lint-tool/frontend/internal/report"
)

// formField is a controller.Field backed by a submitted form value.
type formField struct {
	value    string
	disabled bool
}

func (f *formField) Value() string      { return f.value }
func (f *formField) SetDisabled(d bool) { f.disabled = d }

// responseRegion collects what the controller renders during one request.
// It implements both controller.Region and controller.Tooltips.
type responseRegion struct {
	content  template.HTML
	tooltips []string
}

func (r *responseRegion) Replace(content template.HTML) {
	r.content = content
	r.tooltips = nil
}

func (r *responseRegion) Activate(ids []string) {
	r.tooltips = append(r.tooltips, ids...)
}

// writeTo writes the region content followed by the hover detail
// activation script, which must run after the content is in the page.
func (r *responseRegion) writeTo(w io.Writer, renderer *report.Renderer) error {
	if _, err := io.WriteString(w, string(r.content)); err != nil {
		return err
	}
	return renderer.RenderTooltipInit(w, r.tooltips)
}

// html returns the region content with the activation script appended,
// for embedding into a full page.
func (r *responseRegion) html(renderer *report.Renderer) (template.HTML, error) {
	var sb strings.Builder
	if err := r.writeTo(&sb, renderer); err != nil {
		return "", err
	}
	return template.HTML(sb.String()), nil //nolint:gosec // produced by html/template
}
