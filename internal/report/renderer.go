package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

// Document is a standalone page around a rendered report region.
type Document struct {
	Title  string
	Source string
	Body   template.HTML
}

// Renderer renders views with html/template, which escapes every text
// and attribute value.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the region templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("region").Parse(regionTemplates)
	if err != nil {
		return nil, fmt.Errorf("report: parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the markup for v.
func (r *Renderer) Render(w io.Writer, v View) error {
	return r.tmpl.ExecuteTemplate(w, templateFor(v.State), v)
}

// RenderHTML renders v into a string that is safe to insert into a page.
func (r *Renderer) RenderHTML(v View) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, v); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}

// RenderTooltipInit writes a script that activates hover detail for the
// given element ids. Nothing is written for an empty list.
func (r *Renderer) RenderTooltipInit(w io.Writer, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.tmpl.ExecuteTemplate(w, "tooltip-init", ids)
}

// RenderDocument writes a complete HTML page around a rendered region.
func (r *Renderer) RenderDocument(w io.Writer, d Document) error {
	return r.tmpl.ExecuteTemplate(w, "document", d)
}

func templateFor(s State) string {
	switch s {
	case StateLoading:
		return "loading"
	case StateWarning:
		return "warning"
	case StateError:
		return "error"
	case StateSuccess:
		return "success"
	default:
		return "report"
	}
}
