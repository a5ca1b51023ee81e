package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/Bahjat/a11y-lint-tool/frontend/internal/controller"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/metrics"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/requestid"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/report"
)

// maxFormBody leaves room for the largest accepted HTML input in UTF-8.
const maxFormBody = 1 << 20 // 1 MB

const (
	urlInputID  = "url-input"
	htmlInputID = "html-input"
)

// fieldView is the template data of one input field.
type fieldView struct {
	Value    string
	Disabled bool
	OOB      bool
}

type pageView struct {
	PageID string
	URL    fieldView
	HTML   fieldView
	Report template.HTML
}

// Transport serves the lint form and answers its events with HTML fragments.
type Transport struct {
	linter   controller.Linter
	renderer *report.Renderer
	page     *template.Template
	sessions *Sessions
	layout   report.Layout
	logger   *slog.Logger
}

// NewTransport creates a transport that lints through linter.
func NewTransport(linter controller.Linter, renderer *report.Renderer, sessions *Sessions, layout report.Layout, logger *slog.Logger) (*Transport, error) {
	page, err := template.New("ui").Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("ui: parse templates: %w", err)
	}
	return &Transport{
		linter:   linter,
		renderer: renderer,
		page:     page,
		sessions: sessions,
		layout:   layout,
		logger:   logger,
	}, nil
}

// RegisterRoutes attaches the transport's handlers to the given mux.
func (t *Transport) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", t.handleIndex)
	mux.HandleFunc("POST /ui/fields", t.handleFields)
	mux.HandleFunc("POST /ui/lint", t.handleLint)
	mux.HandleFunc("GET /healthz", t.handleHealth)
}

func (t *Transport) handleIndex(w http.ResponseWriter, r *http.Request) {
	t.renderPage(w, http.StatusOK, pageView{PageID: newPageID()})
}

func (t *Transport) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// handleFields applies field exclusivity after an input event. The field
// being typed in is left alone so it keeps focus; its sibling is swapped
// out-of-band with the new disabled state.
func (t *Transport) handleFields(w http.ResponseWriter, r *http.Request) {
	urlField, htmlField, ok := t.parseFields(w, r)
	if !ok {
		return
	}

	ctrl := controller.New(controller.Handles{URL: urlField, HTML: htmlField}, t.linter, t.renderer)
	ctrl.ToggleFields()

	var buf bytes.Buffer
	trigger := r.Header.Get("HX-Trigger")
	if trigger != urlInputID {
		if err := t.page.ExecuteTemplate(&buf, "url-field", fieldView{Value: urlField.value, Disabled: urlField.disabled, OOB: true}); err != nil {
			t.renderFailure(w, err)
			return
		}
	}
	if trigger != htmlInputID {
		if err := t.page.ExecuteTemplate(&buf, "html-field", fieldView{Value: htmlField.value, Disabled: htmlField.disabled, OOB: true}); err != nil {
			t.renderFailure(w, err)
			return
		}
	}

	writeHTML(w, http.StatusOK, buf.Bytes())
}

// handleLint runs one submission. htmx requests get the report fragment,
// plain form posts get the whole page. A submission superseded by a newer
// one from the same page answers 204 so nothing is swapped.
func (t *Transport) handleLint(w http.ResponseWriter, r *http.Request) {
	urlField, htmlField, ok := t.parseFields(w, r)
	if !ok {
		return
	}

	page := pageID(r)
	logger := t.logger.With("page_id", page, "request_id", requestid.FromContext(r.Context()))

	region := &responseRegion{}
	ctrl := controller.New(
		controller.Handles{URL: urlField, HTML: htmlField, Report: region, Tooltips: region},
		t.linter,
		t.renderer,
		controller.WithSequence(t.sessions.Sequence(page)),
		controller.WithLayout(t.layout),
		controller.WithLogger(logger),
	)

	outcome := ctrl.Submit(r.Context())
	metrics.CountSubmission(outcome.String())
	logger.Debug("submission finished", "outcome", outcome.String())

	if outcome == controller.Discarded {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.Header.Get("HX-Request") != "true" {
		content, err := region.html(t.renderer)
		if err != nil {
			t.renderFailure(w, err)
			return
		}
		ctrl.ToggleFields()
		t.renderPage(w, http.StatusOK, pageView{
			PageID: page,
			URL:    fieldView{Value: urlField.value, Disabled: urlField.disabled},
			HTML:   fieldView{Value: htmlField.value, Disabled: htmlField.disabled},
			Report: content,
		})
		return
	}

	var buf bytes.Buffer
	if err := region.writeTo(&buf, t.renderer); err != nil {
		t.renderFailure(w, err)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (t *Transport) parseFields(w http.ResponseWriter, r *http.Request) (*formField, *formField, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBody)
	if err := r.ParseForm(); err != nil {
		t.renderView(w, http.StatusBadRequest, report.Error("The form could not be read."))
		return nil, nil, false
	}
	return &formField{value: r.PostFormValue("url")}, &formField{value: r.PostFormValue("html")}, true
}

func (t *Transport) renderPage(w http.ResponseWriter, status int, data pageView) {
	var buf bytes.Buffer
	if err := t.page.ExecuteTemplate(&buf, "page", data); err != nil {
		t.renderFailure(w, err)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

func (t *Transport) renderView(w http.ResponseWriter, status int, v report.View) {
	var buf bytes.Buffer
	if err := t.renderer.Render(&buf, v); err != nil {
		t.renderFailure(w, err)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

func (t *Transport) renderFailure(w http.ResponseWriter, err error) {
	t.logger.Error("failed to render response", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
