package lintapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"gopkg.in/resty.v1"

	"github.com/Bahjat/a11y-lint-tool/frontend/internal/model"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/errs"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/requestid"
)

const (
	lintURLPath  = "/api/lint-url"
	lintHTMLPath = "/api/lint-html"
	userAgent    = "LintReportUI/1.0"

	// flatSectionName names the single section a legacy flat report is folded into.
	flatSectionName = "Document"
)

// Client calls the lint API over HTTP with JSON bodies.
type Client struct {
	client *resty.Client
}

// NewClient returns a Client for the lint API rooted at baseURL. Every call
// is bounded by timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return newClient(baseURL, &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	})
}

func newClient(baseURL string, hc *http.Client) *Client {
	rc := resty.NewWithClient(hc)
	rc.SetHostURL(strings.TrimRight(baseURL, "/"))
	rc.SetHeader("Accept", "application/json")
	rc.SetHeader("User-Agent", userAgent)
	return &Client{client: rc}
}

// wireReport accepts both the sectioned report and the older flat shape
// that carries a top-level issue list.
type wireReport struct {
	URL      string          `json:"url"`
	Sections []model.Section `json:"sections"`
	Issues   []model.Issue   `json:"issues"`
	Summary  model.Summary   `json:"summary"`
}

// Lint posts the request to the endpoint matching its kind and decodes the report.
func (c *Client) Lint(ctx context.Context, req model.LintRequest) (*model.Report, error) {
	path := lintURLPath
	if req.Kind() == model.KindHTML {
		path = lintHTMLPath
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "The request could not be encoded.",
			Cause:   err,
		}
	}

	r := c.client.R()
	r.SetContext(ctx)
	r.SetHeader("Content-Type", "application/json")
	if id := requestid.FromContext(ctx); id != "" {
		r.SetHeader(requestid.Header, id)
	}
	r.SetBody(body)

	resp, err := r.Post(path)
	if err != nil {
		return nil, transportError(err)
	}

	if !resp.IsSuccess() {
		return nil, rejectedError(resp.StatusCode(), resp.Body())
	}

	var wire wireReport
	if err := json.Unmarshal(resp.Body(), &wire); err != nil {
		return nil, &errs.AppError{
			Kind:           errs.ParsingFailed,
			UpstreamStatus: resp.StatusCode(),
			Message:        "The lint service returned an unreadable report.",
			Cause:          err,
		}
	}

	return wire.toReport(), nil
}

func (w wireReport) toReport() *model.Report {
	sections := w.Sections
	if sections == nil && w.Issues != nil {
		sections = []model.Section{{Name: flatSectionName, Issues: w.Issues}}
	}
	if sections == nil {
		sections = []model.Section{}
	}
	return &model.Report{
		URL:      w.URL,
		Sections: sections,
		Summary:  w.Summary,
	}
}

func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &errs.AppError{
			Kind:    errs.Timeout,
			Message: "The lint service took too long to respond.",
			Cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &errs.AppError{
			Kind:    errs.Canceled,
			Message: "The lint request was canceled.",
			Cause:   err,
		}
	}
	return &errs.AppError{
		Kind:    errs.Unreachable,
		Message: "The lint service could not be reached.",
		Cause:   err,
	}
}

// rejectedError prefers the server supplied detail over a generic message.
func rejectedError(status int, body []byte) error {
	var payload model.ErrorResponse
	_ = json.Unmarshal(body, &payload)

	msg := string(payload.Detail)
	if msg == "" {
		msg = fmt.Sprintf("Lint request failed with status %d.", status)
	}
	return &errs.AppError{
		Kind:           errs.Rejected,
		UpstreamStatus: status,
		Message:        msg,
	}
}
