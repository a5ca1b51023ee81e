package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/errs"
)

// MaxHTMLLength is the largest HTML input, in characters, the lint API accepts.
const MaxHTMLLength = 100_000

// RequestKind tells which lint endpoint a request targets.
type RequestKind int

const (
	// KindURL lints a page fetched by the lint API.
	KindURL RequestKind = iota + 1
	// KindHTML lints raw markup supplied by the user.
	KindHTML
)

func (k RequestKind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindHTML:
		return "html"
	default:
		return "unknown"
	}
}

var requestValidate = validator.New()

// LintRequest is the JSON body posted to the lint API. Exactly one of URL
// and HTML is set.
type LintRequest struct {
	URL  string `json:"url,omitempty" validate:"required_without=HTML,excluded_with=HTML"`
	HTML string `json:"html,omitempty" validate:"required_without=URL,excluded_with=URL,max=100000"`
}

// NewLintRequest builds a request from the raw input values. The URL wins
// when both are filled in. It reports false when both are blank.
func NewLintRequest(rawURL, rawHTML string) (LintRequest, bool) {
	if u := strings.TrimSpace(rawURL); u != "" {
		return LintRequest{URL: u}, true
	}
	if h := strings.TrimSpace(rawHTML); h != "" {
		return LintRequest{HTML: h}, true
	}
	return LintRequest{}, false
}

// Kind returns the endpoint kind of the request.
func (r LintRequest) Kind() RequestKind {
	if r.URL != "" {
		return KindURL
	}
	return KindHTML
}

// Validate checks the request against the lint API's input contract.
func (r LintRequest) Validate() error {
	err := requestValidate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "HTML" && fe.Tag() == "max" {
				return &errs.AppError{
					Kind:    errs.InvalidInput,
					Message: fmt.Sprintf("HTML input is too long (max %d characters).", MaxHTMLLength),
					Cause:   err,
				}
			}
		}
	}

	return &errs.AppError{
		Kind:    errs.InvalidInput,
		Message: "Enter URL or HTML.",
		Cause:   err,
	}
}

// ErrorResponse is the JSON shape the lint API returns on failure.
type ErrorResponse struct {
	Detail Detail `json:"detail"`
}

// Detail is the human readable failure reason. The lint API sends either
// a plain string or, for request validation failures, a list of
// {loc, msg} objects which are flattened into one line.
type Detail string

type detailItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// UnmarshalJSON accepts a string, a list of detail items, or anything else
// (which yields an empty detail).
func (d *Detail) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = Detail(s)
		return nil
	}

	var items []detailItem
	if err := json.Unmarshal(data, &items); err != nil {
		*d = ""
		return nil
	}

	msgs := make([]string, 0, len(items))
	for _, it := range items {
		if it.Msg == "" {
			continue
		}
		if field, ok := lastString(it.Loc); ok {
			msgs = append(msgs, field+": "+it.Msg)
			continue
		}
		msgs = append(msgs, it.Msg)
	}
	*d = Detail(strings.Join(msgs, "; "))
	return nil
}

func lastString(loc []any) (string, bool) {
	if len(loc) == 0 {
		return "", false
	}
	s, ok := loc[len(loc)-1].(string)
	return s, ok && s != ""
}
