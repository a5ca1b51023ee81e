package report

import (
	"fmt"

	"github.com/Bahjat/a11y-lint-tool/frontend/internal/model"
)

// ContextLimit is the number of characters of an issue context shown
// inline; longer contexts are cut and exposed as hover detail.
const ContextLimit = 50

const (
	ellipsis    = "…"
	placeholder = "-"
)

// Layout selects how issues are arranged in the rendered report.
type Layout int

const (
	// Sectioned renders one collapsible group per report section.
	Sectioned Layout = iota
	// Flat renders every issue in a single table.
	Flat
)

// ParseLayout converts a configuration value into a Layout.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "sectioned", "":
		return Sectioned, nil
	case "flat":
		return Flat, nil
	default:
		return Sectioned, fmt.Errorf("report: unknown layout %q", s)
	}
}

func (l Layout) String() string {
	if l == Flat {
		return "flat"
	}
	return "sectioned"
}

// State is the kind of content shown in the report region.
type State int

const (
	StateLoading State = iota
	StateWarning
	StateError
	StateSuccess
	StateReport
)

// View is the typed node tree for one render of the report region.
type View struct {
	State   State
	Message string
	Summary model.Summary

	// Table is set for the flat layout, Groups for the sectioned one.
	Table  *Table
	Groups []Group

	// Tooltips lists the element ids whose hover detail has to be
	// activated once the view is in the page.
	Tooltips []string
}

// Group is one collapsible section of a sectioned report. A nil Table
// means the section has no issues.
type Group struct {
	ID       string
	Name     string
	Count    int
	Expanded bool
	Table    *Table
}

// Table is an issue table.
type Table struct {
	Rows []Row
}

// Row is one issue.
type Row struct {
	Code     string
	Message  string
	Selector string
	Context  Context
}

// Context is the display form of an issue's source snippet.
type Context struct {
	ID        string
	Text      string
	Full      string
	Truncated bool
}

// Loading is the view shown while a submission is in flight.
func Loading() View {
	return View{State: StateLoading}
}

// Warning is the view for a submission the user has to correct.
func Warning(msg string) View {
	return View{State: StateWarning, Message: msg}
}

// Error is the view for a failed submission.
func Error(msg string) View {
	return View{State: StateError, Message: msg}
}

// Build turns a report into a view using the given layout.
func Build(r *model.Report, layout Layout) View {
	if r.IssueCount() == 0 {
		return View{State: StateSuccess, Summary: r.Summary}
	}

	v := View{State: StateReport, Summary: r.Summary}

	if layout == Flat {
		v.Table = buildTable(r.Issues(), "ctx", &v.Tooltips)
		return v
	}

	v.Groups = make([]Group, 0, len(r.Sections))
	for i, s := range r.Sections {
		g := Group{
			ID:       fmt.Sprintf("section-%d", i),
			Name:     s.Name,
			Count:    len(s.Issues),
			Expanded: i == 0,
		}
		if len(s.Issues) > 0 {
			g.Table = buildTable(s.Issues, fmt.Sprintf("ctx-%d", i), &v.Tooltips)
		}
		v.Groups = append(v.Groups, g)
	}
	return v
}

func buildTable(issues []model.Issue, idPrefix string, tooltips *[]string) *Table {
	t := &Table{Rows: make([]Row, 0, len(issues))}
	for i, is := range issues {
		row := Row{
			Code:     is.Code,
			Message:  is.Message,
			Selector: orPlaceholder(is.Selector),
			Context:  truncateContext(is.Context),
		}
		if row.Context.Truncated {
			row.Context.ID = fmt.Sprintf("%s-%d", idPrefix, i)
			*tooltips = append(*tooltips, row.Context.ID)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// truncateContext counts characters, not bytes, so multi-byte text is never split.
func truncateContext(ctx string) Context {
	if ctx == "" {
		return Context{Text: placeholder}
	}
	runes := []rune(ctx)
	if len(runes) <= ContextLimit {
		return Context{Text: ctx}
	}
	return Context{
		Text:      string(runes[:ContextLimit]) + ellipsis,
		Full:      ctx,
		Truncated: true,
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
