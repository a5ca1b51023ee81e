package model

// Issue is a single linting finding.
type Issue struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Selector string `json:"selector,omitempty"`
	Context  string `json:"context,omitempty"`
}

// Section groups the issues found in one part of the page (a landmark,
// an iframe, or the whole document).
type Section struct {
	Name     string  `json:"name"`
	Selector string  `json:"selector,omitempty"`
	Issues   []Issue `json:"issues"`
}

// Summary holds the aggregate counts reported by the lint API.
type Summary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Report is the complete result of one lint submission.
type Report struct {
	URL      string    `json:"url,omitempty"`
	Sections []Section `json:"sections"`
	Summary  Summary   `json:"summary"`
}

// IssueCount returns the number of issues across all sections.
func (r *Report) IssueCount() int {
	var n int
	for _, s := range r.Sections {
		n += len(s.Issues)
	}
	return n
}

// Issues returns every issue of the report in section order.
func (r *Report) Issues() []Issue {
	all := make([]Issue, 0, r.IssueCount())
	for _, s := range r.Sections {
		all = append(all, s.Issues...)
	}
	return all
}
