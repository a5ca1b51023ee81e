package report

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Bahjat/a11y-lint-tool/frontend/internal/model"
)

func TestParseLayout(t *testing.T) {
	tests := []struct {
		in      string
		want    Layout
		wantErr bool
	}{
		{in: "sectioned", want: Sectioned},
		{in: "", want: Sectioned},
		{in: "flat", want: Flat},
		{in: "tabs", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLayout(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLayout(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLayout(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuild_NoIssues(t *testing.T) {
	r := &model.Report{
		Sections: []model.Section{{Name: "main"}, {Name: "footer"}},
		Summary:  model.Summary{},
	}

	for _, layout := range []Layout{Sectioned, Flat} {
		v := Build(r, layout)
		if v.State != StateSuccess {
			t.Errorf("%s: State = %d, want StateSuccess", layout, v.State)
		}
		if v.Table != nil || v.Groups != nil {
			t.Errorf("%s: success view carries a table", layout)
		}
	}
}

func TestBuild_Sectioned(t *testing.T) {
	r := &model.Report{
		Sections: []model.Section{
			{Name: "A", Issues: []model.Issue{}},
			{Name: "B", Issues: []model.Issue{{Code: "WCAG1.1.1", Message: "Image element missing non-empty alt attribute"}}},
		},
		Summary: model.Summary{Total: 1, Errors: 1},
	}

	v := Build(r, Sectioned)
	if v.State != StateReport {
		t.Fatalf("State = %d, want StateReport", v.State)
	}
	if len(v.Groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(v.Groups))
	}

	a, b := v.Groups[0], v.Groups[1]
	if !a.Expanded || a.Table != nil || a.Count != 0 {
		t.Errorf("group A = %+v, want expanded with no table", a)
	}
	if b.Expanded {
		t.Error("group B is expanded, want collapsed")
	}
	if b.Count != 1 || b.Table == nil || len(b.Table.Rows) != 1 {
		t.Errorf("group B = %+v, want one row", b)
	}
	if b.Table.Rows[0].Selector != "-" || b.Table.Rows[0].Context.Text != "-" {
		t.Errorf("row = %+v, want placeholders for selector and context", b.Table.Rows[0])
	}
}

func TestBuild_Flat(t *testing.T) {
	r := &model.Report{
		Sections: []model.Section{
			{Name: "header", Issues: []model.Issue{{Code: "WCAG1.3.1", Selector: "nav"}}},
			{Name: "main", Issues: []model.Issue{{Code: "WCAG1.1.1", Selector: "img"}, {Code: "WCAG1.4.3", Selector: "p"}}},
		},
		Summary: model.Summary{Total: 3, Errors: 3},
	}

	v := Build(r, Flat)
	if v.Groups != nil {
		t.Fatal("flat view has groups")
	}
	if v.Table == nil || len(v.Table.Rows) != 3 {
		t.Fatalf("table = %+v, want 3 rows", v.Table)
	}
	if v.Table.Rows[2].Code != "WCAG1.4.3" {
		t.Errorf("last code = %q, want %q", v.Table.Rows[2].Code, "WCAG1.4.3")
	}
}

func TestTruncateContext(t *testing.T) {
	tests := []struct {
		name          string
		ctx           string
		wantText      string
		wantTruncated bool
	}{
		{name: "empty", ctx: "", wantText: "-"},
		{name: "short", ctx: "<img src=\"a.png\">", wantText: "<img src=\"a.png\">"},
		{name: "exactly limit", ctx: strings.Repeat("a", ContextLimit), wantText: strings.Repeat("a", ContextLimit)},
		{name: "over limit", ctx: strings.Repeat("a", 60), wantText: strings.Repeat("a", 50) + "…", wantTruncated: true},
		{name: "multibyte", ctx: strings.Repeat("é", 51), wantText: strings.Repeat("é", 50) + "…", wantTruncated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateContext(tt.ctx)
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
			if got.Truncated != tt.wantTruncated {
				t.Errorf("Truncated = %v, want %v", got.Truncated, tt.wantTruncated)
			}
			if got.Truncated && got.Full != tt.ctx {
				t.Errorf("Full = %q, want the untruncated context", got.Full)
			}
			if !utf8.ValidString(got.Text) {
				t.Errorf("Text %q is not valid UTF-8", got.Text)
			}
		})
	}
}

func TestBuild_TooltipIDs(t *testing.T) {
	long := strings.Repeat("x", 80)
	r := &model.Report{Sections: []model.Section{
		{Name: "main", Issues: []model.Issue{{Code: "a", Context: long}, {Code: "b", Context: "short"}}},
		{Name: "aside", Issues: []model.Issue{{Code: "c", Context: long}}},
	}}

	v := Build(r, Sectioned)
	want := []string{"ctx-0-0", "ctx-1-0"}
	if len(v.Tooltips) != len(want) {
		t.Fatalf("Tooltips = %v, want %v", v.Tooltips, want)
	}
	for i := range want {
		if v.Tooltips[i] != want[i] {
			t.Errorf("Tooltips[%d] = %q, want %q", i, v.Tooltips[i], want[i])
		}
	}

	flat := Build(r, Flat)
	if len(flat.Tooltips) != 2 || flat.Tooltips[1] != "ctx-2" {
		t.Errorf("flat Tooltips = %v, want [ctx-0 ctx-2]", flat.Tooltips)
	}
}
