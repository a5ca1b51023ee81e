package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bahjat/a11y-lint-tool/frontend/internal/controller"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/lintapi"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/config"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/logger"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/requestid"
	"github.com/Bahjat/a11y-lint-tool/frontend/internal/report"
)

var errNotRendered = errors.New("no report was produced")

type options struct {
	url      string
	htmlFile string
	api      string
	layout   string
	timeout  time.Duration
	out      string
	fragment bool
	logLevel string
}

// staticField is a controller.Field with a fixed value.
type staticField struct{ value string }

func (f staticField) Value() string   { return f.value }
func (staticField) SetDisabled(bool) {}

// captureRegion keeps the last content rendered into it together with the
// hover detail ids activated for that content.
type captureRegion struct {
	content  template.HTML
	tooltips []string
}

func (r *captureRegion) Replace(content template.HTML) {
	r.content = content
	r.tooltips = nil
}

func (r *captureRegion) Activate(ids []string) {
	r.tooltips = append(r.tooltips, ids...)
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "lintreport",
		Short: "Lint a page or an HTML document and write the rendered report",
		Long: "lintreport submits a URL or an HTML document to the lint API and writes\n" +
			"the report as a standalone HTML page (or just the report fragment).\n" +
			"Use --html-file - to read the document from stdin.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("api") {
				opts.api = cfg.LintAPIURL
			}
			if !cmd.Flags().Changed("timeout") {
				opts.timeout = cfg.LintTimeout
			}
			if !cmd.Flags().Changed("layout") {
				opts.layout = cfg.ReportLayout
			}
			if !cmd.Flags().Changed("log-level") {
				opts.logLevel = cfg.LogLevel
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := run(cmd.Context(), opts, stdin, stdout, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "lintreport: %v\n", err)
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.url, "url", "", "URL of the page to lint")
	f.StringVar(&opts.htmlFile, "html-file", "", "HTML file to lint, - for stdin")
	f.StringVar(&opts.api, "api", "", "lint API base URL (default $LINT_API_URL)")
	f.StringVar(&opts.layout, "layout", "", "report layout: sectioned or flat (default $REPORT_LAYOUT)")
	f.DurationVar(&opts.timeout, "timeout", 0, "lint API timeout (default $LINT_TIMEOUT)")
	f.StringVarP(&opts.out, "out", "o", "", "write the report to this file instead of stdout")
	f.BoolVar(&opts.fragment, "fragment", false, "write only the report fragment, not a full page")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (default $LOG_LEVEL)")
	cmd.MarkFlagsMutuallyExclusive("url", "html-file")

	return cmd
}

func run(ctx context.Context, opts options, stdin io.Reader, stdout, stderr io.Writer) error {
	log := logger.New(opts.logLevel, stderr)

	layout, err := report.ParseLayout(opts.layout)
	if err != nil {
		return err
	}
	renderer, err := report.NewRenderer()
	if err != nil {
		return err
	}

	html, err := readHTML(opts.htmlFile, stdin)
	if err != nil {
		return err
	}

	client := lintapi.NewClient(opts.api, opts.timeout)
	region := &captureRegion{}
	ctrl := controller.New(
		controller.Handles{
			URL:      staticField{value: opts.url},
			HTML:     staticField{value: html},
			Report:   region,
			Tooltips: region,
		},
		lintapi.NewService(client, log),
		renderer,
		controller.WithLayout(layout),
		controller.WithLogger(log),
	)

	ctx = requestid.NewContext(ctx, requestid.New())
	outcome := ctrl.Submit(ctx)

	if err := write(opts, renderer, region, stdout); err != nil {
		return err
	}
	if outcome != controller.Rendered {
		return fmt.Errorf("%w: %s", errNotRendered, outcome)
	}
	return nil
}

func readHTML(path string, stdin io.Reader) (string, error) {
	switch path {
	case "":
		return "", nil
	case "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	default:
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read html file: %w", err)
		}
		return string(b), nil
	}
}

func write(opts options, renderer *report.Renderer, region *captureRegion, stdout io.Writer) (err error) {
	w := stdout
	if opts.out != "" {
		f, createErr := os.Create(opts.out)
		if createErr != nil {
			return fmt.Errorf("create output: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		w = f
	}

	var body strings.Builder
	body.WriteString(string(region.content))
	if err := renderer.RenderTooltipInit(&body, region.tooltips); err != nil {
		return err
	}

	if opts.fragment {
		_, err = io.WriteString(w, body.String())
		return err
	}

	source := opts.url
	if source == "" {
		source = "HTML input"
		if opts.htmlFile != "" && opts.htmlFile != "-" {
			source = opts.htmlFile
		}
	}
	return renderer.RenderDocument(w, report.Document{
		Title:  "Accessibility report",
		Source: source,
		Body:   template.HTML(body.String()), //nolint:gosec // produced by html/template
	})
}
