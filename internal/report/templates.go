package report

// Templates for the report region. Each State has an entry point named
// after it; "issue-table" is shared by both layouts.
var regionTemplates = `{{define "loading"}}<div class="spinner-border" role="status"><span class="visually-hidden">Loading…</span></div>{{end}}

{{define "warning"}}<div class="alert alert-warning" role="alert">{{.Message}}</div>{{end}}

{{define "error"}}<div class="alert alert-danger" role="alert">Error: {{.Message}}</div>{{end}}

{{define "success"}}<div class="alert alert-success" role="status">No issues found!</div>{{end}}

{{define "summary"}}<h4>Summary</h4>
<ul class="lint-summary">
  <li>Total: {{.Total}}</li>
  <li>Errors: {{.Errors}}</li>
  <li>Warnings: {{.Warnings}}</li>
</ul>{{end}}

{{define "report"}}{{template "summary" .Summary}}
{{if .Groups}}<div class="accordion" id="report-accordion">
{{range .Groups}}  <div class="accordion-item">
    <h2 class="accordion-header" id="{{.ID}}-heading">
      <button class="accordion-button{{if not .Expanded}} collapsed{{end}}" type="button" data-bs-toggle="collapse" data-bs-target="#{{.ID}}" aria-expanded="{{.Expanded}}" aria-controls="{{.ID}}">{{.Name}} <span class="badge bg-secondary ms-2">{{.Count}}</span></button>
    </h2>
    <div id="{{.ID}}" class="accordion-collapse collapse{{if .Expanded}} show{{end}}" aria-labelledby="{{.ID}}-heading">
      <div class="accordion-body">
        {{if .Table}}{{template "issue-table" .Table}}{{else}}<div class="alert alert-success mb-0" role="status">No issues found!</div>{{end}}
      </div>
    </div>
  </div>
{{end}}</div>{{else}}<h4>Issues</h4>
{{template "issue-table" .Table}}{{end}}{{end}}

{{define "issue-table"}}<table class="table table-sm table-striped">
  <thead>
    <tr><th>Code</th><th>Message</th><th>Selector</th><th>Context</th></tr>
  </thead>
  <tbody>
{{range .Rows}}    <tr>
      <td>{{.Code}}</td>
      <td>{{.Message}}</td>
      <td>{{.Selector}}</td>
      <td>{{with .Context}}{{if .Truncated}}<span id="{{.ID}}" data-bs-toggle="tooltip" title="{{.Full}}"><code>{{.Text}}</code></span>{{else}}<span><code>{{.Text}}</code></span>{{end}}{{end}}</td>
    </tr>
{{end}}  </tbody>
</table>{{end}}

{{define "tooltip-init"}}<script>
(function () {
  if (!window.bootstrap) { return; }
  for (const id of {{.}}) {
    const el = document.getElementById(id);
    if (el) { bootstrap.Tooltip.getOrCreateInstance(el); }
  }
})();
</script>{{end}}

{{define "document"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"></script>
</head>
<body>
<main class="container py-4">
  <h1 class="h3 mb-3">{{.Title}}</h1>
  {{if .Source}}<p class="text-muted">{{.Source}}</p>{{end}}
  <div id="report">{{.Body}}</div>
</main>
</body>
</html>{{end}}`
