package ui

// Page and form field templates. The form posts to /ui/lint and the
// fragment answer is swapped into #report; field input events post to
// /ui/fields, which answers with the sibling field swapped out-of-band.
var pageTemplates = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Accessibility Linter</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"></script>
  <script src="https://unpkg.com/htmx.org@2.0.4"></script>
</head>
<body>
<main class="container py-4">
  <h1 class="h3 mb-3">Accessibility Linter</h1>
  <form id="lint-form" method="post" action="/ui/lint"
        hx-post="/ui/lint" hx-target="#report" hx-swap="innerHTML" hx-sync="this:replace" hx-indicator="#lint-spinner">
    <input type="hidden" name="page_id" value="{{.PageID}}">
    <div class="mb-3">
      <label for="url-input" class="form-label">Page URL</label>
      {{template "url-field" .URL}}
    </div>
    <div class="mb-3">
      <label for="html-input" class="form-label">or raw HTML</label>
      {{template "html-field" .HTML}}
    </div>
    <button type="submit" class="btn btn-primary">Lint</button>
    <span id="lint-spinner" class="htmx-indicator spinner-border spinner-border-sm ms-2" role="status"><span class="visually-hidden">Loading…</span></span>
  </form>
  <div id="report" class="mt-4">{{.Report}}</div>
</main>
</body>
</html>{{end}}

{{define "url-field"}}<input type="url" class="form-control" id="url-input" name="url" value="{{.Value}}" placeholder="https://example.com"{{if .Disabled}} disabled{{end}}{{if .OOB}} hx-swap-oob="true"{{end}}
       hx-post="/ui/fields" hx-trigger="input changed delay:150ms" hx-include="#lint-form" hx-swap="none">{{end}}

{{define "html-field"}}<textarea class="form-control" id="html-input" name="html" rows="8" placeholder="&lt;!DOCTYPE html&gt;…"{{if .Disabled}} disabled{{end}}{{if .OOB}} hx-swap-oob="true"{{end}}
          hx-post="/ui/fields" hx-trigger="input changed delay:150ms" hx-include="#lint-form" hx-swap="none">{{.Value}}</textarea>{{end}}`
