// Package render turns an assembled digest into its output forms: a static
// HTML page and a styled terminal view.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/Shan533/Github-Issue-Digest-Bot/internal/digest"
	"github.com/Shan533/Github-Issue-Digest-Bot/internal/priority"
	"github.com/Shan533/Github-Issue-Digest-Bot/internal/search"
)

var pageTmpl = template.Must(template.New("digest").Parse(`<!doctype html>
<html><head><meta charset='utf-8'/>
<title>Daily GitHub Issues &amp; PRs Digest</title>
<style>
  body { font-family: -apple-system,BlinkMacSystemFont,Segoe UI,Roboto,Helvetica,Arial,sans-serif; line-height:1.5; color:#111; }
  .item { border-bottom:1px solid #eee; padding:12px 0; }
  .pr { border-left: 3px solid #28a745; padding-left: 8px; }
  .issue { border-left: 3px solid #007bff; padding-left: 8px; }
  .repo { color:#555; font-size:12px; }
  .labels span { display:inline-block; margin-right:6px; padding:2px 6px; border:1px solid #ddd; border-radius:10px; font-size:12px; }
  .meta { color:#666; font-size:12px; }
  .type-badge { display:inline-block; padding:2px 6px; border-radius:10px; font-size:11px; font-weight:bold; margin-right:8px; }
  .pr-badge { background:#28a745; color:white; }
  .issue-badge { background:#007bff; color:white; }
  .priority-badge { display:inline-block; padding:2px 6px; border-radius:10px; font-size:10px; font-weight:bold; margin-right:6px; }
  .priority-p0 { background:#dc3545; color:white; }
  .priority-p1 { background:#fd7e14; color:white; }
  .priority-p2 { background:#ffc107; color:black; }
  .section { margin-bottom:20px; }
  .section h3 { margin-bottom:10px; color:#333; }
  .item-title { display:flex; align-items:center; margin-bottom:4px; }
</style>
</head><body>
<h2>Daily GitHub Issues &amp; PRs Digest</h2>
<p class='meta'>Generated at {{.GeneratedAt}}</p>
{{- if .Empty}}
<p>No matching issues or PRs today 🎉</p>
{{- else}}
{{- if .PRs}}
<div class="section">
<h3>📋 Pull Requests ({{len .PRs}})</h3>
{{- range .PRs}}
{{template "item" .}}
{{- end}}
</div>
{{- end}}
{{- if .Issues}}
<div class="section">
<h3>🐛 Issues ({{len .Issues}})</h3>
{{- range .Issues}}
{{template "item" .}}
{{- end}}
</div>
{{- end}}
{{- end}}
</body></html>
{{- define "item"}}
<div class='item {{.CSSKind}}'>
<div class='item-title'><span class='type-badge {{.CSSKind}}-badge'>{{.Badge}}</span>{{if .Tier}}<span class='priority-badge priority-{{.TierClass}}'>{{.Tier}}</span>{{end}}<a href='{{.URL}}' target='_blank'>{{.Title}}</a></div>
<div class='repo'>{{.Repo}}</div>
<div class='labels'>{{range .Labels}}<span>{{.}}</span>{{end}}</div>
<div class='meta'>Created: {{.Created}} · Updated: {{.Updated}}</div>
</div>
{{- end}}`))

type page struct {
	GeneratedAt string
	Empty       bool
	PRs         []viewItem
	Issues      []viewItem
}

type viewItem struct {
	Title     string
	URL       string
	Repo      string
	Labels    []string
	Tier      string
	TierClass string
	Badge     string
	CSSKind   string
	Created   string
	Updated   string
}

// HTML renders the digest as a self-contained page. Output is a pure
// function of the digest, so re-rendering the same input is byte-identical.
func HTML(d digest.Digest) (string, error) {
	data := page{
		GeneratedAt: d.GeneratedAt.Format("2006-01-02 15:04 UTC"),
		Empty:       len(d.Items) == 0,
		PRs:         viewItems(d.PullRequests(), "PR", "pr"),
		Issues:      viewItems(d.Issues(), "ISSUE", "issue"),
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering digest: %w", err)
	}
	return buf.String(), nil
}

func viewItems(items []search.Item, badge, cssKind string) []viewItem {
	out := make([]viewItem, 0, len(items))
	for _, it := range items {
		tier := priority.FromLabels(it.LabelNames())
		title := it.Title
		if title == "" {
			title = "(no title)"
		}
		out = append(out, viewItem{
			Title:     title,
			URL:       it.HTMLURL,
			Repo:      it.Repo(),
			Labels:    it.LabelNames(),
			Tier:      tier.String(),
			TierClass: strings.ToLower(tier.String()),
			Badge:     badge,
			CSSKind:   cssKind,
			Created:   formatDate(it.CreatedTime()),
			Updated:   formatDate(it.UpdatedTime()),
		})
	}
	return out
}

// formatDate renders a day-granularity date; the zero time (absent or
// malformed timestamp) renders as unknown.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format("2006-01-02")
}
