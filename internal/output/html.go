package output

import (
	"html/template"
	"strings"
)

// HTMLWriter renders a ScanView as a self-contained styled HTML report —
// no external stylesheet or script, so the output file can be opened
// directly from disk.
type HTMLWriter struct{}

const htmlTemplateSrc = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>waflex report — {{.URL}}</title>
<style>
body { font-family: monospace; background: #111; color: #ddd; padding: 2rem; }
h1 { color: #eee; font-size: 1.1rem; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { border: 1px solid #333; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #222; }
.bypass { color: #6f6; font-weight: bold; }
.soft404 { color: #dd6; }
.fail { color: #888; }
.summary { margin-top: 1rem; }
</style>
</head>
<body>
<h1>waflex report — {{.URL}}</h1>
<p>baseline: status={{.Baseline.Status}} size={{.Baseline.Size}} time={{.Baseline.TimeMS}}ms</p>
<table>
<tr><th>status</th><th>variation</th><th>size</th><th>time</th><th>reason</th><th>title</th></tr>
{{range .Variations}}<tr class="{{rowClass .}}">
<td>{{.Status}}</td><td>{{.Variation}}</td><td>{{.Size}}</td><td>{{.TimeMS}}ms</td><td>{{.Reason}}</td><td>{{.Title}}</td>
</tr>
{{end}}</table>
<p class="summary">{{.Summary.TotalTested}} tested, {{.Summary.SuccessfulBypasses}} bypasses, {{.Summary.FailedAttempts}} failed</p>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"rowClass": func(v VariantView) string {
		switch {
		case v.Bypass:
			return "bypass"
		case strings.Contains(v.Reason, "soft_404"):
			return "soft404"
		default:
			return "fail"
		}
	},
}).Parse(htmlTemplateSrc))

func (HTMLWriter) Write(v ScanView) (string, error) {
	var b strings.Builder
	data := struct {
		URL        string
		Baseline   struct {
			Status int
			Size   int
			TimeMS float64
		}
		Variations []VariantView
		Summary    struct {
			TotalTested        int
			SuccessfulBypasses int
			FailedAttempts     int
		}
	}{
		URL:        v.URL,
		Variations: v.Variations,
	}
	data.Baseline.Status = v.Baseline.Status
	data.Baseline.Size = v.Baseline.Size
	data.Baseline.TimeMS = v.Baseline.TimeMS
	data.Summary.TotalTested = v.Summary.TotalTested
	data.Summary.SuccessfulBypasses = v.Summary.SuccessfulBypasses
	data.Summary.FailedAttempts = v.Summary.FailedAttempts()

	if err := htmlTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
