package report

import (
	"fmt"
	"html/template"
	"io"
)

// WriteHTML renders the full learning report as a standalone HTML page.
func WriteHTML(w io.Writer, d Data) error {
	if err := page.Execute(w, d); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	return nil
}

var page = template.Must(template.New("report").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"letter": func(i int) string {
		return string(rune('A' + i))
	},
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>bashlore report</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 0; background: #0f172a; color: #f8fafc; }
  main { max-width: 960px; margin: 0 auto; padding: 2rem; }
  h1 { color: #8b5cf6; }
  h2 { color: #14b8a6; border-bottom: 1px solid #334155; padding-bottom: .3rem; margin-top: 2.5rem; }
  .meta { color: #94a3b8; }
  .stats { display: flex; gap: 1rem; flex-wrap: wrap; margin: 1.5rem 0; }
  .stat { background: #1e293b; border: 1px solid #334155; border-radius: .5rem; padding: 1rem 1.5rem; }
  .stat b { display: block; font-size: 1.6rem; color: #f97316; }
  table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
  th, td { text-align: left; padding: .4rem .6rem; border-bottom: 1px solid #1e293b; }
  th { color: #94a3b8; font-weight: 600; }
  code { background: #1e293b; padding: .1rem .35rem; border-radius: .25rem; }
  .bar { background: #8b5cf6; height: .8rem; border-radius: .2rem; display: inline-block; }
  .question { background: #1e293b; border: 1px solid #334155; border-radius: .5rem; padding: 1rem 1.5rem; margin: 1rem 0; }
  .question pre { white-space: pre-wrap; }
  ol.options { list-style: upper-alpha; }
  details { color: #94a3b8; margin-top: .5rem; }
  .warn { color: #f43f5e; }
</style>
</head>
<body>
<main>
<h1>Shell learning report</h1>
<p class="meta">Generated {{.GeneratedAt.Format "2006-01-02 15:04"}} from {{.SessionCount}} session(s)</p>

<div class="stats">
  <div class="stat"><b>{{.TotalOccurrences}}</b>commands run</div>
  <div class="stat"><b>{{len .Commands}}</b>distinct commands</div>
  <div class="stat"><b>{{len .Categories}}</b>categories</div>
  {{if .Quiz}}<div class="stat"><b>{{len .Quiz.Questions}}</b>quiz questions</div>{{end}}
</div>

{{if .Warnings}}
<h2>Warnings</h2>
<ul>{{range .Warnings}}<li class="warn">{{.}}</li>{{end}}</ul>
{{end}}

<h2>Complexity</h2>
<table>
{{$h := .ComplexityHistogram}}
{{range $i, $n := $h}}
  <tr><td>Level {{inc $i}}</td><td><span class="bar" style="width:{{$n}}rem"></span> {{$n}}</td></tr>
{{end}}
</table>

{{range .Categories}}
<h2>{{.Name}}</h2>
<p class="meta">{{.Description}}</p>
<table>
  <tr><th>Command</th><th>Times</th><th>Complexity</th><th>Example</th></tr>
  {{range .Commands}}
  <tr><td><code>{{.Base}}</code></td><td>{{.Frequency}}</td><td>{{.Complexity}}/5</td><td><code>{{.FirstSeen}}</code></td></tr>
  {{end}}
</table>
{{end}}

{{if .Quiz}}
<h2>Quiz</h2>
{{if .Quiz.Warnings}}<ul>{{range .Quiz.Warnings}}<li class="warn">{{.}}</li>{{end}}</ul>{{end}}
{{range $qi, $q := .Quiz.Questions}}
<div class="question">
  <p><b>Q{{inc $qi}}.</b> (difficulty {{$q.Difficulty}}/5)</p>
  <pre>{{$q.Prompt}}</pre>
  <ol class="options">
    {{range $q.Options}}<li>{{.}}</li>{{end}}
  </ol>
  <details><summary>Answer</summary>{{letter $q.CorrectIndex}} — {{$q.Explanation}}</details>
</div>
{{end}}
{{end}}

</main>
</body>
</html>
`))
