package report

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/dtnitsch/unstop-trends/pkg/manifest"
)

// DefaultAssetsHost serves the ECharts scripts the page loads.
const DefaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

// DefaultTitle heads the page when none is configured.
const DefaultTitle = "Unstop Market Trend Analytics"

// Page describes the surroundings of the rendered charts.
type Page struct {
	Title       string
	Header      []string
	AssetsHost  string
	GeneratedAt time.Time
}

type pageSection struct {
	Name   string
	Charts []pageChart
}

type pageChart struct {
	ID        string
	Title     string
	Status    string
	ErrorType string
	Message   string
	Element   template.HTML
	Script    template.HTML
}

type pageData struct {
	Page
	Scripts  []string
	Sections []pageSection
	Rendered int
	Failed   int
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{range .Scripts}}<script type="text/javascript" src="{{.}}"></script>
{{end}}<style>
body { font-family: sans-serif; margin: 0 auto; max-width: 1040px; color: #222; }
header p { margin: 0.2em 0; color: #555; }
article.chart { margin: 1.5em 0; }
.chart-error { border: 1px solid #d9534f; background: #fdf2f2; color: #a94442; padding: 1em; }
.container { display: flex; justify-content: center; }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
{{range .Header}}<p>{{.}}</p>
{{end}}<p class="generated">Generated {{.GeneratedAt.Format "2006-01-02 15:04 MST"}}: {{.Rendered}} charts rendered, {{.Failed}} failed.</p>
</header>
{{range .Sections}}<section data-section="{{.Name}}">
<h2>{{.Name}}</h2>
{{range $i, $c := .Charts}}<article class="chart" data-chart-id="{{$c.ID}}" data-status="{{$c.Status}}" data-title="{{$c.Title}}">
<h3>{{$c.Title}}</h3>
{{if $c.Message}}<div class="chart-error" data-error-type="{{$c.ErrorType}}">{{$c.Message}}</div>
{{else}}{{$c.Element}}
{{$c.Script}}
{{end}}</article>
{{end}}</section>
{{end}}</body>
</html>
`))

// scripts returns the ECharts bundles the charts depend on.
func scripts(host string) []string {
	if host == "" {
		host = DefaultAssetsHost
	}
	if !strings.HasSuffix(host, "/") {
		host += "/"
	}
	return []string{
		host + "echarts.min.js",
		host + "echarts-wordcloud.min.js",
		host + "echarts-gl.min.js",
	}
}

// Render writes one HTML page holding every result, grouped by section in
// page order. Failed charts render as an error panel.
func Render(w io.Writer, p Page, results []Result) error {
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.GeneratedAt.IsZero() {
		p.GeneratedAt = time.Now()
	}

	data := pageData{Page: p, Scripts: scripts(p.AssetsHost)}

	index := make(map[string]int)
	for _, name := range Sections() {
		index[name] = len(data.Sections)
		data.Sections = append(data.Sections, pageSection{Name: name})
	}

	for _, r := range results {
		si, ok := index[r.Chart.Section]
		if !ok {
			si = len(data.Sections)
			index[r.Chart.Section] = si
			data.Sections = append(data.Sections, pageSection{Name: r.Chart.Section})
		}

		pc := pageChart{ID: r.Chart.ID, Title: r.Chart.Title}
		if r.Failed() {
			pc.Status = manifest.StatusFailed
			pc.ErrorType = r.ErrorType
			pc.Message = r.Message()
			data.Failed++
		} else {
			pc.Status = manifest.StatusRendered
			pc.Element = template.HTML(r.Snippet.Element)
			pc.Script = template.HTML(r.Snippet.Script)
			data.Rendered++
		}
		data.Sections[si].Charts = append(data.Sections[si].Charts, pc)
	}

	// Empty sections only add noise.
	kept := data.Sections[:0]
	for _, s := range data.Sections {
		if len(s.Charts) > 0 {
			kept = append(kept, s)
		}
	}
	data.Sections = kept

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
