package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/narendra2074/drought-marathwada/internal/compare"
	"github.com/narendra2074/drought-marathwada/internal/domain"
)

// PageTitle is the heading shown on the dashboard.
const PageTitle = "Marathwada Drought Dashboard Comparison"

// echartsAssets serves the echarts runtime that the chart snippets call into.
const echartsAssets = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

type yearOption struct {
	Year     int
	Selected bool
}

type sideView struct {
	Heading      string
	Year         int
	Image        template.URL
	ChartElement template.HTML
	ChartScript  template.HTML
	Rows         [2][3]domain.MetricCell
}

type pageView struct {
	Title        string
	AssetsSrc    string
	LeftOptions  []yearOption
	RightOptions []yearOption
	Left         sideView
	Right        sideView
}

// DashboardPage writes the comparison page: the header with both year
// selectors, and per side the map image, the distribution pie, and the
// metric tile grid. years drives the selector options and must be the
// store's sorted year list.
func DashboardPage(w io.Writer, years []int, result *compare.Comparison) error {
	view := pageView{
		Title:        PageTitle,
		AssetsSrc:    echartsAssets,
		LeftOptions:  yearOptions(years, result.Left.Year),
		RightOptions: yearOptions(years, result.Right.Year),
		Left:         newSideView("Left Year", result.Left),
		Right:        newSideView("Right Year", result.Right),
	}
	return pageTemplate.Execute(w, view)
}

func yearOptions(years []int, selected int) []yearOption {
	out := make([]yearOption, 0, len(years))
	for _, y := range years {
		out = append(out, yearOption{Year: y, Selected: y == selected})
	}
	return out
}

func newSideView(heading string, s compare.Side) sideView {
	snippet := distributionPie(s.Year, s.Chart).RenderSnippet()
	return sideView{
		Heading: heading,
		Year:    s.Year,
		// Payload is a data URI built by the resolver or the fallback pixel,
		// never user input. html/template would reject the data: scheme
		// without the template.URL marker.
		Image:        template.URL(s.Image.Payload),
		ChartElement: template.HTML(snippet.Element),
		ChartScript:  template.HTML(snippet.Script),
		Rows:         s.Metrics.Rows,
	}
}

// distributionPie builds the echarts pie for one year, one colored slice per
// category in the fixed category order.
func distributionPie(year int, dist domain.Distribution) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "280px"}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%d Distribution", year),
			Left:  "center",
		}),
	)

	items := make([]opts.PieData, 0, len(dist.Values))
	for i, label := range dist.Labels {
		items = append(items, opts.PieData{
			Name:      label.DisplayName(),
			Value:     dist.Values[i],
			ItemStyle: &opts.ItemStyle{Color: dist.Colors[i]},
		})
	}

	pie.AddSeries("distribution", items)
	pie.SetSeriesOptions(charts.WithLabelOpts(opts.Label{Formatter: "{b}: {d}%"}))
	return pie
}

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<script src="{{.AssetsSrc}}"></script>
<style>
body { margin: 0; min-height: 100vh; font-family: "Segoe UI", Arial, sans-serif; background: linear-gradient(135deg, #f5f7fa 0%, #c3cfe2 100%); }
header { display: flex; justify-content: space-between; align-items: center; padding: 12px 18px; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); }
header h1 { margin: 0; font-size: 24px; color: #ffffff; }
header form { display: flex; gap: 18px; align-items: flex-end; }
header label { display: flex; flex-direction: column; font-size: 12px; color: #ffffff; }
header select { width: 110px; margin-top: 3px; }
header button { height: 24px; }
main { display: flex; gap: 14px; padding: 14px; }
.column { flex: 1; min-width: 0; }
.card { background: #ffffff; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.12); padding: 10px; margin-bottom: 12px; }
.card h4 { text-align: center; margin: 4px 0 8px; color: #2c3e50; }
.card img { display: block; width: 100%; height: 280px; object-fit: contain; border-radius: 6px; }
.tile-row { display: flex; }
.tile { flex: 1; margin: 3px; padding: 8px 4px; border-radius: 6px; text-align: center; box-shadow: 0 1px 3px rgba(0,0,0,0.15); }
.tile-icon { font-size: 16px; }
.tile-label { font-weight: bold; font-size: 10px; margin-top: 2px; }
.tile-value { font-size: 12px; margin-top: 2px; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <form method="get" action="/">
    <label>Left Year
      <select name="left">
        {{range .LeftOptions}}<option value="{{.Year}}"{{if .Selected}} selected{{end}}>{{.Year}}</option>
        {{end}}
      </select>
    </label>
    <label>Right Year
      <select name="right">
        {{range .RightOptions}}<option value="{{.Year}}"{{if .Selected}} selected{{end}}>{{.Year}}</option>
        {{end}}
      </select>
    </label>
    <button type="submit">Compare</button>
  </form>
</header>
<main>
{{template "side" .Left}}
{{template "side" .Right}}
</main>
</body>
</html>
{{define "side"}}<section class="column">
  <div class="card">
    <h4>{{.Heading}}</h4>
    <img src="{{.Image}}" alt="Drought map {{.Year}}">
  </div>
  <div class="card">
    {{.ChartElement}}
  </div>
  <div class="card">
    {{range .Rows}}<div class="tile-row">
      {{range .}}<div class="tile" style="background-color: {{.Color}}; color: {{.TextColor}}">
        <div class="tile-icon">{{.Icon}}</div>
        <div class="tile-label">{{.Label}}</div>
        <div class="tile-value">{{.Display}}</div>
      </div>
      {{end}}
    </div>
    {{end}}
  </div>
  {{.ChartScript}}
</section>
{{end}}`))
