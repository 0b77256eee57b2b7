// Package templates holds the hand-written templ components for the
// dashboard page. The page is a static shell; Datastar patches the
// metrics, chart signals, and table over SSE whenever a filter signal
// changes.
package templates

import (
	"context"
	"html/template"
	"io"
	"time"

	"github.com/a-h/templ"
)

// PageData carries the filter options and default date bounds the
// dashboard page renders.
type PageData struct {
	Categories []string
	Regions    []string
	From       time.Time
	To         time.Time
}

// Dashboard returns the single-page dashboard component.
func Dashboard(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pageTemplate.Execute(w, pageView{
			PageData: data,
			FromStr:  data.From.Format("2006-01-02"),
			ToStr:    data.To.Format("2006-01-02"),
		})
	})
}

type pageView struct {
	PageData
	FromStr string
	ToStr   string
}

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>E-commerce Sales Dashboard</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@main/bundles/datastar.js"></script>
<style>
body{font-family:system-ui,sans-serif;margin:0;background:#f5f6fa;color:#1f2430}
header{background:#1f2430;color:#fff;padding:1rem 2rem}
main{padding:1.5rem 2rem}
.filters{display:flex;gap:1rem;align-items:end;flex-wrap:wrap;margin-bottom:1.5rem}
.filters label{display:block;font-size:.8rem;margin-bottom:.25rem;color:#5b6172}
.metrics{display:flex;gap:1rem;margin-bottom:1.5rem}
.metric{background:#fff;border-radius:8px;padding:1rem 1.5rem;box-shadow:0 1px 3px rgba(0,0,0,.08);min-width:12rem}
.metric h3{margin:0 0 .25rem;font-size:.8rem;color:#5b6172;text-transform:uppercase}
.metric p{margin:0;font-size:1.4rem;font-weight:600}
.charts{display:grid;grid-template-columns:2fr 1fr;gap:1rem;margin-bottom:1.5rem}
.chart-card{background:#fff;border-radius:8px;padding:1rem;box-shadow:0 1px 3px rgba(0,0,0,.08)}
.modern-table{width:100%;border-collapse:collapse;background:#fff}
.modern-table th,.modern-table td{padding:.5rem .75rem;text-align:left;border-bottom:1px solid #e6e8ef}
.category-badge{background:#eef1f8;border-radius:4px;padding:.1rem .4rem;font-size:.8rem}
.empty-warning{background:#fff4e0;border:1px solid #ffd591;border-radius:8px;padding:1rem}
.table-note{color:#5b6172;font-size:.85rem}
</style>
</head>
<body data-signals="{from:'{{.FromStr}}',to:'{{.ToStr}}',category:'All',region:'All',empty:false,summary:{},weeklyData:[],productsData:[],regionsData:[]}"
      data-on-load="@get('/sse/dashboard')">
<header><h1>E-commerce Sales Dashboard</h1></header>
<main>
<section class="filters">
<div><label for="from">From</label>
<input id="from" type="date" data-bind-from data-on-change="@get('/sse/dashboard')" min="{{.FromStr}}" max="{{.ToStr}}"/></div>
<div><label for="to">To</label>
<input id="to" type="date" data-bind-to data-on-change="@get('/sse/dashboard')" min="{{.FromStr}}" max="{{.ToStr}}"/></div>
<div><label for="category">Category</label>
<select id="category" data-bind-category data-on-change="@get('/sse/dashboard')">
<option value="All">All</option>
{{range .Categories}}<option value="{{.}}">{{.}}</option>{{end}}
</select></div>
<div><label for="region">Region</label>
<select id="region" data-bind-region data-on-change="@get('/sse/dashboard')">
<option value="All">All</option>
{{range .Regions}}<option value="{{.}}">{{.}}</option>{{end}}
</select></div>
<div><a data-attr-href="'/api/export?from='+$from+'&to='+$to+'&category='+$category+'&region='+$region">Download CSV of filtered data</a></div>
</section>
<section class="metrics">
<div class="metric"><h3>Total Revenue</h3><p data-text="$summary.total_revenue ?? '0.00'"></p></div>
<div class="metric"><h3>Total Units Sold</h3><p data-text="$summary.total_units ?? 0"></p></div>
<div class="metric"><h3>Avg Revenue / Row</h3><p data-text="$summary.avg_revenue_per_row ?? '0.00'"></p></div>
</section>
<section class="charts">
<div class="chart-card"><h3>Sales Over Time (weekly)</h3><div id="weekly-chart" data-json-signals__include="/weeklyData/"></div></div>
<div class="chart-card"><h3>Top Products by Revenue</h3><div id="products-chart" data-json-signals__include="/productsData/"></div></div>
<div class="chart-card"><h3>Revenue by Region</h3><div id="regions-chart" data-json-signals__include="/regionsData/"></div></div>
</section>
<section>
<h3>Filtered Data</h3>
<div id="sales-table"></div>
</section>
</main>
</body>
</html>`))
