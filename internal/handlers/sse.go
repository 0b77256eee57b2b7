package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/starfederation/datastar-go/datastar"

	"ecom-dashboard/internal/services"
)

const maxTableRows = 50

var salesTableTemplate = template.Must(template.New("salesTable").Parse(`
<div id="sales-table">
<table class="modern-table">
<thead><tr><th>Date</th><th>Product</th><th>Category</th><th>Units Sold</th><th>Revenue</th><th>Region</th></tr></thead>
<tbody>
{{range .Rows}}<tr>
<td>{{.Date.Format "2006-01-02"}}</td>
<td>{{.Product}}</td>
<td><span class="category-badge">{{.Category}}</span></td>
<td>{{.Units}}</td>
<td><strong>{{.Revenue.StringFixed 2}}</strong></td>
<td>{{.Region}}</td>
</tr>{{end}}
</tbody>
</table>
{{if .Truncated}}<p class="table-note">Showing first {{.MaxRows}} rows. Use the CSV export for the full set.</p>{{end}}
</div>`))

const emptyResultHTML = `<div id="sales-table"><div class="empty-warning">No data in selected range / filters. Try expanding the date range.</div></div>`

type SSEHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewSSEHandlers(analytics *services.Analytics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

// filterSignals mirrors the Datastar signals the dashboard page binds
// its filter controls to.
type filterSignals struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Category string `json:"category"`
	Region   string `json:"region"`
}

func (h *SSEHandlers) filterFromSignals(r *http.Request) services.Filter {
	signals := &filterSignals{}
	if err := datastar.ReadSignals(r, signals); err != nil {
		h.logger.Warn("read filter signals", "error", err)
	}

	f := services.Filter{
		Category: signals.Category,
		Region:   signals.Region,
	}
	if from, to, ok := h.analytics.Span(); ok {
		f.From, f.To = from, to
	}

	if t, err := time.Parse(dateFormat, signals.From); err == nil {
		f.From = t
	}
	if t, err := time.Parse(dateFormat, signals.To); err == nil {
		f.To = t
	}
	return f
}

type tableData struct {
	Rows      any
	Truncated bool
	MaxRows   int
}

func (h *SSEHandlers) renderSalesTable(res services.Result) (string, error) {
	rows := res.Rows
	truncated := false
	if len(rows) > maxTableRows {
		rows = rows[:maxTableRows]
		truncated = true
	}

	var buf strings.Builder
	err := salesTableTemplate.Execute(&buf, tableData{
		Rows:      rows,
		Truncated: truncated,
		MaxRows:   maxTableRows,
	})
	return buf.String(), err
}

// HandleDashboard recomputes the whole dashboard for the current filter
// signals and patches metrics, chart data, and the table in one event
// stream. An empty result short-circuits to the warning element and
// skips chart data entirely.
func (h *SSEHandlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	f := h.filterFromSignals(r)
	res := h.analytics.Query(f)

	if res.Empty() {
		empty, err := json.Marshal(map[string]any{"empty": true})
		if err != nil {
			h.logger.Error("marshal empty signal", "error", err)
			return
		}
		sse.PatchSignals(empty)
		sse.PatchElements(emptyResultHTML)

		if fl, ok := w.(http.Flusher); ok {
			fl.Flush()
		}
		return
	}

	signals, err := json.Marshal(map[string]any{
		"empty":        false,
		"summary":      res.Summary,
		"weeklyData":   res.Weekly,
		"productsData": res.TopProducts,
		"regionsData":  res.ByRegion,
	})
	if err != nil {
		h.logger.Error("marshal dashboard signals", "error", err)
		return
	}
	sse.PatchSignals(signals)

	html, err := h.renderSalesTable(res)
	if err != nil {
		h.logger.Error("render sales table", "error", err)
		return
	}
	sse.PatchElements(html)

	if fl, ok := w.(http.Flusher); ok {
		fl.Flush()
	}
}
