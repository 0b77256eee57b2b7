package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"ecom-dashboard/internal/config"
	"ecom-dashboard/internal/models"
	"ecom-dashboard/internal/services"
)

func newTestSSEHandlers() *SSEHandlers {
	return NewSSEHandlers(createTestAnalytics(), slog.Default())
}

func sseRequest(signals string) *http.Request {
	target := "/sse/dashboard"
	if signals != "" {
		target += "?datastar=" + url.QueryEscape(signals)
	}
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func TestNewSSEHandlers(t *testing.T) {
	h := newTestSSEHandlers()
	if h == nil {
		t.Fatal("NewSSEHandlers() returned nil")
	}
	if h.analytics == nil {
		t.Error("NewSSEHandlers() should set analytics field")
	}
}

func TestSSEHandlers_HandleDashboard(t *testing.T) {
	h := newTestSSEHandlers()

	w := httptest.NewRecorder()
	h.HandleDashboard(w, sseRequest(""))

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
		t.Errorf("expected text/event-stream content type, got %q", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "datastar-patch-signals") {
		t.Error("expected a signals patch in the stream")
	}
	if !strings.Contains(body, "datastar-patch-elements") {
		t.Error("expected an elements patch in the stream")
	}
	if !strings.Contains(body, "sales-table") {
		t.Error("expected the sales table element in the stream")
	}
	if !strings.Contains(body, "Smartwatch") {
		t.Error("expected table rows for the unfiltered dataset")
	}
}

func TestSSEHandlers_HandleDashboard_FilterSignals(t *testing.T) {
	h := newTestSSEHandlers()

	w := httptest.NewRecorder()
	h.HandleDashboard(w, sseRequest(`{"from":"","to":"","category":"Electronics","region":"All"}`))

	body := w.Body.String()
	if !strings.Contains(body, "Smartwatch") {
		t.Error("expected Electronics rows in the table patch")
	}
	if strings.Contains(body, "Backpack") {
		t.Error("Accessories rows must be filtered out")
	}
}

func TestSSEHandlers_HandleDashboard_EmptyResult(t *testing.T) {
	h := newTestSSEHandlers()

	w := httptest.NewRecorder()
	h.HandleDashboard(w, sseRequest(`{"from":"2030-01-01","to":"2030-02-01","category":"All","region":"All"}`))

	body := w.Body.String()
	if !strings.Contains(body, "No data in selected range") {
		t.Error("expected the empty-result warning")
	}
	if strings.Contains(body, "weeklyData") {
		t.Error("chart data must be skipped for an empty result")
	}
}

func TestSSEHandlers_HandleDashboard_NoDataset(t *testing.T) {
	a := services.NewAnalytics(config.DatasetConfig{Months: 1, Seed: 42}, slog.Default())
	a.SetData(models.Dataset{})
	h := NewSSEHandlers(a, slog.Default())

	w := httptest.NewRecorder()
	h.HandleDashboard(w, sseRequest(""))

	if !strings.Contains(w.Body.String(), "No data in selected range") {
		t.Error("expected the empty-result warning for an empty dataset")
	}
}

func TestSSEHandlers_RenderSalesTableTruncates(t *testing.T) {
	h := newTestSSEHandlers()

	var rows models.Dataset
	for i := 0; i < maxTableRows+10; i++ {
		rows = append(rows, models.Sale{
			Date: testDay(1), Product: "Classic Tee", Category: "Apparel",
			Units: 1, Revenue: testDec("15.00"), Region: "North",
		})
	}

	html, err := h.renderSalesTable(services.Result{Rows: rows})
	if err != nil {
		t.Fatalf("renderSalesTable() error: %v", err)
	}
	if !strings.Contains(html, "Showing first 50 rows") {
		t.Error("expected the truncation note for oversized row sets")
	}
	if got := strings.Count(html, "<tr>"); got != maxTableRows+1 {
		t.Errorf("expected %d table rows (plus header), got %d", maxTableRows, got-1)
	}
}
