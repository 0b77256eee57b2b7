package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"ecom-dashboard/internal/buildinfo"
	"ecom-dashboard/internal/errors"
	"ecom-dashboard/internal/export"
	"ecom-dashboard/internal/observability"
	"ecom-dashboard/internal/services"
)

const (
	dateFormat   = "2006-01-02"
	cacheControl = "public, max-age=60"
)

type APIHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewAPIHandlers(analytics *services.Analytics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

// parseFilter builds a pipeline filter from query parameters. Missing
// date bounds default to the dataset's full span; a range outside the
// span is not an error, it just selects nothing.
func (h *APIHandlers) parseFilter(r *http.Request) (services.Filter, error) {
	q := r.URL.Query()

	f := services.Filter{
		Category: q.Get("category"),
		Region:   q.Get("region"),
	}
	if from, to, ok := h.analytics.Span(); ok {
		f.From, f.To = from, to
	}

	if v := q.Get("from"); v != "" {
		t, err := time.Parse(dateFormat, v)
		if err != nil {
			return services.Filter{}, errors.BadRequestWrap(err, "invalid from date, want YYYY-MM-DD")
		}
		f.From = t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(dateFormat, v)
		if err != nil {
			return services.Filter{}, errors.BadRequestWrap(err, "invalid to date, want YYYY-MM-DD")
		}
		f.To = t
	}

	return f, nil
}

func (h *APIHandlers) query(w http.ResponseWriter, r *http.Request) (services.Result, bool) {
	f, err := h.parseFilter(r)
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return services.Result{}, false
	}
	return h.analytics.Query(f), true
}

func (h *APIHandlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	res, ok := h.query(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, map[string]any{
		"summary": res.Summary,
		"empty":   res.Empty(),
	}, map[string]string{"Cache-Control": cacheControl})
}

func (h *APIHandlers) HandleWeeklyRevenue(w http.ResponseWriter, r *http.Request) {
	res, ok := h.query(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, res.Weekly, map[string]string{"Cache-Control": cacheControl})
}

func (h *APIHandlers) HandleTopProducts(w http.ResponseWriter, r *http.Request) {
	res, ok := h.query(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, res.TopProducts, map[string]string{"Cache-Control": cacheControl})
}

func (h *APIHandlers) HandleRevenueByRegion(w http.ResponseWriter, r *http.Request) {
	res, ok := h.query(w, r)
	if !ok {
		return
	}

	errors.WriteSuccessWithHeaders(w, res.ByRegion, map[string]string{"Cache-Control": cacheControl})
}

func (h *APIHandlers) HandleSales(w http.ResponseWriter, r *http.Request) {
	res, ok := h.query(w, r)
	if !ok {
		return
	}

	errors.WriteSuccess(w, res.Rows)
}

// HandleExport streams the filtered rows as a CSV attachment named
// filtered_sales.csv.
func (h *APIHandlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	f, err := h.parseFilter(r)
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}

	res := h.analytics.Query(f)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))

	if err := export.WriteSales(w, res.Rows); err != nil {
		h.logger.Error("write csv export", "error", err,
			"request_id", observability.GetRequestID(r.Context()))
	}
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   buildinfo.Version,
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.analytics.Stats())
}
