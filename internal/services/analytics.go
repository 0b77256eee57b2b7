package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ecom-dashboard/internal/config"
	"ecom-dashboard/internal/generator"
	"ecom-dashboard/internal/models"
)

// Analytics owns the memoized dataset and answers filter queries. The
// dataset is generated once per (months, seed) and never mutated, so
// queries need no locking beyond the load guard.
type Analytics struct {
	cfg    config.DatasetConfig
	cache  *generator.Cache
	logger *slog.Logger

	mu       sync.RWMutex
	dataset  models.Dataset
	loadedAt time.Time
}

func NewAnalytics(cfg config.DatasetConfig, logger *slog.Logger) *Analytics {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analytics{
		cfg:    cfg,
		cache:  generator.NewCache(),
		logger: logger,
	}
}

// Load synthesizes (or reuses) the dataset for the configured window.
func (a *Analytics) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	ds := a.cache.Get(a.cfg.Months, a.cfg.Seed)

	a.mu.Lock()
	a.dataset = ds
	a.loadedAt = time.Now()
	a.mu.Unlock()

	a.logger.Info("dataset ready",
		"months", a.cfg.Months,
		"seed", a.cfg.Seed,
		"rows", len(ds),
		"duration", time.Since(start),
	)
	return nil
}

// SetData replaces the dataset directly; used by tests.
func (a *Analytics) SetData(ds models.Dataset) {
	a.mu.Lock()
	a.dataset = ds
	a.loadedAt = time.Now()
	a.mu.Unlock()
}

func (a *Analytics) Dataset() models.Dataset {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.dataset
}

// Query runs the filter and aggregation pipeline over the dataset.
func (a *Analytics) Query(f Filter) Result {
	return Apply(a.Dataset(), f)
}

// Span reports the dataset's date bounds for the filter controls.
func (a *Analytics) Span() (from, to time.Time, ok bool) {
	return a.Dataset().Span()
}

// Stats is the payload for the admin endpoint.
func (a *Analytics) Stats() map[string]any {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return map[string]any{
		"rows":      len(a.dataset),
		"months":    a.cfg.Months,
		"seed":      a.cfg.Seed,
		"loaded_at": a.loadedAt,
		"datasets":  a.cache.Len(),
	}
}
