package services

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ecom-dashboard/internal/models"
)

// FilterAll disables a category or region restriction. An empty string
// means the same thing.
const FilterAll = "All"

const topProductsLimit = 10

// Filter is one user selection: an inclusive date range plus exact
// category and region matches. Zero date bounds are treated as open.
type Filter struct {
	From     time.Time
	To       time.Time
	Category string
	Region   string
}

// Result is everything the dashboard renders for one filter selection.
type Result struct {
	Rows        models.Dataset          `json:"rows"`
	Summary     models.Summary          `json:"summary"`
	Weekly      []models.WeeklyRevenue  `json:"weekly_revenue"`
	TopProducts []models.ProductRevenue `json:"top_products"`
	ByRegion    []models.RegionRevenue  `json:"revenue_by_region"`
}

// Empty reports whether the filters matched no rows. The weekly series
// carries the signal; callers skip chart rendering when it is empty.
func (r Result) Empty() bool { return len(r.Weekly) == 0 }

// Apply filters the dataset and derives the summary, the weekly revenue
// series, the top products, and the per-region totals in one pass over
// the filtered rows. It is a pure function of its inputs.
func Apply(dataset models.Dataset, f Filter) Result {
	rows := filterRows(dataset, f)

	summary := models.Summary{
		TotalRevenue:     decimal.Zero,
		AvgRevenuePerRow: decimal.Zero,
		Rows:             len(rows),
	}

	anchor := earliestDate(rows)
	weeks := make(map[int]decimal.Decimal)
	maxWeek := 0

	productGroups := make(map[string]*models.ProductRevenue)
	productOrder := make([]string, 0)
	regionGroups := make(map[string]*models.RegionRevenue)

	for _, s := range rows {
		summary.TotalRevenue = summary.TotalRevenue.Add(s.Revenue)
		summary.TotalUnits += s.Units

		week := int(s.Date.Sub(anchor).Hours()) / (24 * 7)
		weeks[week] = weeks[week].Add(s.Revenue)
		maxWeek = max(maxWeek, week)

		p := productGroups[s.Product]
		if p == nil {
			p = &models.ProductRevenue{Product: s.Product, Category: s.Category}
			productGroups[s.Product] = p
			productOrder = append(productOrder, s.Product)
		}
		p.Revenue = p.Revenue.Add(s.Revenue)
		p.Units += s.Units

		reg := regionGroups[s.Region]
		if reg == nil {
			reg = &models.RegionRevenue{Region: s.Region}
			regionGroups[s.Region] = reg
		}
		reg.Revenue = reg.Revenue.Add(s.Revenue)
		reg.Units += s.Units
	}

	// Row count is treated as 1 for the empty set, yielding a zero
	// average instead of a division error.
	divisor := int64(max(len(rows), 1))
	summary.AvgRevenuePerRow = summary.TotalRevenue.Div(decimal.NewFromInt(divisor)).Round(2)

	return Result{
		Rows:        rows,
		Summary:     summary,
		Weekly:      weeklySeries(rows, weeks, anchor, maxWeek),
		TopProducts: topProducts(productGroups, productOrder),
		ByRegion:    sortRegions(regionGroups),
	}
}

func unrestricted(s string) bool {
	return s == "" || s == FilterAll
}

func filterRows(dataset models.Dataset, f Filter) models.Dataset {
	rows := make(models.Dataset, 0, len(dataset))
	for _, s := range dataset {
		if !f.From.IsZero() && s.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && s.Date.After(f.To) {
			continue
		}
		if !unrestricted(f.Category) && s.Category != f.Category {
			continue
		}
		if !unrestricted(f.Region) && s.Region != f.Region {
			continue
		}
		rows = append(rows, s)
	}
	return rows
}

func earliestDate(rows models.Dataset) time.Time {
	var earliest time.Time
	for _, s := range rows {
		if earliest.IsZero() || s.Date.Before(earliest) {
			earliest = s.Date
		}
	}
	return earliest
}

// weeklySeries buckets revenue into consecutive 7-day windows anchored
// at the earliest filtered date, in chronological order. Windows with
// no sales still appear with zero revenue.
func weeklySeries(rows models.Dataset, weeks map[int]decimal.Decimal, anchor time.Time, maxWeek int) []models.WeeklyRevenue {
	if len(rows) == 0 {
		return []models.WeeklyRevenue{}
	}

	series := make([]models.WeeklyRevenue, 0, maxWeek+1)
	for w := 0; w <= maxWeek; w++ {
		revenue, ok := weeks[w]
		if !ok {
			revenue = decimal.Zero
		}
		series = append(series, models.WeeklyRevenue{
			WeekStart: anchor.AddDate(0, 0, 7*w),
			Revenue:   revenue,
		})
	}
	return series
}

// topProducts sorts grouped products by revenue descending, ties kept
// stable in first-encountered order, capped at 10.
func topProducts(groups map[string]*models.ProductRevenue, order []string) []models.ProductRevenue {
	result := make([]models.ProductRevenue, 0, len(order))
	for _, name := range order {
		result = append(result, *groups[name])
	}
	slices.SortStableFunc(result, func(a, b models.ProductRevenue) int {
		return b.Revenue.Cmp(a.Revenue)
	})
	if len(result) > topProductsLimit {
		result = result[:topProductsLimit]
	}
	return result
}

func sortRegions(groups map[string]*models.RegionRevenue) []models.RegionRevenue {
	result := make([]models.RegionRevenue, 0, len(groups))
	for _, rr := range groups {
		result = append(result, *rr)
	}
	slices.SortFunc(result, func(a, b models.RegionRevenue) int {
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}
		return strings.Compare(a.Region, b.Region)
	})
	return result
}
