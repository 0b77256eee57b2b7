package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one synthesized sale event. Category is always the catalog
// category of Product, never assigned independently.
type Sale struct {
	Date     time.Time       `json:"date"`
	Product  string          `json:"product"`
	Category string          `json:"category"`
	Units    int             `json:"units"`
	Revenue  decimal.Decimal `json:"revenue"`
	Region   string          `json:"region"`
}

// Dataset is the ordered collection of sales for one generation
// window. It is written once by the generator and read-only afterwards.
type Dataset []Sale

// Span returns the first and last sale dates. ok is false when the
// dataset is empty.
func (d Dataset) Span() (from, to time.Time, ok bool) {
	if len(d) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return d[0].Date, d[len(d)-1].Date, true
}

type Summary struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalUnits       int             `json:"total_units"`
	AvgRevenuePerRow decimal.Decimal `json:"avg_revenue_per_row"`
	Rows             int             `json:"rows"`
}

type WeeklyRevenue struct {
	WeekStart time.Time       `json:"week_start"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type ProductRevenue struct {
	Product  string          `json:"product"`
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
	Units    int             `json:"units"`
}

type RegionRevenue struct {
	Region  string          `json:"region"`
	Revenue decimal.Decimal `json:"revenue"`
	Units   int             `json:"units"`
}
