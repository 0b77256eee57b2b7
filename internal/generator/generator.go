// Package generator synthesizes the fake e-commerce dataset: one batch
// of sales per calendar day across a months*30-day window, every random
// draw taken from a single seeded stream so a given (end, months, seed)
// reproduces the dataset bit for bit.
package generator

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"ecom-dashboard/internal/catalog"
	"ecom-dashboard/internal/models"
)

const (
	daysPerMonth   = 30
	meanDailySales = 8.0
	meanUnits      = 2.0
	minMultiplier  = 0.8
	maxMultiplier  = 1.2
	trendLift      = 0.2
)

// Generate synthesizes the dataset for a window ending today. A
// non-positive months yields an empty dataset, not an error.
func Generate(months int, seed uint64) models.Dataset {
	return GenerateFrom(time.Now(), months, seed)
}

// GenerateFrom synthesizes months*30 consecutive days ending at end
// (normalized to UTC midnight). Per day the sale count is Poisson(8);
// per sale: uniform product, Poisson(2) units floored at 1, uniform
// price multiplier in [0.8, 1.2], a trend factor rising linearly from
// 1.0 to 1.2 across the window, and a weighted region draw.
func GenerateFrom(end time.Time, months int, seed uint64) models.Dataset {
	days := months * daysPerMonth
	if days <= 0 {
		return models.Dataset{}
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	start := midnightUTC(end).AddDate(0, 0, -(days - 1))

	products := catalog.Products()
	regions := catalog.Regions()

	dataset := make(models.Dataset, 0, days*int(meanDailySales))
	for offset := range days {
		date := start.AddDate(0, 0, offset)
		trend := 1 + float64(offset)/float64(days)*trendLift

		for range poisson(rng, meanDailySales) {
			p := products[rng.IntN(len(products))]
			units := max(1, poisson(rng, meanUnits))
			multiplier := minMultiplier + rng.Float64()*(maxMultiplier-minMultiplier)
			amount := float64(units) * float64(p.Price) * multiplier * trend

			dataset = append(dataset, models.Sale{
				Date:     date,
				Product:  p.Name,
				Category: p.Category,
				Units:    units,
				Revenue:  decimal.NewFromFloat(amount).Round(2),
				Region:   pickRegion(rng, regions),
			})
		}
	}
	return dataset
}

// poisson draws from Poisson(lambda) with Knuth's product-of-uniforms
// method, which is exact and fast enough for the small lambdas here.
func poisson(rng *rand.Rand, lambda float64) int {
	threshold := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= threshold {
			return k
		}
		k++
	}
}

func pickRegion(rng *rand.Rand, regions []catalog.Region) string {
	r := rng.Float64()
	for _, reg := range regions {
		r -= reg.Weight
		if r < 0 {
			return reg.Name
		}
	}
	return regions[len(regions)-1].Name
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
