package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecom-dashboard/internal/catalog"
)

var testEnd = time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)

func TestGenerateFromDeterminism(t *testing.T) {
	a := GenerateFrom(testEnd, 1, 42)
	b := GenerateFrom(testEnd, 1, 42)

	require.NotEmpty(t, a)
	require.Equal(t, len(a), len(b))
	assert.Equal(t, a, b, "same (end, months, seed) must reproduce the dataset exactly")
}

func TestGenerateDeterminismWithinProcess(t *testing.T) {
	a := Generate(1, 42)
	b := Generate(1, 42)
	assert.Equal(t, a, b)
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := GenerateFrom(testEnd, 1, 42)
	b := GenerateFrom(testEnd, 1, 7)
	assert.NotEqual(t, a, b)
}

func TestGenerateInvariants(t *testing.T) {
	ds := GenerateFrom(testEnd, 2, 42)
	require.NotEmpty(t, ds)

	regions := make(map[string]bool)
	for _, r := range catalog.Regions() {
		regions[r.Name] = true
	}

	start := testEnd.AddDate(0, 0, -(2*30 - 1))
	prev := time.Time{}
	for i, s := range ds {
		assert.GreaterOrEqual(t, s.Units, 1, "row %d", i)
		assert.True(t, s.Revenue.Sign() > 0, "row %d revenue %s", i, s.Revenue)
		assert.True(t, s.Revenue.Equal(s.Revenue.Round(2)), "row %d revenue %s not rounded to 2dp", i, s.Revenue)

		p, ok := catalog.Lookup(s.Product)
		require.True(t, ok, "row %d unknown product %s", i, s.Product)
		assert.Equal(t, p.Category, s.Category, "row %d", i)
		assert.True(t, regions[s.Region], "row %d unknown region %s", i, s.Region)

		assert.False(t, s.Date.Before(start), "row %d date before window", i)
		assert.False(t, s.Date.After(testEnd), "row %d date after window", i)
		assert.False(t, s.Date.Before(prev), "rows must stay chronological")
		prev = s.Date
	}
}

func TestGenerateRowCountScale(t *testing.T) {
	// 30 days at a mean of 8 sales per day; a wide band keeps the
	// assertion seed-independent.
	ds := GenerateFrom(testEnd, 1, 42)
	assert.Greater(t, len(ds), 120)
	assert.Less(t, len(ds), 400)
}

func TestGenerateDegenerateWindow(t *testing.T) {
	assert.Empty(t, GenerateFrom(testEnd, 0, 42))
	assert.Empty(t, GenerateFrom(testEnd, -3, 42))
}

func TestPoissonBounds(t *testing.T) {
	ds := GenerateFrom(testEnd, 1, 1)
	for _, s := range ds {
		// Units are Poisson(2) floored at 1; anything above 20 would
		// mean the sampler is broken.
		assert.Less(t, s.Units, 20)
	}
}
