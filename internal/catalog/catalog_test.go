package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	products := Products()
	require.Len(t, products, 10)

	seen := make(map[string]bool)
	for _, p := range products {
		assert.False(t, seen[p.Name], "duplicate product %s", p.Name)
		seen[p.Name] = true
		assert.Positive(t, p.Price, "product %s", p.Name)
		assert.NotEmpty(t, p.Category, "product %s", p.Name)
	}

	assert.Equal(t, []string{"Accessories", "Apparel", "Electronics", "Footwear"}, Categories())
}

func TestRegionWeightsSumToOne(t *testing.T) {
	regions := Regions()
	require.Len(t, regions, 4)

	total := 0.0
	for _, r := range regions {
		total += r.Weight
	}
	assert.InDelta(t, 1.0, total, 1e-9)

	assert.Equal(t, []string{"East", "North", "South", "West"}, RegionNames())
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("Smartwatch")
	require.True(t, ok)
	assert.Equal(t, "Electronics", p.Category)
	assert.Equal(t, 95, p.Price)

	assert.Equal(t, "Apparel", CategoryOf("Classic Tee"))
	assert.Equal(t, 15, PriceOf("Classic Tee"))

	_, ok = Lookup("Flying Carpet")
	assert.False(t, ok)
	assert.Empty(t, CategoryOf("Flying Carpet"))
	assert.Zero(t, PriceOf("Flying Carpet"))
}

func TestProductsReturnsCopy(t *testing.T) {
	a := Products()
	a[0].Name = "mutated"
	b := Products()
	assert.Equal(t, "Classic Tee", b[0].Name)
}
