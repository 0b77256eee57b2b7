// Package catalog holds the fixed product and region tables the
// generator draws from: 10 products across 4 categories with whole-unit
// prices, and 4 regions with non-uniform pick weights.
package catalog

import (
	"slices"
	"sort"
)

type Product struct {
	Name     string
	Category string
	Price    int
}

type Region struct {
	Name   string
	Weight float64
}

var products = []Product{
	{Name: "Classic Tee", Category: "Apparel", Price: 15},
	{Name: "Sport Sneakers", Category: "Footwear", Price: 75},
	{Name: "Wireless Headset", Category: "Electronics", Price: 45},
	{Name: "Smartwatch", Category: "Electronics", Price: 95},
	{Name: "Backpack", Category: "Accessories", Price: 40},
	{Name: "Running Shorts", Category: "Apparel", Price: 20},
	{Name: "Sunglasses", Category: "Accessories", Price: 25},
	{Name: "Water Bottle", Category: "Accessories", Price: 10},
	{Name: "Phone Case", Category: "Accessories", Price: 12},
	{Name: "Bluetooth Speaker", Category: "Electronics", Price: 55},
}

// Weights sum to 1.0.
var regions = []Region{
	{Name: "North", Weight: 0.30},
	{Name: "South", Weight: 0.25},
	{Name: "East", Weight: 0.20},
	{Name: "West", Weight: 0.25},
}

var byName = func() map[string]Product {
	m := make(map[string]Product, len(products))
	for _, p := range products {
		m[p.Name] = p
	}
	return m
}()

// Products returns the catalog in its fixed order.
func Products() []Product {
	return slices.Clone(products)
}

// Regions returns the region table in its fixed draw order.
func Regions() []Region {
	return slices.Clone(regions)
}

// Lookup returns the catalog entry for a product name.
func Lookup(name string) (Product, bool) {
	p, ok := byName[name]
	return p, ok
}

// CategoryOf returns the fixed category of a product, or "" if the
// product is not in the catalog.
func CategoryOf(name string) string {
	return byName[name].Category
}

// PriceOf returns the fixed unit price of a product, or 0 if the
// product is not in the catalog.
func PriceOf(name string) int {
	return byName[name].Price
}

// Categories returns the distinct category names, sorted.
func Categories() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			names = append(names, p.Category)
		}
	}
	sort.Strings(names)
	return names
}

// RegionNames returns the region names, sorted.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for _, r := range regions {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}
