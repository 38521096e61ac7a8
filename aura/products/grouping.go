package products

import (
	"slices"
	"strings"
)

// allowed attribute values for the current catalog
var (
	validCategories = []string{"t-shirt", "hoodie"}
	validColors     = []string{"black", "white"}
	validSizes      = []string{"S", "M", "L", "XL"}
)

// lowercases a category and reports whether it is sellable
func NormalizeCategory(category string) (string, bool) {
	normalized := strings.ToLower(category)
	return normalized, slices.Contains(validCategories, normalized)
}

// lowercases a color and reports whether it is sellable
func NormalizeColor(color string) (string, bool) {
	normalized := strings.ToLower(color)
	return normalized, slices.Contains(validColors, normalized)
}

// uppercases a size and reports whether it is sellable
func NormalizeSize(size string) (string, bool) {
	normalized := strings.ToUpper(size)
	return normalized, slices.Contains(validSizes, normalized)
}

type groupKey struct {
	name     string
	color    string
	category string
}

// GroupProducts collapses size variants into one row per
// (name, color, category), keeping the first row of each group and the input
// order of groups. Option sets are left for the caller to attach, since the
// input may be a page rather than the whole catalog.
func GroupProducts(list []Product) []Product {
	var grouped []Product
	seen := map[groupKey]bool{}

	for _, p := range list {
		key := groupKey{name: p.Name, color: p.Color, category: p.Category}
		if seen[key] {
			continue
		}

		seen[key] = true
		grouped = append(grouped, p)
	}

	return grouped
}
