package catalog

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
)

// CategoryAll disables category filtering.
const CategoryAll = "All"

type Query struct {
	Category string
	Search   string
	Sort     SortKey
}

// FilterAndSort projects the catalog for display: category and search filters
// first, then ordering. The input slice is never mutated.
func FilterAndSort(products []Product, q Query) []Product {
	search := strings.ToLower(q.Search)

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if q.Category != "" && q.Category != CategoryAll && p.Category != q.Category {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch q.Sort {
	case SortName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortNewest:
		// Missing timestamps sort as the epoch, i.e. oldest.
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	}

	return filtered
}

func matchesSearch(p Product, loweredTerm string) bool {
	return strings.Contains(strings.ToLower(p.Name), loweredTerm) ||
		strings.Contains(strings.ToLower(p.Description), loweredTerm)
}
