// Package stats computes spending aggregates from the raw item list.
// Every function is pure: nothing here reads the store or caches results,
// so callers recompute from items + budget on each request.
package stats

import (
	"fmt"

	"money/internal/models"
)

// FallbackCategory is the label used for items without a category.
const FallbackCategory = "Autre"

// TotalSpent returns the sum of all item prices.
func TotalSpent(items []models.Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	return total
}

// Remaining returns the budget total minus the amount spent. The result
// may be negative; that is a rendering concern, not an error.
func Remaining(budgetTotal float64, items []models.Item) float64 {
	return budgetTotal - TotalSpent(items)
}

// ByCategory sums prices grouped by the embedded category name. Items
// without a category are grouped under FallbackCategory.
func ByCategory(items []models.Item) map[string]float64 {
	totals := make(map[string]float64)
	for _, item := range items {
		name := FallbackCategory
		if item.Category != nil {
			name = item.Category.Name
		}
		totals[name] += item.Price
	}
	return totals
}

// ByDay sums prices grouped by the date portion (YYYY-MM-DD) of each
// item's creation timestamp.
func ByDay(items []models.Item) map[string]float64 {
	totals := make(map[string]float64)
	for _, item := range items {
		totals[item.CreatedAt.Format("2006-01-02")] += item.Price
	}
	return totals
}

// ByMonth sums prices grouped by month and year of each item's creation
// timestamp, keyed as M/YYYY without zero padding.
func ByMonth(items []models.Item) map[string]float64 {
	totals := make(map[string]float64)
	for _, item := range items {
		key := fmt.Sprintf("%d/%d", int(item.CreatedAt.Month()), item.CreatedAt.Year())
		totals[key] += item.Price
	}
	return totals
}
