package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"money/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.ProductType {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string) *models.ProductType {
	t.Helper()

	category := &models.ProductType{
		Name:        name,
		Description: fmt.Sprintf("Description for %s", name),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestItem creates an item with the given price under the given category.
func CreateTestItem(t *testing.T, db *gorm.DB, categoryID *uint, price float64) *models.Item {
	t.Helper()

	item := &models.Item{
		Name:       fmt.Sprintf("Test Item %d", nextID()),
		Price:      price,
		CategoryID: categoryID,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	return item
}

// CreateTestItemAt creates an item with the given price and creation timestamp.
func CreateTestItemAt(t *testing.T, db *gorm.DB, categoryID *uint, price float64, createdAt time.Time) *models.Item {
	t.Helper()

	item := CreateTestItem(t, db, categoryID, price)
	if err := db.Model(item).Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("failed to backdate test item: %v", err)
	}
	item.CreatedAt = createdAt
	return item
}

// SetTestBudget stores the household budget row with the given total.
func SetTestBudget(t *testing.T, db *gorm.DB, total float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Slug:  models.BudgetSlug,
		Total: total,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
