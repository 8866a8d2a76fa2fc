package database

import (
	"fmt"

	"money/internal/logger"
	"money/internal/models"

	"gorm.io/gorm"
)

// DefaultCategories are the product types created on first startup.
var DefaultCategories = []models.ProductType{
	{Name: "Légumes", Description: "Produits végétaux frais"},
	{Name: "Fruits", Description: "Fruits frais et secs"},
	{Name: "Viandes", Description: "Protéines animales"},
	{Name: "Épicerie", Description: "Produits secs et conserves"},
	{Name: "Boissons", Description: "Boissons et liquides"},
}

// Seed inserts the default categories and the zero-value household budget.
// Every step is find-or-create by natural key, so re-running it leaves
// exactly five default categories and one budget row.
func Seed(db *gorm.DB) error {
	for _, category := range DefaultCategories {
		if err := db.Where(models.ProductType{Name: category.Name}).
			Attrs(models.ProductType{Description: category.Description}).
			FirstOrCreate(&models.ProductType{}).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Name, err)
		}
	}

	if err := db.Where(models.Budget{Slug: models.BudgetSlug}).
		Attrs(models.Budget{Total: 0}).
		FirstOrCreate(&models.Budget{}).Error; err != nil {
		return fmt.Errorf("failed to seed budget: %w", err)
	}

	logger.Get().Info("Default data initialized")
	return nil
}

// Seed seeds the manager's database.
func (m *Manager) Seed() error {
	return Seed(m.db)
}
