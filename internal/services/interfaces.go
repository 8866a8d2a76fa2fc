package services

import (
	"money/internal/models"
)

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	GetBudget() (*models.Budget, error)
	SetBudget(total float64) (*models.Budget, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name, description string) (*models.ProductType, error)
	GetCategories() ([]models.ProductType, error)
	GetCategoryByID(categoryID uint) (*models.ProductType, error)
	DeleteCategory(categoryID uint) error
}

// ItemServicer defines the contract for item-related business logic.
type ItemServicer interface {
	CreateItem(name string, price float64, categoryID uint) (*models.Item, error)
	GetItems() ([]models.Item, error)
	GetItemByID(itemID uint) (*models.Item, error)
	DeleteItem(itemID uint) error
}
