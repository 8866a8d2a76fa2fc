package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "money/internal/errors"
	"money/internal/models"
)

// itemService handles item-related business logic.
type itemService struct {
	db *gorm.DB
}

// NewItemService creates a new ItemServicer.
func NewItemService(db *gorm.DB) ItemServicer {
	return &itemService{db: db}
}

// CreateItem records a purchase, then re-reads it with its category joined
// so the returned shape matches what the list endpoint serves.
func (s *itemService) CreateItem(name string, price float64, categoryID uint) (*models.Item, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "item name is required")
	}

	var category models.ProductType
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "categoryId does not reference an existing category")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	item := &models.Item{
		Name:       name,
		Price:      price,
		CategoryID: &categoryID,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetItemByID(item.ID)
}

// GetItems retrieves all items with their categories eagerly loaded.
func (s *itemService) GetItems() ([]models.Item, error) {
	items := []models.Item{}
	if err := s.db.Preload("Category").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}

// GetItemByID retrieves a single item with its category eagerly loaded.
func (s *itemService) GetItemByID(itemID uint) (*models.Item, error) {
	var item models.Item
	if err := s.db.Preload("Category").First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}

// DeleteItem deletes an item by ID. Deleting an absent ID is a no-op, so
// the operation is idempotent.
func (s *itemService) DeleteItem(itemID uint) error {
	if err := s.db.Delete(&models.Item{}, itemID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
