package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "money/internal/errors"
	"money/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetBudget returns the household budget row, or nil if none has been
// stored yet. Reading never creates the row.
func (s *budgetService) GetBudget() (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("slug = ?", models.BudgetSlug).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// SetBudget updates the household budget total in place, creating the row
// on first write. Concurrent writers are resolved by last write wins.
func (s *budgetService) SetBudget(total float64) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.Where("slug = ?", models.BudgetSlug).First(&budget).Error
	switch {
	case err == nil:
		if err := s.db.Model(&budget).Update("total", total).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		budget = models.Budget{Slug: models.BudgetSlug, Total: total}
		if err := s.db.Create(&budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}
