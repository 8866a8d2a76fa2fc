package models

import "time"

// ProductType is a named grouping for purchased items (a category in the
// client's vocabulary). Names are unique across the whole table.
type ProductType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relationships
	Items []Item `gorm:"foreignKey:CategoryID" json:"-"`
}

// TableName keeps the table name aligned with the migration files.
func (ProductType) TableName() string { return "product_types" }
