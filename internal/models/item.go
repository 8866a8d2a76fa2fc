package models

import "time"

// Item is a single recorded purchase. CategoryID is nullable at the schema
// level; an item whose category was removed out of band serializes with a
// null category rather than failing.
type Item struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Price      float64   `gorm:"not null" json:"price"`
	CategoryID *uint     `gorm:"index" json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Relationships
	Category *ProductType `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
}
