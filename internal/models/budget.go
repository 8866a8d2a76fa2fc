package models

import "time"

// BudgetSlug is the well-known key of the single household budget row.
// All reads and writes go through this slug so the singleton invariant is
// enforced by the unique index rather than by "whatever row exists first".
const BudgetSlug = "household"

// Budget represents the household spending ceiling. The table holds at most
// one row, identified by its fixed slug.
type Budget struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"-"`
	Total     float64   `gorm:"not null;default:0" json:"total"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
