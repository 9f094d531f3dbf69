package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetGoal is a user-set monthly spending ceiling for one category.
// Unique per (user, category); setting a second goal for the same
// category updates the existing row.
type BudgetGoal struct {
	ID           uint            `gorm:"primaryKey"`
	UserID       uint            `gorm:"uniqueIndex:idx_budget_user_category;not null"`
	CategoryID   uint            `gorm:"uniqueIndex:idx_budget_user_category;not null"`
	MonthlyLimit decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User     User     `gorm:"constraint:OnDelete:CASCADE"`
	Category Category `gorm:"constraint:OnDelete:CASCADE"`
}
