package models

import "time"

// Transaction/category type values.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Category represents a user-scoped income/expense label.
type Category struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Name      string    `gorm:"size:100;not null"`
	Type      string    `gorm:"size:16;index;not null"` // income / expense
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
