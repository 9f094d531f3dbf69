package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents application user.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"size:64;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	LastLoginAt *time.Time
	LastLoginIP string `gorm:"size:64"`
}

// UserProfile holds per-user settings: monthly income baseline and
// preferred currency code. Exactly one profile per user, created in the
// same transaction as the user itself.
type UserProfile struct {
	ID            uint            `gorm:"primaryKey"`
	UserID        uint            `gorm:"uniqueIndex;not null"`
	MonthlyIncome decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Currency      string          `gorm:"size:3;not null;default:INR"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
