package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense record.
// Amounts are decimals with two fractional digits; positive by convention.
type Transaction struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"index;not null"`
	Title       string          `gorm:"size:200;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID  *uint           `gorm:"index"` // nil when the category was deleted
	Type        string          `gorm:"size:16;index;not null"` // income / expense
	Date        time.Time       `gorm:"index;not null"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time

	User     User      `gorm:"constraint:OnDelete:CASCADE"`
	Category *Category `gorm:"constraint:OnDelete:SET NULL"`
}
