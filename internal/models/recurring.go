package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recurrence frequency values.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

// RecurringTransaction is a schedule template for a repeating income or
// expense. The schema is migrated but nothing materializes rows from it
// yet; LastCreated tracks the most recent materialization once that
// exists.
type RecurringTransaction struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"index;not null"`
	Title       string          `gorm:"size:200;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID  *uint           `gorm:"index"`
	Type        string          `gorm:"size:16;not null"` // income / expense
	Frequency   string          `gorm:"size:20;not null"` // daily / weekly / monthly / yearly
	StartDate   time.Time       `gorm:"not null"`
	EndDate     *time.Time
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true"`
	LastCreated *time.Time

	User     User      `gorm:"constraint:OnDelete:CASCADE"`
	Category *Category `gorm:"constraint:OnDelete:SET NULL"`
}
