package models

// Currency is a lookup row referenced by UserProfile.Currency.
// Seeded once at startup from a fixed list.
type Currency struct {
	ID     uint   `gorm:"primaryKey"`
	Code   string `gorm:"size:3;uniqueIndex;not null"` // INR, USD, ...
	Name   string `gorm:"size:50;not null"`
	Symbol string `gorm:"size:10;not null"`
}
