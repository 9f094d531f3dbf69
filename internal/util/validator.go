package util

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"moneymap/internal/models"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// ParseAmount parses a form amount into a two-decimal value.
// The amount must be positive and below the 10M ceiling.
func ParseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", d)
	}
	if d.GreaterThanOrEqual(decimal.NewFromInt(10_000_000)) {
		return decimal.Zero, fmt.Errorf("amount too large, got %s", d)
	}
	return d.Round(2), nil
}

// ParseDate parses a YYYY-MM-DD form date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	return t, nil
}

// ValidateUsername checks: 3-20 characters, letters/digits/underscore only.
func ValidateUsername(name string) error {
	if !usernameRe.MatchString(name) {
		return fmt.Errorf("username must be 3-20 letters, digits or underscores")
	}
	return nil
}

// ValidateType checks a transaction/category type value.
func ValidateType(t string) error {
	if t != models.TypeIncome && t != models.TypeExpense {
		return fmt.Errorf("type must be income or expense, got %q", t)
	}
	return nil
}

// ValidateCategoryName checks a category name (non-empty, sane length).
func ValidateCategoryName(name string) error {
	if name == "" {
		return fmt.Errorf("category name is empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("category name too long, max 100 characters")
	}
	return nil
}
