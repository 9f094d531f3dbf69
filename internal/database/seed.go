package database

import (
	"fmt"

	"moneymap/internal/models"

	"gorm.io/gorm"
)

// defaultCategories is the fixed set created for every new user:
// 6 income and 10 expense categories.
var defaultCategories = []struct {
	Name string
	Type string
}{
	{"Salary", models.TypeIncome},
	{"Freelance", models.TypeIncome},
	{"Investment Returns", models.TypeIncome},
	{"Business", models.TypeIncome},
	{"Gift", models.TypeIncome},
	{"Other Income", models.TypeIncome},
	{"Food & Dining", models.TypeExpense},
	{"Transportation", models.TypeExpense},
	{"Shopping", models.TypeExpense},
	{"Entertainment", models.TypeExpense},
	{"Bills & Utilities", models.TypeExpense},
	{"Healthcare", models.TypeExpense},
	{"Education", models.TypeExpense},
	{"Rent", models.TypeExpense},
	{"Groceries", models.TypeExpense},
	{"Other Expense", models.TypeExpense},
}

// defaultCurrencies is the fixed lookup table seeded at startup.
var defaultCurrencies = []models.Currency{
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
}

// SeedDefaultCategories creates the default category set for one user.
// Keyed by (user, name, type), so re-running never duplicates rows.
func SeedDefaultCategories(db *gorm.DB, userID uint) error {
	for _, dc := range defaultCategories {
		cat := models.Category{UserID: userID, Name: dc.Name, Type: dc.Type}
		if err := db.
			Where("user_id = ? AND name = ? AND type = ?", userID, dc.Name, dc.Type).
			FirstOrCreate(&cat).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", dc.Name, err)
		}
	}
	return nil
}

// SeedCurrencies populates the currency lookup table if absent.
// Keyed by code; safe to re-run.
func SeedCurrencies(db *gorm.DB) error {
	for _, dc := range defaultCurrencies {
		cur := dc
		if err := db.
			Where("code = ?", dc.Code).
			FirstOrCreate(&cur).Error; err != nil {
			return fmt.Errorf("seed currency %s: %w", dc.Code, err)
		}
	}
	return nil
}
