package database

import (
	"testing"

	"moneymap/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestSeedDefaultCategories(t *testing.T) {
	db := testDB(t)
	user := models.User{Username: "alice", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	// seeding twice must not duplicate rows
	for i := 0; i < 2; i++ {
		if err := SeedDefaultCategories(db, user.ID); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	var total, income, expense int64
	db.Model(&models.Category{}).Where("user_id = ?", user.ID).Count(&total)
	db.Model(&models.Category{}).Where("user_id = ? AND type = ?", user.ID, models.TypeIncome).Count(&income)
	db.Model(&models.Category{}).Where("user_id = ? AND type = ?", user.ID, models.TypeExpense).Count(&expense)

	if total != 16 || income != 6 || expense != 10 {
		t.Errorf("got %d categories (%d income, %d expense), want 16 (6, 10)", total, income, expense)
	}
}

func TestSeedDefaultCategories_PerUser(t *testing.T) {
	db := testDB(t)
	var users [2]models.User
	for i := range users {
		users[i] = models.User{Username: "user" + string(rune('a'+i)), PasswordHash: "x"}
		if err := db.Create(&users[i]).Error; err != nil {
			t.Fatalf("create user %d: %v", i, err)
		}
		if err := SeedDefaultCategories(db, users[i].ID); err != nil {
			t.Fatalf("seed user %d: %v", i, err)
		}
	}

	for i := range users {
		var count int64
		db.Model(&models.Category{}).Where("user_id = ?", users[i].ID).Count(&count)
		if count != 16 {
			t.Errorf("user %d has %d categories, want 16", i, count)
		}
	}
}

func TestSeedCurrencies(t *testing.T) {
	db := testDB(t)

	for i := 0; i < 2; i++ {
		if err := SeedCurrencies(db); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	var count int64
	db.Model(&models.Currency{}).Count(&count)
	if count != 5 {
		t.Errorf("got %d currencies, want 5", count)
	}

	var inr models.Currency
	if err := db.Where("code = ?", "INR").First(&inr).Error; err != nil {
		t.Fatalf("load INR: %v", err)
	}
	if inr.Symbol != "₹" {
		t.Errorf("INR symbol = %q, want ₹", inr.Symbol)
	}
}
