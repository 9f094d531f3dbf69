package handler

import (
	"net/http"

	"moneymap/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// notFound renders the shared 404 page. Rows the user does not own get
// the same answer as rows that do not exist.
func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"title": "MoneyMap - Not Found",
	})
}

func serverError(c *gin.Context, msg string) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"title": "MoneyMap - Error",
		"error": msg,
	})
}

// loadProfile fetches the user's profile, which registration guarantees
// to exist.
func loadProfile(db *gorm.DB, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// currencySymbol resolves a currency code to its display symbol,
// falling back to the code itself for unknown entries.
func currencySymbol(db *gorm.DB, code string) string {
	var cur models.Currency
	if err := db.Where("code = ?", code).First(&cur).Error; err != nil {
		return code
	}
	return cur.Symbol
}
