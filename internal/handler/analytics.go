package handler

import (
	"net/http"
	"time"

	"moneymap/internal/middleware"
	"moneymap/internal/models"
	"moneymap/internal/report"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AnalyticsHandler serves the trend chart and category breakdown page.
type AnalyticsHandler struct {
	DB *gorm.DB
}

func NewAnalyticsHandler(db *gorm.DB) *AnalyticsHandler {
	return &AnalyticsHandler{DB: db}
}

type trendRow struct {
	Month   string
	Income  string
	Expense string
}

// Analytics renders six trend buckets plus the top five expense
// categories of the current month.
func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var txs []models.Transaction
	if err := h.DB.Where("user_id = ?", user.ID).
		Preload("Category").
		Find(&txs).Error; err != nil {
		serverError(c, "could not load transactions")
		return
	}

	profile, err := loadProfile(h.DB, user.ID)
	if err != nil {
		serverError(c, "could not load profile")
		return
	}
	symbol := currencySymbol(h.DB, profile.Currency)

	now := time.Now()
	trend := make([]trendRow, 0, 6)
	for _, p := range report.SixMonthTrend(txs, now) {
		trend = append(trend, trendRow{
			Month:   p.Label,
			Income:  p.Income.StringFixed(2),
			Expense: p.Expense.StringFixed(2),
		})
	}

	breakdown := report.CategoryBreakdown(report.MonthSubset(txs, now.Year(), now.Month()))
	if len(breakdown) > 5 {
		breakdown = breakdown[:5]
	}
	topCategories := make([]breakdownRow, 0, len(breakdown))
	for _, row := range breakdown {
		name := row.Name
		if name == "" {
			name = "Uncategorized"
		}
		topCategories = append(topCategories, breakdownRow{
			Name:  name,
			Total: util.FormatMoney(symbol, row.Total),
		})
	}

	c.HTML(http.StatusOK, "analytics.html", gin.H{
		"title":         "MoneyMap - Analytics",
		"trend":         trend,
		"topCategories": topCategories,
	})
}
