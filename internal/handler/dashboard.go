package handler

import (
	"net/http"
	"strconv"
	"time"

	"moneymap/internal/middleware"
	"moneymap/internal/models"
	"moneymap/internal/report"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardHandler serves the main listing plus its summary figures.
type DashboardHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewDashboardHandler(db *gorm.DB, pageSize int) *DashboardHandler {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &DashboardHandler{DB: db, PageSize: pageSize}
}

type breakdownRow struct {
	Name  string
	Total string
}

// Dashboard renders the transaction listing with optional filters and
// the monthly summary. The listing filters (category, type, search) are
// conjunctive and independent of the month/year pair, which only scopes
// the summary figures.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	now := time.Now()

	// summary scope: month/year params default to the current month
	month := int(now.Month())
	if v := c.Query("month"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	year := now.Year()
	if v := c.Query("year"); v != "" {
		if y, err := strconv.Atoi(v); err == nil && y > 0 {
			year = y
		}
	}

	// listing filters, all optional, AND-combined
	categoryFilter := c.Query("category")
	typeFilter := c.Query("type")
	if typeFilter != models.TypeIncome && typeFilter != models.TypeExpense {
		typeFilter = ""
	}
	search := c.Query("search")

	listing := h.DB.Model(&models.Transaction{}).Where("user_id = ?", user.ID)
	if categoryFilter != "" {
		listing = listing.Where("category_id = ?", categoryFilter)
	}
	if typeFilter != "" {
		listing = listing.Where("type = ?", typeFilter)
	}
	if search != "" {
		// substring match on title OR description, case-insensitive
		pattern := "%" + search + "%"
		listing = listing.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := listing.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		serverError(c, "could not load transactions")
		return
	}

	totalPages := int((total + int64(h.PageSize) - 1) / int64(h.PageSize))
	page := 1
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	var transactions []models.Transaction
	if err := listing.Session(&gorm.Session{}).
		Preload("Category").
		Order("date DESC, created_at DESC").
		Limit(h.PageSize).
		Offset((page - 1) * h.PageSize).
		Find(&transactions).Error; err != nil {
		serverError(c, "could not load transactions")
		return
	}

	// summary figures are computed over the user's full set, not the
	// filtered listing
	var all []models.Transaction
	if err := h.DB.Where("user_id = ?", user.ID).
		Preload("Category").
		Find(&all).Error; err != nil {
		serverError(c, "could not load transactions")
		return
	}

	profile, err := loadProfile(h.DB, user.ID)
	if err != nil {
		serverError(c, "could not load profile")
		return
	}
	symbol := currencySymbol(h.DB, profile.Currency)

	monthSubset := report.MonthSubset(all, year, time.Month(month))
	totalIncome := report.TotalByType(all, models.TypeIncome)
	totalExpense := report.TotalByType(all, models.TypeExpense)
	monthlyExpense := report.TotalByType(monthSubset, models.TypeExpense)
	balance := report.Balance(profile.MonthlyIncome, monthlyExpense)
	expensePct := report.ExpensePercentage(monthlyExpense, profile.MonthlyIncome)

	breakdown := make([]breakdownRow, 0)
	for _, row := range report.CategoryBreakdown(monthSubset) {
		name := row.Name
		if name == "" {
			name = "Uncategorized"
		}
		breakdown = append(breakdown, breakdownRow{
			Name:  name,
			Total: util.FormatMoney(symbol, row.Total),
		})
	}

	var categories []models.Category
	if err := h.DB.Where("user_id = ?", user.ID).Order("type, name").Find(&categories).Error; err != nil {
		serverError(c, "could not load categories")
		return
	}

	years := make([]int, 0, 3)
	for y := now.Year() - 2; y <= now.Year(); y++ {
		years = append(years, y)
	}

	msg, errMsg := util.PopFlash(c)
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":             "MoneyMap - Dashboard",
		"message":           msg,
		"error":             errMsg,
		"transactions":      transactions,
		"page":              page,
		"totalPages":        totalPages,
		"total":             total,
		"symbol":            symbol,
		"totalIncome":       util.FormatMoney(symbol, totalIncome),
		"totalExpense":      util.FormatMoney(symbol, totalExpense),
		"monthlyIncome":     util.FormatMoney(symbol, profile.MonthlyIncome),
		"monthlyExpense":    util.FormatMoney(symbol, monthlyExpense),
		"balance":           util.FormatMoney(symbol, balance),
		"expensePercentage": expensePct.StringFixed(2),
		"breakdown":         breakdown,
		"categories":        categories,
		"selectedMonth":     month,
		"selectedYear":      year,
		"selectedCategory":  categoryFilter,
		"selectedType":      typeFilter,
		"searchQuery":       search,
		"years":             years,
	})
}
