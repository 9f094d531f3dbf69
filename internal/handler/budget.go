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

// BudgetHandler serves budget goals and their progress.
type BudgetHandler struct {
	DB *gorm.DB
}

func NewBudgetHandler(db *gorm.DB) *BudgetHandler {
	return &BudgetHandler{DB: db}
}

type goalRow struct {
	Goal       models.BudgetGoal
	Category   string
	Limit      string
	Spent      string
	Remaining  string
	Overspent  bool
	Percentage string
}

// Goals lists the user's budget goals with current-month spending.
func (h *BudgetHandler) Goals(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var goals []models.BudgetGoal
	if err := h.DB.Where("user_id = ?", user.ID).
		Preload("Category").
		Find(&goals).Error; err != nil {
		serverError(c, "could not load budget goals")
		return
	}

	// one scoped load covers every goal's spent computation
	var txs []models.Transaction
	if err := h.DB.Where("user_id = ? AND type = ?", user.ID, models.TypeExpense).
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
	rows := make([]goalRow, 0, len(goals))
	for _, goal := range goals {
		progress := report.Progress(goal.MonthlyLimit, txs, goal.CategoryID, now)
		rows = append(rows, goalRow{
			Goal:       goal,
			Category:   goal.Category.Name,
			Limit:      util.FormatMoney(symbol, goal.MonthlyLimit),
			Spent:      util.FormatMoney(symbol, progress.Spent),
			Remaining:  util.FormatMoney(symbol, progress.Remaining),
			Overspent:  progress.Remaining.IsNegative(),
			Percentage: progress.Percentage.StringFixed(2),
		})
	}

	var expenseCategories []models.Category
	if err := h.DB.Where("user_id = ? AND type = ?", user.ID, models.TypeExpense).
		Order("name").
		Find(&expenseCategories).Error; err != nil {
		serverError(c, "could not load categories")
		return
	}

	msg, errMsg := util.PopFlash(c)
	c.HTML(http.StatusOK, "budget_goals.html", gin.H{
		"title":      "MoneyMap - Budget Goals",
		"message":    msg,
		"error":      errMsg,
		"goals":      rows,
		"categories": expenseCategories,
	})
}

// AddGoal upserts a goal: one goal per (user, category), a second post
// for the same category updates the limit instead of duplicating.
func (h *BudgetHandler) AddGoal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	categoryID, err := strconv.Atoi(c.PostForm("category"))
	if err != nil || categoryID <= 0 {
		notFound(c)
		return
	}

	var category models.Category
	if err := h.DB.Where("id = ? AND user_id = ?", categoryID, user.ID).
		First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			notFound(c)
		} else {
			serverError(c, "could not load category")
		}
		return
	}

	limit, err := util.ParseAmount(c.PostForm("monthly_limit"))
	if err != nil {
		util.FlashError(c, "Enter a valid monthly limit")
		c.Redirect(http.StatusFound, "/budget-goals/")
		return
	}

	var goal models.BudgetGoal
	err = h.DB.Where("user_id = ? AND category_id = ?", user.ID, category.ID).
		First(&goal).Error
	switch {
	case err == nil:
		goal.MonthlyLimit = limit
		err = h.DB.Save(&goal).Error
	case err == gorm.ErrRecordNotFound:
		goal = models.BudgetGoal{UserID: user.ID, CategoryID: category.ID, MonthlyLimit: limit}
		err = h.DB.Create(&goal).Error
	}
	if err != nil {
		serverError(c, "could not save budget goal")
		return
	}

	util.Flash(c, "Budget goal set for "+category.Name+"!")
	c.Redirect(http.StatusFound, "/budget-goals/")
}
