package handler

import (
	"net/http"
	"strings"

	"moneymap/internal/middleware"
	"moneymap/internal/models"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProfileHandler serves income setup and profile settings.
type ProfileHandler struct {
	DB *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{DB: db}
}

// SetIncomeForm renders the income setup page.
func (h *ProfileHandler) SetIncomeForm(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	profile, err := loadProfile(h.DB, user.ID)
	if err != nil {
		serverError(c, "could not load profile")
		return
	}
	msg, errMsg := util.PopFlash(c)
	c.HTML(http.StatusOK, "set_income.html", gin.H{
		"title":   "MoneyMap - Set Income",
		"message": msg,
		"error":   errMsg,
		"profile": profile,
	})
}

// SetIncome updates the monthly income baseline. Non-numeric input
// redisplays the page with a message and mutates nothing.
func (h *ProfileHandler) SetIncome(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	profile, err := loadProfile(h.DB, user.ID)
	if err != nil {
		serverError(c, "could not load profile")
		return
	}

	income, err := util.ParseAmount(strings.TrimSpace(c.PostForm("monthly_income")))
	if err != nil {
		c.HTML(http.StatusBadRequest, "set_income.html", gin.H{
			"title":   "MoneyMap - Set Income",
			"error":   "Please enter a valid amount",
			"profile": profile,
		})
		return
	}

	if err := h.DB.Model(profile).Update("monthly_income", income).Error; err != nil {
		serverError(c, "could not update profile")
		return
	}

	util.Flash(c, "Monthly income updated successfully!")
	c.Redirect(http.StatusFound, "/dashboard/")
}

// SettingsForm renders profile settings with the currency choices.
func (h *ProfileHandler) SettingsForm(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	profile, err := loadProfile(h.DB, user.ID)
	if err != nil {
		serverError(c, "could not load profile")
		return
	}

	var currencies []models.Currency
	if err := h.DB.Order("code").Find(&currencies).Error; err != nil {
		serverError(c, "could not load currencies")
		return
	}

	msg, errMsg := util.PopFlash(c)
	c.HTML(http.StatusOK, "profile_settings.html", gin.H{
		"title":      "MoneyMap - Profile Settings",
		"message":    msg,
		"error":      errMsg,
		"profile":    profile,
		"currencies": currencies,
	})
}

// UpdateSettings saves monthly income and/or preferred currency. Both
// fields are optional; the currency must be one of the seeded codes.
func (h *ProfileHandler) UpdateSettings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	profile, err := loadProfile(h.DB, user.ID)
	if err != nil {
		serverError(c, "could not load profile")
		return
	}

	updates := map[string]interface{}{}

	if v := strings.TrimSpace(c.PostForm("monthly_income")); v != "" {
		income, err := util.ParseAmount(v)
		if err != nil {
			util.FlashError(c, "Please enter a valid amount")
			c.Redirect(http.StatusFound, "/profile-settings/")
			return
		}
		updates["monthly_income"] = income
	}

	if code := strings.TrimSpace(c.PostForm("currency")); code != "" {
		var cur models.Currency
		if err := h.DB.Where("code = ?", code).First(&cur).Error; err != nil {
			util.FlashError(c, "Unknown currency")
			c.Redirect(http.StatusFound, "/profile-settings/")
			return
		}
		updates["currency"] = cur.Code
	}

	if len(updates) > 0 {
		if err := h.DB.Model(profile).Updates(updates).Error; err != nil {
			serverError(c, "could not update profile")
			return
		}
	}

	util.Flash(c, "Profile updated successfully!")
	c.Redirect(http.StatusFound, "/profile-settings/")
}
