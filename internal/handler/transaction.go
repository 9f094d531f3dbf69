package handler

import (
	"net/http"
	"strconv"
	"strings"

	"moneymap/internal/middleware"
	"moneymap/internal/models"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler serves transaction create/edit/delete.
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

// transactionForm is the parsed-and-validated add/edit form. Category is
// optional; when present it must belong to the requesting user.
type transactionForm struct {
	Title       string
	Amount      string
	CategoryID  string
	Type        string
	Date        string
	Description string
}

func readTransactionForm(c *gin.Context) transactionForm {
	return transactionForm{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Amount:      strings.TrimSpace(c.PostForm("amount")),
		CategoryID:  strings.TrimSpace(c.PostForm("category")),
		Type:        c.PostForm("transaction_type"),
		Date:        strings.TrimSpace(c.PostForm("date")),
		Description: strings.TrimSpace(c.PostForm("description")),
	}
}

// validate fills a Transaction from the form, returning field-level
// errors for redisplay. Nothing is persisted on any error.
func (h *TransactionHandler) validate(form transactionForm, user *models.User, tx *models.Transaction) map[string]string {
	fieldErrors := map[string]string{}

	if form.Title == "" {
		fieldErrors["title"] = "title is required"
	} else if len(form.Title) > 200 {
		fieldErrors["title"] = "title too long, max 200 characters"
	}

	amount, err := util.ParseAmount(form.Amount)
	if err != nil {
		fieldErrors["amount"] = "enter a valid positive amount"
	}

	if err := util.ValidateType(form.Type); err != nil {
		fieldErrors["transaction_type"] = err.Error()
	}

	date, err := util.ParseDate(form.Date)
	if err != nil {
		fieldErrors["date"] = "enter a date as YYYY-MM-DD"
	}

	var categoryID *uint
	if form.CategoryID != "" {
		id, err := strconv.Atoi(form.CategoryID)
		if err != nil || id <= 0 {
			fieldErrors["category"] = "select a valid category"
		} else {
			var category models.Category
			if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).
				First(&category).Error; err != nil {
				fieldErrors["category"] = "select a valid category"
			} else {
				cid := category.ID
				categoryID = &cid
			}
		}
	}

	if len(fieldErrors) > 0 {
		return fieldErrors
	}

	tx.UserID = user.ID
	tx.Title = form.Title
	tx.Amount = amount
	tx.CategoryID = categoryID
	tx.Type = form.Type
	tx.Date = date
	tx.Description = form.Description
	return nil
}

func (h *TransactionHandler) userCategories(userID uint) ([]models.Category, error) {
	var categories []models.Category
	err := h.DB.Where("user_id = ?", userID).Order("type, name").Find(&categories).Error
	return categories, err
}

// AddForm renders the empty add-transaction form.
func (h *TransactionHandler) AddForm(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	categories, err := h.userCategories(user.ID)
	if err != nil {
		serverError(c, "could not load categories")
		return
	}
	c.HTML(http.StatusOK, "add_transaction.html", gin.H{
		"title":      "MoneyMap - Add Transaction",
		"categories": categories,
	})
}

// Add persists a new transaction, or redisplays the form with field
// errors.
func (h *TransactionHandler) Add(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	form := readTransactionForm(c)
	var tx models.Transaction
	if fieldErrors := h.validate(form, user, &tx); fieldErrors != nil {
		categories, _ := h.userCategories(user.ID)
		c.HTML(http.StatusBadRequest, "add_transaction.html", gin.H{
			"title":       "MoneyMap - Add Transaction",
			"categories":  categories,
			"fieldErrors": fieldErrors,
			"form":        form,
		})
		return
	}

	if err := h.DB.Create(&tx).Error; err != nil {
		serverError(c, "could not save transaction")
		return
	}

	util.Flash(c, "Transaction added successfully!")
	c.Redirect(http.StatusFound, "/dashboard/")
}

// loadOwned fetches a transaction by id scoped to the user. Foreign rows
// come back as gorm.ErrRecordNotFound, indistinguishable from absent
// ones.
func (h *TransactionHandler) loadOwned(c *gin.Context, user *models.User) (*models.Transaction, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		notFound(c)
		return nil, false
	}

	var tx models.Transaction
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&tx).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			notFound(c)
		} else {
			serverError(c, "could not load transaction")
		}
		return nil, false
	}
	return &tx, true
}

// EditForm renders the edit form pre-filled with the stored values.
func (h *TransactionHandler) EditForm(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	tx, ok := h.loadOwned(c, user)
	if !ok {
		return
	}
	categories, err := h.userCategories(user.ID)
	if err != nil {
		serverError(c, "could not load categories")
		return
	}
	c.HTML(http.StatusOK, "edit_transaction.html", gin.H{
		"title":       "MoneyMap - Edit Transaction",
		"categories":  categories,
		"transaction": tx,
		"date":        tx.Date.Format("2006-01-02"),
	})
}

// Edit updates an owned transaction in place.
func (h *TransactionHandler) Edit(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	tx, ok := h.loadOwned(c, user)
	if !ok {
		return
	}

	form := readTransactionForm(c)
	var updated models.Transaction
	if fieldErrors := h.validate(form, user, &updated); fieldErrors != nil {
		categories, _ := h.userCategories(user.ID)
		c.HTML(http.StatusBadRequest, "edit_transaction.html", gin.H{
			"title":       "MoneyMap - Edit Transaction",
			"categories":  categories,
			"transaction": tx,
			"fieldErrors": fieldErrors,
			"form":        form,
		})
		return
	}

	tx.Title = updated.Title
	tx.Amount = updated.Amount
	tx.CategoryID = updated.CategoryID
	tx.Type = updated.Type
	tx.Date = updated.Date
	tx.Description = updated.Description

	if err := h.DB.Save(tx).Error; err != nil {
		serverError(c, "could not save transaction")
		return
	}

	util.Flash(c, "Transaction updated successfully!")
	c.Redirect(http.StatusFound, "/dashboard/")
}

// DeleteConfirm renders the delete confirmation page.
func (h *TransactionHandler) DeleteConfirm(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	tx, ok := h.loadOwned(c, user)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "delete_transaction.html", gin.H{
		"title":       "MoneyMap - Delete Transaction",
		"transaction": tx,
	})
}

// Delete removes an owned transaction after confirmation.
func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	tx, ok := h.loadOwned(c, user)
	if !ok {
		return
	}

	if err := h.DB.Delete(tx).Error; err != nil {
		serverError(c, "could not delete transaction")
		return
	}

	util.Flash(c, "Transaction deleted successfully!")
	c.Redirect(http.StatusFound, "/dashboard/")
}
