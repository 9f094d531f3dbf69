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

// CategoryHandler serves user-defined category management.
type CategoryHandler struct {
	DB *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{DB: db}
}

// AddForm renders the add-category page.
func (h *CategoryHandler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_category.html", gin.H{
		"title": "MoneyMap - Add Category",
	})
}

// Add creates a category scoped to the current user.
func (h *CategoryHandler) Add(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	catType := c.PostForm("category_type")

	fieldErrors := map[string]string{}
	if err := util.ValidateCategoryName(name); err != nil {
		fieldErrors["name"] = err.Error()
	}
	if err := util.ValidateType(catType); err != nil {
		fieldErrors["category_type"] = err.Error()
	}

	if len(fieldErrors) > 0 {
		c.HTML(http.StatusBadRequest, "add_category.html", gin.H{
			"title":       "MoneyMap - Add Category",
			"fieldErrors": fieldErrors,
			"name":        name,
		})
		return
	}

	category := models.Category{UserID: user.ID, Name: name, Type: catType}
	if err := h.DB.Create(&category).Error; err != nil {
		serverError(c, "could not save category")
		return
	}

	util.Flash(c, "Category added successfully!")
	c.Redirect(http.StatusFound, "/dashboard/")
}
