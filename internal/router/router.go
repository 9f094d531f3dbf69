package router

import (
	"moneymap/internal/config"
	"moneymap/internal/handler"
	"moneymap/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures Gin engine, templates and static resources.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// static files and templates
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.ExpireHours)

	// public surface: login page, login post, registration
	r.GET("/", authHandler.Home)
	r.POST("/login/", authHandler.Login)
	r.GET("/register/", authHandler.RegisterForm)
	r.POST("/register/", authHandler.Register)

	// everything else requires an active session
	protected := r.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/logout/", authHandler.Logout)

	dashboardHandler := handler.NewDashboardHandler(db, cfg.App.PageSize)
	protected.GET("/dashboard/", dashboardHandler.Dashboard)

	profileHandler := handler.NewProfileHandler(db)
	protected.GET("/set-income/", profileHandler.SetIncomeForm)
	protected.POST("/set-income/", profileHandler.SetIncome)
	protected.GET("/profile-settings/", profileHandler.SettingsForm)
	protected.POST("/profile-settings/", profileHandler.UpdateSettings)

	txHandler := handler.NewTransactionHandler(db)
	protected.GET("/add-transaction/", txHandler.AddForm)
	protected.POST("/add-transaction/", txHandler.Add)
	protected.GET("/edit-transaction/:id/", txHandler.EditForm)
	protected.POST("/edit-transaction/:id/", txHandler.Edit)
	protected.GET("/delete-transaction/:id/", txHandler.DeleteConfirm)
	protected.POST("/delete-transaction/:id/", txHandler.Delete)

	categoryHandler := handler.NewCategoryHandler(db)
	protected.GET("/add-category/", categoryHandler.AddForm)
	protected.POST("/add-category/", categoryHandler.Add)

	budgetHandler := handler.NewBudgetHandler(db)
	protected.GET("/budget-goals/", budgetHandler.Goals)
	protected.POST("/add-budget-goal/", budgetHandler.AddGoal)

	analyticsHandler := handler.NewAnalyticsHandler(db)
	protected.GET("/analytics/", analyticsHandler.Analytics)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/", exportHandler.ExportCSV)
	protected.GET("/export/xlsx/", exportHandler.ExportXLSX)

	return r
}
