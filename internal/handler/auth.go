package handler

import (
	"net/http"
	"strings"
	"time"

	"moneymap/internal/database"
	"moneymap/internal/middleware"
	"moneymap/internal/models"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthHandler(db *gorm.DB, jwtSecret string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		DB:        db,
		JWTSecret: jwtSecret,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

// Home renders the login page, or sends an already-authenticated
// browser straight to the dashboard.
func (h *AuthHandler) Home(c *gin.Context) {
	if h.isAuthenticated(c) {
		c.Redirect(http.StatusFound, "/dashboard/")
		return
	}
	msg, errMsg := util.PopFlash(c)
	c.HTML(http.StatusOK, "home.html", gin.H{
		"title":   "MoneyMap - Login",
		"message": msg,
		"error":   errMsg,
	})
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"title": "MoneyMap - Register",
	})
}

// Register creates the user, its profile and its default category set
// in one transaction, then logs the user in and sends them to the
// income setup page.
func (h *AuthHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	fieldErrors := map[string]string{}
	if err := util.ValidateUsername(username); err != nil {
		fieldErrors["username"] = err.Error()
	}
	if len(password) < 8 || len(password) > 64 {
		fieldErrors["password"] = "password must be 8-64 characters"
	}
	if password != confirm {
		fieldErrors["confirm_password"] = "passwords do not match"
	}

	if len(fieldErrors) == 0 {
		// case-insensitive uniqueness
		var count int64
		if err := h.DB.Model(&models.User{}).
			Where("LOWER(username) = LOWER(?)", username).
			Count(&count).Error; err != nil {
			serverError(c, "could not check username")
			return
		}
		if count > 0 {
			fieldErrors["username"] = "username already exists"
		}
	}

	if len(fieldErrors) > 0 {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{
			"title":       "MoneyMap - Register",
			"fieldErrors": fieldErrors,
			"username":    username,
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		serverError(c, "could not hash password")
		return
	}

	user := models.User{Username: username, PasswordHash: string(hash)}

	// user, profile and default categories are created atomically; the
	// seeding call is explicit and synchronous, not event wiring
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.UserProfile{UserID: user.ID}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		return database.SeedDefaultCategories(tx, user.ID)
	})
	if err != nil {
		serverError(c, "could not create account")
		return
	}

	if err := h.startSession(c, &user); err != nil {
		serverError(c, "could not start session")
		return
	}

	util.Flash(c, "Welcome to MoneyMap! Default categories have been created for you.")
	c.Redirect(http.StatusFound, "/set-income/")
}

// Login verifies credentials posted from the home page.
func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	var user models.User
	if err := h.DB.Where("LOWER(username) = LOWER(?)", username).
		First(&user).Error; err != nil {
		util.FlashError(c, "Invalid username or password")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		util.FlashError(c, "Invalid username or password")
		c.Redirect(http.StatusFound, "/")
		return
	}

	now := time.Now()
	user.LastLoginAt = &now
	user.LastLoginIP = c.ClientIP()
	_ = h.DB.Save(&user).Error

	if err := h.startSession(c, &user); err != nil {
		serverError(c, "could not start session")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard/")
}

// Logout revokes the backing session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if v, ok := c.Get("currentSession"); ok {
		if session, ok := v.(*models.Session); ok && session != nil {
			_ = h.DB.Model(session).Update("revoked", true).Error
		}
	}
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	util.Flash(c, "You have been logged out successfully!")
	c.Redirect(http.StatusFound, "/")
}

// startSession creates a session row and sets the JWT cookie.
func (h *AuthHandler) startSession(c *gin.Context, user *models.User) error {
	session := models.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(h.TokenTTL),
	}
	if err := h.DB.Create(&session).Error; err != nil {
		return err
	}

	token, err := util.GenerateToken(h.JWTSecret, user.ID, session.ID, h.TokenTTL)
	if err != nil {
		return err
	}

	c.SetCookie(middleware.TokenCookie, token, int(h.TokenTTL.Seconds()), "/", "", false, true)
	return nil
}

// isAuthenticated does a soft token check for pages outside the
// protected group.
func (h *AuthHandler) isAuthenticated(c *gin.Context) bool {
	tokenStr, err := c.Cookie(middleware.TokenCookie)
	if err != nil || tokenStr == "" {
		return false
	}
	claims, err := util.ParseToken(h.JWTSecret, tokenStr)
	if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return false
	}
	var session models.Session
	if err := h.DB.First(&session, "id = ?", claims.SessionID).Error; err != nil {
		return false
	}
	return !session.Revoked && session.ExpiresAt.After(time.Now())
}
