package middleware

import (
	"net/http"
	"strings"
	"time"

	"moneymap/internal/models"
	"moneymap/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TokenCookie is the session cookie set at login.
const TokenCookie = "mm_token"

// AuthMiddleware verifies the JWT, checks that its backing session is
// still live and puts the current user into the context. Browsers are
// sent back to the login page instead of getting a bare 401.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// 1) Cookie set at login (the normal browser path)
		if cookie, err := c.Cookie(TokenCookie); err == nil {
			tokenStr = cookie
		}

		// 2) Header: Authorization: Bearer xxx
		if tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					tokenStr = parts[1]
				}
			}
		}

		// 3) Query param ?token=xxx (downloads can't set headers)
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			rejectUnauthenticated(c)
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			rejectUnauthenticated(c)
			return
		}

		// the session row backs logout: a revoked or expired session
		// invalidates an otherwise valid token
		var session models.Session
		if err := db.First(&session, "id = ?", claims.SessionID).Error; err != nil {
			rejectUnauthenticated(c)
			return
		}
		if session.Revoked || session.ExpiresAt.Before(time.Now()) {
			rejectUnauthenticated(c)
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			rejectUnauthenticated(c)
			return
		}

		c.Set("currentUser", &user)
		c.Set("currentSession", &session)
		c.Next()
	}
}

// CurrentUser pulls the authenticated user out of the context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

func rejectUnauthenticated(c *gin.Context) {
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	} else {
		c.Redirect(http.StatusFound, "/")
	}
	c.Abort()
}
