package util

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// One-shot flash messages carried across a redirect in short-lived
// cookies. The cookie is cleared on first read.
const (
	flashCookie      = "mm_flash"
	flashErrorCookie = "mm_flash_error"
)

// Flash stores a success message for the next request.
func Flash(c *gin.Context, msg string) {
	setFlash(c, flashCookie, msg)
}

// FlashError stores an error message for the next request.
func FlashError(c *gin.Context, msg string) {
	setFlash(c, flashErrorCookie, msg)
}

// PopFlash returns and clears the pending success and error messages.
func PopFlash(c *gin.Context) (msg, errMsg string) {
	return popFlash(c, flashCookie), popFlash(c, flashErrorCookie)
}

func setFlash(c *gin.Context, name, msg string) {
	c.SetCookie(name, url.QueryEscape(msg), 60, "/", "", false, true)
}

func popFlash(c *gin.Context, name string) string {
	raw, err := c.Cookie(name)
	if err != nil || raw == "" {
		return ""
	}
	c.SetCookie(name, "", -1, "/", "", false, true)
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}
