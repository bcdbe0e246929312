package utils

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// FlashCookieName is the short-lived cookie carrying a one-shot feedback
// message across a redirect.
const FlashCookieName = "flash"

// Flash levels map to the styling of the message on the client side.
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// Flash is a one-shot feedback message consumed on the next page load.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// SetFlash stores a flash message in a cookie that the next request pops.
// The value is "level|message", URL-escaped to survive cookie encoding.
func SetFlash(c *gin.Context, level, message string) {
	value := url.QueryEscape(level + "|" + message)
	c.SetCookie(FlashCookieName, value, 60, "/", "", false, true)
}

// PopFlash reads and clears the flash cookie. Returns nil when no flash is
// pending or the cookie is malformed.
func PopFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(FlashCookieName)
	if err != nil {
		return nil
	}
	c.SetCookie(FlashCookieName, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	level, message, found := strings.Cut(decoded, "|")
	if !found || message == "" {
		return nil
	}
	return &Flash{Level: level, Message: message}
}
