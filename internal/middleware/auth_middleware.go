package middleware

import (
	"net/http"

	"agenda_backend/internal/sessions"
	"agenda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SessionAuth creates a Gin middleware that guards staff-only pages. It
// resolves the signed session cookie to a live server-side session and puts
// the user identity in the request context. Unauthenticated requests are
// redirected to the login page with a warning flash.
func SessionAuth(store sessions.Store, signer *sessions.CookieSigner) gin.HandlerFunc {
	deny := func(c *gin.Context) {
		utils.SetFlash(c, utils.FlashWarning, "Você precisa estar logado para acessar esta página.")
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}

	return func(c *gin.Context) {
		cookieValue, err := c.Cookie(sessions.CookieName)
		if err != nil {
			deny(c)
			return
		}

		sessionID, err := signer.Parse(cookieValue)
		if err != nil {
			deny(c)
			return
		}

		data, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			deny(c)
			return
		}

		// Set user information in the context for downstream handlers
		c.Set("userID", data.UserID)
		c.Set("username", data.Username)
		c.Set("sessionID", sessionID)

		c.Next()
	}
}
