package handlers

import (
	"errors"
	"net/http"

	"agenda_backend/internal/services"
	"agenda_backend/internal/sessions"
	"agenda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the auth service and cookie signer.
type AuthHandler struct {
	authService services.AuthService
	signer      *sessions.CookieSigner
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService services.AuthService, signer *sessions.CookieSigner) *AuthHandler {
	return &AuthHandler{authService: authService, signer: signer}
}

// ShowLoginForm handles GET /login.
func (h *AuthHandler) ShowLoginForm(c *gin.Context) {
	response := gin.H{"pagina": "login"}
	if flash := utils.PopFlash(c); flash != nil {
		response["flash"] = flash
	}
	c.JSON(http.StatusOK, response)
}

// Login handles POST /login. Successful logins receive a signed session
// cookie and land on the dashboard; failures bounce back to the form.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SetFlash(c, utils.FlashDanger, "Usuário ou senha inválidos.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	sessionID, user, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.SetFlash(c, utils.FlashDanger, "Usuário ou senha inválidos.")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		utils.LogError(err, "Login failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Login failed", err.Error()))
		return
	}

	cookieValue, err := h.signer.Sign(sessionID)
	if err != nil {
		utils.LogError(err, "Failed to sign session cookie")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Login failed", err.Error()))
		return
	}

	c.SetCookie(sessions.CookieName, cookieValue, int(sessions.SessionTTL.Seconds()), "/", "", false, true)
	utils.LogInfo("User logged in", map[string]interface{}{"username": user.Username})

	utils.SetFlash(c, utils.FlashSuccess, "Login realizado com sucesso!")
	c.Redirect(http.StatusFound, "/home")
}

// Logout handles GET /logout. Discards the server-side session, clears the
// cookie and returns to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookieValue, err := c.Cookie(sessions.CookieName); err == nil {
		if sessionID, err := h.signer.Parse(cookieValue); err == nil {
			if err := h.authService.Logout(c.Request.Context(), sessionID); err != nil {
				utils.LogError(err, "Failed to discard session")
			}
		}
	}

	c.SetCookie(sessions.CookieName, "", -1, "/", "", false, true)
	utils.SetFlash(c, utils.FlashInfo, "Você foi desconectado.")
	c.Redirect(http.StatusFound, "/login")
}
