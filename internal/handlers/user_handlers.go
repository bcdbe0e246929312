package handlers

import (
	"errors"
	"net/http"

	"agenda_backend/internal/services"
	"agenda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependencies.
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers handles GET /usuarios, the staff account listing.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers()
	if err != nil {
		utils.LogError(err, "Failed to fetch users")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch users", err.Error()))
		return
	}

	response := gin.H{
		"data":         users,
		"nome_usuario": c.GetString("username"),
	}
	if flash := utils.PopFlash(c); flash != nil {
		response["flash"] = flash
	}
	c.JSON(http.StatusOK, response)
}

// GetUserByID handles GET /usuario/:id, the single-account detail view.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid user ID", err.Error()))
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found", ""))
			return
		}
		utils.LogError(err, "Failed to fetch user")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch user", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         user,
		"nome_usuario": c.GetString("username"),
	})
}

// ShowAddUserForm handles GET /adicionar_usuario.
func (h *UserHandler) ShowAddUserForm(c *gin.Context) {
	response := gin.H{
		"pagina":       "adicionar_usuario",
		"nome_usuario": c.GetString("username"),
	}
	if flash := utils.PopFlash(c); flash != nil {
		response["flash"] = flash
	}
	c.JSON(http.StatusOK, response)
}

// CreateUser handles POST /adicionar_usuario.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SetFlash(c, utils.FlashDanger, "Preencha todos os campos obrigatórios.")
		c.Redirect(http.StatusFound, "/adicionar_usuario")
		return
	}

	_, err := h.userService.CreateUser(req)
	if err != nil {
		if errors.Is(err, services.ErrUsernameExists) {
			utils.SetFlash(c, utils.FlashDanger, "O nome de usuário já está em uso. Escolha outro.")
			c.Redirect(http.StatusFound, "/adicionar_usuario")
			return
		}
		utils.LogError(err, "Failed to create user")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create user", err.Error()))
		return
	}

	utils.SetFlash(c, utils.FlashSuccess, "Usuário criado com sucesso!")
	c.Redirect(http.StatusFound, "/usuarios")
}

// ShowEditUserForm handles GET /editar_usuario/:id. Returns the current
// account data to prefill the edit form.
func (h *UserHandler) ShowEditUserForm(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.SetFlash(c, utils.FlashDanger, "Usuário não encontrado.")
		c.Redirect(http.StatusFound, "/usuarios")
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.SetFlash(c, utils.FlashDanger, "Usuário não encontrado.")
			c.Redirect(http.StatusFound, "/usuarios")
			return
		}
		utils.LogError(err, "Failed to fetch user")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch user", err.Error()))
		return
	}

	response := gin.H{
		"pagina":       "editar_usuario",
		"data":         user,
		"nome_usuario": c.GetString("username"),
	}
	if flash := utils.PopFlash(c); flash != nil {
		response["flash"] = flash
	}
	c.JSON(http.StatusOK, response)
}

// UpdateUser handles POST /editar_usuario/:id. Username and password are both
// replaced on every edit.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.SetFlash(c, utils.FlashDanger, "Usuário não encontrado.")
		c.Redirect(http.StatusFound, "/usuarios")
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SetFlash(c, utils.FlashDanger, "Preencha todos os campos obrigatórios.")
		c.Redirect(http.StatusFound, "/editar_usuario/"+utils.Int64ToStr(id))
		return
	}

	err = h.userService.UpdateUser(id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			utils.SetFlash(c, utils.FlashDanger, "Usuário não encontrado.")
			c.Redirect(http.StatusFound, "/usuarios")
		case errors.Is(err, services.ErrUsernameExists):
			utils.SetFlash(c, utils.FlashDanger, "O nome de usuário já está em uso. Escolha outro.")
			c.Redirect(http.StatusFound, "/editar_usuario/"+utils.Int64ToStr(id))
		default:
			utils.LogError(err, "Failed to update user")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update user", err.Error()))
		}
		return
	}

	utils.SetFlash(c, utils.FlashSuccess, "Usuário atualizado com sucesso!")
	c.Redirect(http.StatusFound, "/usuarios")
}

// DeleteUser handles GET /deletar_usuario/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.SetFlash(c, utils.FlashDanger, "Usuário não encontrado.")
		c.Redirect(http.StatusFound, "/usuarios")
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.SetFlash(c, utils.FlashDanger, "Usuário não encontrado.")
		} else {
			utils.LogError(err, "Failed to delete user")
			utils.SetFlash(c, utils.FlashDanger, "Erro ao excluir o usuário.")
		}
		c.Redirect(http.StatusFound, "/usuarios")
		return
	}

	utils.SetFlash(c, utils.FlashSuccess, "Usuário excluído com sucesso!")
	c.Redirect(http.StatusFound, "/usuarios")
}
