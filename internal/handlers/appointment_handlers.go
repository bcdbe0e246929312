package handlers

import (
	"errors"
	"net/http"

	"agenda_backend/internal/services"
	"agenda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler holds the appointment service dependencies.
type AppointmentHandler struct {
	appointmentService services.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointmentService services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// ShowBookingForm handles GET /. It returns the booking page payload along
// with any pending flash message.
func (h *AppointmentHandler) ShowBookingForm(c *gin.Context) {
	response := gin.H{"pagina": "agendamento"}
	if flash := utils.PopFlash(c); flash != nil {
		response["flash"] = flash
	}
	c.JSON(http.StatusOK, response)
}

// CreateAppointment handles POST /agendar. On success or validation failure
// the client is redirected back to the booking form with a flash message.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req services.CreateAppointmentRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SetFlash(c, utils.FlashDanger, "Preencha todos os campos obrigatórios.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	_, err := h.appointmentService.CreateAppointment(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) || errors.Is(err, services.ErrInvalidTime) || errors.Is(err, services.ErrDateRequired) {
			utils.SetFlash(c, utils.FlashDanger, "Data ou horário inválido.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		utils.LogError(err, "Failed to create appointment")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create appointment", err.Error()))
		return
	}

	utils.SetFlash(c, utils.FlashSuccess, "Agendamento realizado com sucesso!")
	c.Redirect(http.StatusFound, "/")
}

// GetAppointments handles GET /agendamentos for staff. Accepts ?filtro=hoje
// to restrict the listing to today.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	appointments, err := h.appointmentService.GetAppointments(c.Query("filtro"))
	if err != nil {
		utils.LogError(err, "Failed to fetch appointments")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch appointments", err.Error()))
		return
	}

	response := gin.H{
		"data":         appointments,
		"nome_usuario": c.GetString("username"),
	}
	if flash := utils.PopFlash(c); flash != nil {
		response["flash"] = flash
	}
	c.JSON(http.StatusOK, response)
}

// DeleteAppointment handles GET /deletar/:id. The staff list uses plain links
// for row actions, so this is a redirect flow rather than a DELETE endpoint.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.SetFlash(c, utils.FlashDanger, "Agendamento não encontrado.")
		c.Redirect(http.StatusFound, "/agendamentos")
		return
	}

	if err := h.appointmentService.DeleteAppointment(id); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			utils.SetFlash(c, utils.FlashDanger, "Agendamento não encontrado.")
		} else {
			utils.LogError(err, "Failed to delete appointment")
			utils.SetFlash(c, utils.FlashDanger, "Erro ao excluir o agendamento.")
		}
		c.Redirect(http.StatusFound, "/agendamentos")
		return
	}

	utils.SetFlash(c, utils.FlashSuccess, "Agendamento excluído com sucesso!")
	c.Redirect(http.StatusFound, "/agendamentos")
}

// GetUnavailableTimes handles GET /horarios_indisponiveis?data=YYYY-MM-DD.
// The public booking form polls this endpoint to grey out taken slots.
func (h *AppointmentHandler) GetUnavailableTimes(c *gin.Context) {
	times, err := h.appointmentService.GetUnavailableTimes(c.Query("data"))
	if err != nil {
		if errors.Is(err, services.ErrDateRequired) || errors.Is(err, services.ErrInvalidDate) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid or missing date parameter", err.Error()))
			return
		}
		utils.LogError(err, "Failed to fetch unavailable times")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch unavailable times", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"horarios_indisponiveis": times})
}
