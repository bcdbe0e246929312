package handlers

import (
	"net/http"
	"time"

	"agenda_backend/internal/services"
	"agenda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the dashboard service dependencies.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// ShowDashboard handles GET /home, the staff landing page with the
// appointment metrics.
func (h *DashboardHandler) ShowDashboard(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(time.Now())
	if err != nil {
		utils.LogError(err, "Failed to compute dashboard summary")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute dashboard summary", err.Error()))
		return
	}

	response := gin.H{
		"data":         summary,
		"nome_usuario": c.GetString("username"),
	}
	if flash := utils.PopFlash(c); flash != nil {
		response["flash"] = flash
	}
	c.JSON(http.StatusOK, response)
}
