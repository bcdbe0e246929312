package handlers

import (
	"net/http"

	"agenda_backend/internal/services"
	"agenda_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service dependencies.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ExportAppointments handles GET /exportar-relatorio and streams the full
// appointment book as a CSV download.
func (h *ReportHandler) ExportAppointments(c *gin.Context) {
	csvData, err := h.reportService.ExportAppointmentsCSV()
	if err != nil {
		utils.LogError(err, "Failed to export appointments report")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to export report", err.Error()))
		return
	}

	c.Header("Content-Disposition", "attachment; filename=relatorio_agendamentos.csv")
	c.Data(http.StatusOK, "text/csv", csvData)
}
