package router

import (
	"agenda_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes sets up the routes reachable without a session: the
// client-facing booking flow and the login pages.
func SetupPublicRoutes(engine *gin.Engine, appointmentHandler *handlers.AppointmentHandler, authHandler *handlers.AuthHandler) {
	engine.GET("/", appointmentHandler.ShowBookingForm)
	engine.POST("/agendar", appointmentHandler.CreateAppointment)
	engine.GET("/horarios_indisponiveis", appointmentHandler.GetUnavailableTimes)

	engine.GET("/login", authHandler.ShowLoginForm)
	engine.POST("/login", authHandler.Login)
	engine.GET("/logout", authHandler.Logout)
}

// SetupDashboardRoutes sets up the staff landing page.
func SetupDashboardRoutes(authenticatedGroup *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	authenticatedGroup.GET("/home", dashboardHandler.ShowDashboard)
}

// SetupAppointmentManagementRoutes sets up the staff appointment list and its
// row actions.
func SetupAppointmentManagementRoutes(authenticatedGroup *gin.RouterGroup, appointmentHandler *handlers.AppointmentHandler) {
	authenticatedGroup.GET("/agendamentos", appointmentHandler.GetAppointments)
	authenticatedGroup.GET("/deletar/:id", appointmentHandler.DeleteAppointment)
}

// SetupUserRoutes sets up the staff account management routes.
func SetupUserRoutes(authenticatedGroup *gin.RouterGroup, userHandler *handlers.UserHandler) {
	authenticatedGroup.GET("/usuarios", userHandler.GetUsers)
	authenticatedGroup.GET("/usuario/:id", userHandler.GetUserByID)
	authenticatedGroup.GET("/adicionar_usuario", userHandler.ShowAddUserForm)
	authenticatedGroup.POST("/adicionar_usuario", userHandler.CreateUser)
	authenticatedGroup.GET("/editar_usuario/:id", userHandler.ShowEditUserForm)
	authenticatedGroup.POST("/editar_usuario/:id", userHandler.UpdateUser)
	authenticatedGroup.GET("/deletar_usuario/:id", userHandler.DeleteUser)
}

// SetupReportRoutes sets up the CSV export route.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	authenticatedGroup.GET("/exportar-relatorio", reportHandler.ExportAppointments)
}
