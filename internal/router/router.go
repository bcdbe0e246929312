package router

import (
	"database/sql"

	"agenda_backend/internal/handlers"
	"agenda_backend/internal/middleware"
	"agenda_backend/internal/repositories"
	"agenda_backend/internal/services"
	"agenda_backend/internal/sessions"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, sessionStore sessions.Store, signer *sessions.CookieSigner) {
	// Initialize Repositories
	appointmentRepo := repositories.NewAppointmentRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Initialize Services
	appointmentService := services.NewAppointmentService(appointmentRepo, db)
	userService := services.NewUserService(userRepo, db)
	authService := services.NewAuthService(userRepo, sessionStore)
	dashboardService := services.NewDashboardService(appointmentRepo)
	reportService := services.NewReportService(appointmentRepo)

	// Initialize Handlers
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService, signer)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Public routes: booking form, slot availability, login.
	SetupPublicRoutes(engine, appointmentHandler, authHandler)

	// Staff routes behind the session gate.
	authenticated := engine.Group("")
	authenticated.Use(middleware.SessionAuth(sessionStore, signer))
	{
		SetupDashboardRoutes(authenticated, dashboardHandler)
		SetupAppointmentManagementRoutes(authenticated, appointmentHandler)
		SetupUserRoutes(authenticated, userHandler)
		SetupReportRoutes(authenticated, reportHandler)
	}
}
