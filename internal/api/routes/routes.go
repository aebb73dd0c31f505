package routes

import (
	"time"

	"timeclock-backend/internal/api/handlers"
	"timeclock-backend/internal/api/middleware"
	"timeclock-backend/internal/auth"
	"timeclock-backend/internal/config"
	"timeclock-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the collaborators the router hands to its handlers
type Dependencies struct {
	Provider    service.WorkspaceProviderInterface
	AuthService *auth.AuthService
	Stores      handlers.StoreDirectory
	Now         func() time.Time
	Version     string
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	healthHandler := handlers.NewHealthHandler(deps.Stores, deps.Version)
	authHandler := auth.NewAuthHandler(deps.AuthService)
	authMiddleware := auth.NewAuthMiddleware(deps.AuthService)

	tenantHandler := handlers.NewTenantHandler(deps.Provider)
	userHandler := handlers.NewUserHandler(deps.Provider)
	teamHandler := handlers.NewTeamHandler(deps.Provider)
	taskHandler := handlers.NewTaskHandler(deps.Provider)
	recordHandler := handlers.NewTimeRecordHandler(deps.Provider, deps.Now)
	reportHandler := handlers.NewReportHandler(deps.Provider)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/api/auth/validate", authHandler.ValidateToken)

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	manager := authMiddleware.RequireManager()

	{
		v1.GET("/tenant", tenantHandler.GetTenant)
		v1.POST("/tenant/switch", tenantHandler.SwitchTenant)

		me := v1.Group("/me")
		{
			me.GET("", userHandler.GetCurrentUser)
			me.POST("/password", userHandler.ChangePassword)
			me.POST("/clock-in", recordHandler.ClockIn)
			me.POST("/clock-out", recordHandler.ClockOut)
			me.GET("/session", recordHandler.SessionStatus)
			me.GET("/tasks", taskHandler.ListMyTasks)
			me.POST("/sign-out", tenantHandler.SignOut)
		}

		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.POST("", manager, userHandler.CreateUser)
			users.PUT("/:id", manager, userHandler.UpdateUser)
			users.DELETE("/:id", manager, userHandler.DeleteUser)
			users.POST("/:id/reset-password", manager, userHandler.ResetPassword)
		}

		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.POST("", manager, teamHandler.CreateTeam)
			teams.PUT("/:id", manager, teamHandler.UpdateTeam)
			teams.DELETE("/:id", manager, teamHandler.DeleteTeam)
		}

		tasks := v1.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", manager, taskHandler.CreateTask)
			tasks.PUT("/:id", manager, taskHandler.UpdateTask)
			tasks.DELETE("/:id", manager, taskHandler.DeleteTask)
		}

		records := v1.Group("/time-records")
		{
			records.GET("", recordHandler.ListTimeRecords)
			records.POST("", manager, recordHandler.CreateTimeRecord)
			records.PUT("/:id", manager, recordHandler.UpdateTimeRecord)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/dashboard", authMiddleware.RequireReportViewer(), reportHandler.Dashboard)
			reports.GET("/weekly", reportHandler.Weekly)
		}
	}

	return router
}
