package routes

import (
	"github.com/gin-gonic/gin"

	"hostelhub/internal/interfaces/http/handlers"
	"hostelhub/internal/interfaces/http/middleware"
)

// MaintenanceRouteConfig holds dependencies for maintenance routes.
type MaintenanceRouteConfig struct {
	MaintenanceHandler *handlers.MaintenanceHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Permission         *middleware.PermissionMiddleware
}

// SetupMaintenanceRoutes configures maintenance request routes.
func SetupMaintenanceRoutes(engine *gin.Engine, cfg *MaintenanceRouteConfig) {
	requests := engine.Group("/maintenance-requests")
	requests.Use(cfg.AuthMiddleware.RequireAuth())
	{
		requests.POST("", cfg.Permission.Require("maintenance", "create"), cfg.MaintenanceHandler.Create)
		requests.GET("", cfg.Permission.Require("maintenance", "read"), cfg.MaintenanceHandler.ListMine)

		requests.POST("/:id/start", cfg.Permission.Require("maintenance", "update"), cfg.MaintenanceHandler.Start)
		requests.POST("/:id/resolve", cfg.Permission.Require("maintenance", "update"), cfg.MaintenanceHandler.Resolve)
		requests.POST("/:id/reject", cfg.Permission.Require("maintenance", "update"), cfg.MaintenanceHandler.Reject)
	}

	engine.GET("/admin/maintenance-requests",
		cfg.AuthMiddleware.RequireAuth(),
		cfg.Permission.Require("maintenance", "update"),
		cfg.MaintenanceHandler.ListByStatus,
	)
}
