package routes

import (
	"github.com/gin-gonic/gin"

	"hostelhub/internal/interfaces/http/handlers"
	"hostelhub/internal/interfaces/http/middleware"
)

// HostelRouteConfig holds dependencies for hostel routes.
type HostelRouteConfig struct {
	HostelHandler  *handlers.HostelHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permission     *middleware.PermissionMiddleware
}

// SetupHostelRoutes configures hostel routes.
func SetupHostelRoutes(engine *gin.Engine, cfg *HostelRouteConfig) {
	hostels := engine.Group("/hostels")
	hostels.Use(cfg.AuthMiddleware.RequireAuth())
	{
		hostels.GET("", cfg.Permission.Require("hostel", "read"), cfg.HostelHandler.List)
		hostels.GET("/:id", cfg.Permission.Require("hostel", "read"), cfg.HostelHandler.Get)

		hostels.POST("", cfg.Permission.Require("hostel", "create"), cfg.HostelHandler.Create)
		hostels.PUT("/:id", cfg.Permission.Require("hostel", "update"), cfg.HostelHandler.Update)
		hostels.DELETE("/:id", cfg.Permission.Require("hostel", "delete"), cfg.HostelHandler.Delete)
	}
}
