package routes

import (
	"github.com/gin-gonic/gin"

	"hostelhub/internal/interfaces/http/handlers"
	"hostelhub/internal/interfaces/http/middleware"
)

// ResidentRouteConfig holds dependencies for resident routes.
type ResidentRouteConfig struct {
	ResidentHandler *handlers.ResidentHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Permission      *middleware.PermissionMiddleware
}

// SetupResidentRoutes configures resident routes.
func SetupResidentRoutes(engine *gin.Engine, cfg *ResidentRouteConfig) {
	residents := engine.Group("/residents")
	residents.Use(cfg.AuthMiddleware.RequireAuth())
	{
		residents.GET("/me", cfg.ResidentHandler.Me)
		residents.POST("/check-in", cfg.Permission.Require("resident", "checkin"), cfg.ResidentHandler.CheckIn)
	}

	engine.GET("/hostels/:id/residents",
		cfg.AuthMiddleware.RequireAuth(),
		cfg.Permission.Require("resident", "read"),
		cfg.ResidentHandler.ListByHostel,
	)

	admin := engine.Group("/admin/residents")
	admin.Use(cfg.AuthMiddleware.RequireAuth())
	{
		admin.GET("/historical", cfg.Permission.Require("resident", "read"), cfg.ResidentHandler.ListHistorical)
		admin.GET("/:id", cfg.Permission.Require("resident", "read"), cfg.ResidentHandler.Get)
		admin.POST("/:id/check-out", cfg.Permission.Require("resident", "checkout"), cfg.ResidentHandler.CheckOut)
	}
}
