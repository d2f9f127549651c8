package routes

import (
	"github.com/gin-gonic/gin"

	"hostelhub/internal/interfaces/http/handlers"
	"hostelhub/internal/interfaces/http/middleware"
)

// CalendarYearRouteConfig holds dependencies for calendar year routes.
type CalendarYearRouteConfig struct {
	CalendarYearHandler *handlers.CalendarYearHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Permission          *middleware.PermissionMiddleware
}

// SetupCalendarYearRoutes configures calendar year routes.
func SetupCalendarYearRoutes(engine *gin.Engine, cfg *CalendarYearRouteConfig) {
	years := engine.Group("/calendar-years")
	years.Use(cfg.AuthMiddleware.RequireAuth())
	{
		years.GET("/active", cfg.CalendarYearHandler.GetActive)
		years.GET("", cfg.Permission.Require("calendar_year", "read"), cfg.CalendarYearHandler.List)
		years.POST("", cfg.Permission.Require("calendar_year", "create"), cfg.CalendarYearHandler.Create)
		years.POST("/:id/activate", cfg.Permission.Require("calendar_year", "activate"), cfg.CalendarYearHandler.Activate)
	}
}
