package routes

import (
	"github.com/gin-gonic/gin"

	"hostelhub/internal/interfaces/http/handlers"
	"hostelhub/internal/interfaces/http/middleware"
)

// AnnouncementRouteConfig holds dependencies for announcement routes.
type AnnouncementRouteConfig struct {
	AnnouncementHandler *handlers.AnnouncementHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Permission          *middleware.PermissionMiddleware
}

// SetupAnnouncementRoutes configures announcement routes.
func SetupAnnouncementRoutes(engine *gin.Engine, cfg *AnnouncementRouteConfig) {
	announcements := engine.Group("/announcements")
	announcements.Use(cfg.AuthMiddleware.RequireAuth())
	{
		announcements.GET("", cfg.Permission.Require("announcement", "read"), cfg.AnnouncementHandler.ListPublished)

		announcements.POST("", cfg.Permission.Require("announcement", "create"), cfg.AnnouncementHandler.Create)
		announcements.PUT("/:id", cfg.Permission.Require("announcement", "update"), cfg.AnnouncementHandler.Update)
		announcements.DELETE("/:id", cfg.Permission.Require("announcement", "delete"), cfg.AnnouncementHandler.Delete)
		announcements.POST("/:id/publish", cfg.Permission.Require("announcement", "publish"), cfg.AnnouncementHandler.Publish)
		announcements.DELETE("/:id/publish", cfg.Permission.Require("announcement", "publish"), cfg.AnnouncementHandler.Unpublish)
	}

	engine.GET("/admin/announcements",
		cfg.AuthMiddleware.RequireAuth(),
		cfg.Permission.Require("announcement", "update"),
		cfg.AnnouncementHandler.List,
	)
}
