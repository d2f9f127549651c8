package routes

import (
	"github.com/gin-gonic/gin"

	"hostelhub/internal/interfaces/http/handlers"
	"hostelhub/internal/interfaces/http/middleware"
)

// RoomRouteConfig holds dependencies for room routes.
type RoomRouteConfig struct {
	RoomHandler    *handlers.RoomHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permission     *middleware.PermissionMiddleware
}

// SetupRoomRoutes configures room routes, including the nested
// hostel room collection.
func SetupRoomRoutes(engine *gin.Engine, cfg *RoomRouteConfig) {
	hostelRooms := engine.Group("/hostels/:id/rooms")
	hostelRooms.Use(cfg.AuthMiddleware.RequireAuth())
	{
		hostelRooms.GET("", cfg.Permission.Require("room", "read"), cfg.RoomHandler.ListByHostel)
		hostelRooms.POST("", cfg.Permission.Require("room", "create"), cfg.RoomHandler.Create)
	}

	rooms := engine.Group("/rooms")
	rooms.Use(cfg.AuthMiddleware.RequireAuth())
	{
		rooms.GET("/:id", cfg.Permission.Require("room", "read"), cfg.RoomHandler.Get)
		rooms.PUT("/:id/price", cfg.Permission.Require("room", "update"), cfg.RoomHandler.UpdatePrice)
		rooms.POST("/:id/maintenance", cfg.Permission.Require("room", "update"), cfg.RoomHandler.StartMaintenance)
		rooms.DELETE("/:id/maintenance", cfg.Permission.Require("room", "update"), cfg.RoomHandler.EndMaintenance)
		rooms.DELETE("/:id", cfg.Permission.Require("room", "delete"), cfg.RoomHandler.Delete)
	}
}
