package routes

import (
	"github.com/gin-gonic/gin"

	"hostelhub/internal/interfaces/http/handlers"
	"hostelhub/internal/interfaces/http/middleware"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permission     *middleware.PermissionMiddleware
	InitLimiter    *middleware.RateLimiter
	WebhookLimiter *middleware.RateLimiter
}

// SetupPaymentRoutes configures payment routes. The webhook and callback
// endpoints are unauthenticated because the gateway calls them directly;
// the webhook is verified by signature instead.
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	payments := engine.Group("/payments")
	{
		payments.POST("/webhook", cfg.WebhookLimiter.Limit(), cfg.PaymentHandler.Webhook)
		payments.GET("/callback", cfg.PaymentHandler.Callback)

		protected := payments.Group("")
		protected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			protected.POST("/initialize", cfg.Permission.Require("payment", "create"), cfg.InitLimiter.Limit(), cfg.PaymentHandler.Initialize)
			protected.POST("/top-up", cfg.Permission.Require("payment", "create"), cfg.InitLimiter.Limit(), cfg.PaymentHandler.TopUp)
			protected.GET("/balance", cfg.Permission.Require("payment", "read"), cfg.PaymentHandler.Balance)
			protected.GET("", cfg.Permission.Require("payment", "read"), cfg.PaymentHandler.ListMine)
		}
	}

	engine.GET("/hostels/:id/payments",
		cfg.AuthMiddleware.RequireAuth(),
		cfg.Permission.Require("payment", "reconcile"),
		cfg.PaymentHandler.ListForHostel,
	)

	admin := engine.Group("/admin/payments")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.Permission.Require("payment", "reconcile"))
	{
		admin.POST("/reconcile", cfg.PaymentHandler.FixOrphaned)
		admin.POST("/backfill-access-codes", cfg.PaymentHandler.BackfillAccessCodes)
	}
}
