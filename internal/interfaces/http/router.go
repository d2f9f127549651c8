package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	announcementApp "hostelhub/internal/application/announcement"
	authUsecases "hostelhub/internal/application/auth/usecases"
	calendaryearApp "hostelhub/internal/application/calendaryear"
	hostelApp "hostelhub/internal/application/hostel"
	maintenanceApp "hostelhub/internal/application/maintenance"
	paymentUsecases "hostelhub/internal/application/payment/usecases"
	residentUsecases "hostelhub/internal/application/resident/usecases"
	roomApp "hostelhub/internal/application/room"
	"hostelhub/internal/infrastructure/auth"
	"hostelhub/internal/infrastructure/email"
	"hostelhub/internal/infrastructure/gateway"
	"hostelhub/internal/infrastructure/permission"
	"hostelhub/internal/infrastructure/repository"
	"hostelhub/internal/interfaces/http/handlers"
	"hostelhub/internal/interfaces/http/middleware"
	"hostelhub/internal/interfaces/http/routes"
	"hostelhub/internal/infrastructure/config"
	"hostelhub/internal/shared/db"
	"hostelhub/internal/shared/logger"
	"hostelhub/internal/shared/services/markdown"
)

// Router wires handlers, middleware and routes onto a gin engine.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	authHandler         *handlers.AuthHandler
	paymentHandler      *handlers.PaymentHandler
	hostelHandler       *handlers.HostelHandler
	roomHandler         *handlers.RoomHandler
	residentHandler     *handlers.ResidentHandler
	calendarYearHandler *handlers.CalendarYearHandler
	announcementHandler *handlers.AnnouncementHandler
	maintenanceHandler  *handlers.MaintenanceHandler

	authMiddleware *middleware.AuthMiddleware
	permission     *middleware.PermissionMiddleware
	initLimiter    *middleware.RateLimiter
	webhookLimiter *middleware.RateLimiter

	reconcileUC *paymentUsecases.ReconcileOrphanedPaymentsUseCase
}

// NewRouter builds the HTTP router and all of its dependencies.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	userRepo := repository.NewUserRepository(database)
	hostelRepo := repository.NewHostelRepository(database)
	roomRepo := repository.NewRoomRepository(database)
	yearRepo := repository.NewCalendarYearRepository(database)
	residentRepo := repository.NewResidentProfileRepository(database)
	historicalRepo := repository.NewHistoricalResidentRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)
	webhookRepo := repository.NewWebhookEventRepository(database)
	announcementRepo := repository.NewAnnouncementRepository(database)
	maintenanceRepo := repository.NewMaintenanceRequestRepository(database)

	txManager := db.NewTransactionManager(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(&cfg.Auth.JWT)

	enforcer, err := permission.NewEnforcer(database, log)
	if err != nil {
		return nil, err
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return nil, err
	}

	paymentGateway := gateway.NewPaystackGateway(&cfg.Paystack, log)
	notifier := email.NewSMTPEmailService(&cfg.Email)
	markdownService := markdown.NewService()

	registerUC := authUsecases.NewRegisterUseCase(txManager, userRepo, residentRepo, hasher, log)
	loginUC := authUsecases.NewLoginUseCase(userRepo, jwtService, hasher, log)
	refreshUC := authUsecases.NewRefreshTokenUseCase(userRepo, jwtService)

	initializeUC := paymentUsecases.NewInitializePaymentUseCase(
		paymentRepo, roomRepo, hostelRepo, yearRepo, residentRepo,
		paymentGateway, cfg.Paystack.CallbackURL, log,
	)
	topUpUC := paymentUsecases.NewInitializeTopUpUseCase(
		paymentRepo, residentRepo, roomRepo, hostelRepo,
		paymentGateway, cfg.Paystack.CallbackURL, log,
	)
	confirmUC := paymentUsecases.NewConfirmPaymentUseCase(
		txManager, paymentRepo, residentRepo, roomRepo, hostelRepo, yearRepo,
		paymentGateway, notifier, log,
	)
	webhookUC := paymentUsecases.NewProcessWebhookUseCase(paymentGateway, webhookRepo, confirmUC, log)
	balanceUC := paymentUsecases.NewGetBalanceUseCase(paymentRepo, residentRepo, roomRepo, hostelRepo)
	listPaymentsUC := paymentUsecases.NewListPaymentsUseCase(paymentRepo, residentRepo)
	reconcileUC := paymentUsecases.NewReconcileOrphanedPaymentsUseCase(
		txManager, paymentRepo, residentRepo, historicalRepo, log,
	)
	backfillUC := paymentUsecases.NewBackfillAccessCodesUseCase(residentRepo, yearRepo, notifier, log)

	checkInUC := residentUsecases.NewCheckInUseCase(residentRepo, log)
	checkOutUC := residentUsecases.NewCheckOutUseCase(txManager, residentRepo, historicalRepo, roomRepo, log)
	residentQueries := residentUsecases.NewResidentQueries(residentRepo, historicalRepo)

	hostelService := hostelApp.NewService(hostelRepo, log)
	roomService := roomApp.NewService(roomRepo, hostelRepo, log)
	yearService := calendaryearApp.NewService(txManager, yearRepo, log)
	announcementService := announcementApp.NewService(announcementRepo, markdownService, log)
	maintenanceService := maintenanceApp.NewService(maintenanceRepo, residentRepo, log)

	return &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,

		authHandler: handlers.NewAuthHandler(registerUC, loginUC, refreshUC, log),
		paymentHandler: handlers.NewPaymentHandler(
			initializeUC, topUpUC, confirmUC, webhookUC,
			balanceUC, listPaymentsUC, reconcileUC, backfillUC, log,
		),
		hostelHandler:       handlers.NewHostelHandler(hostelService, log),
		roomHandler:         handlers.NewRoomHandler(roomService, log),
		residentHandler:     handlers.NewResidentHandler(checkInUC, checkOutUC, residentQueries, log),
		calendarYearHandler: handlers.NewCalendarYearHandler(yearService, log),
		announcementHandler: handlers.NewAnnouncementHandler(announcementService, log),
		maintenanceHandler:  handlers.NewMaintenanceHandler(maintenanceService, log),

		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		permission:     middleware.NewPermissionMiddleware(enforcer, log),
		initLimiter:    middleware.NewRateLimiter(redisClient, cfg.RateLimit.PaymentInitPerMinute, time.Minute),
		webhookLimiter: middleware.NewRateLimiter(redisClient, cfg.RateLimit.WebhookPerMinute, time.Minute),

		reconcileUC: reconcileUC,
	}, nil
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})

	routes.SetupPaymentRoutes(r.engine, &routes.PaymentRouteConfig{
		PaymentHandler: r.paymentHandler,
		AuthMiddleware: r.authMiddleware,
		Permission:     r.permission,
		InitLimiter:    r.initLimiter,
		WebhookLimiter: r.webhookLimiter,
	})

	routes.SetupHostelRoutes(r.engine, &routes.HostelRouteConfig{
		HostelHandler:  r.hostelHandler,
		AuthMiddleware: r.authMiddleware,
		Permission:     r.permission,
	})

	routes.SetupRoomRoutes(r.engine, &routes.RoomRouteConfig{
		RoomHandler:    r.roomHandler,
		AuthMiddleware: r.authMiddleware,
		Permission:     r.permission,
	})

	routes.SetupResidentRoutes(r.engine, &routes.ResidentRouteConfig{
		ResidentHandler: r.residentHandler,
		AuthMiddleware:  r.authMiddleware,
		Permission:      r.permission,
	})

	routes.SetupCalendarYearRoutes(r.engine, &routes.CalendarYearRouteConfig{
		CalendarYearHandler: r.calendarYearHandler,
		AuthMiddleware:      r.authMiddleware,
		Permission:          r.permission,
	})

	routes.SetupAnnouncementRoutes(r.engine, &routes.AnnouncementRouteConfig{
		AnnouncementHandler: r.announcementHandler,
		AuthMiddleware:      r.authMiddleware,
		Permission:          r.permission,
	})

	routes.SetupMaintenanceRoutes(r.engine, &routes.MaintenanceRouteConfig{
		MaintenanceHandler: r.maintenanceHandler,
		AuthMiddleware:     r.authMiddleware,
		Permission:         r.permission,
	})
}

// ReconcileUseCase exposes the orphan sweep for the scheduler.
func (r *Router) ReconcileUseCase() *paymentUsecases.ReconcileOrphanedPaymentsUseCase {
	return r.reconcileUC
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
