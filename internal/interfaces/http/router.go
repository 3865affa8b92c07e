// Package http wires repositories, use cases and handlers into the Gin
// engine. All construction happens here so the rest of the tree stays
// free of wiring concerns.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	apikeyUC "kostera/internal/application/apikey/usecases"
	authUC "kostera/internal/application/auth/usecases"
	bookingUC "kostera/internal/application/booking/usecases"
	customerUC "kostera/internal/application/customer/usecases"
	exportUC "kostera/internal/application/export/usecases"
	financeUC "kostera/internal/application/finance/usecases"
	kostUC "kostera/internal/application/kost/usecases"
	publicUC "kostera/internal/application/public/usecases"
	staffUC "kostera/internal/application/staff/usecases"
	subscriptionUC "kostera/internal/application/subscription/usecases"
	tenantUC "kostera/internal/application/tenant/usecases"
	"kostera/internal/infrastructure/auth"
	"kostera/internal/infrastructure/config"
	"kostera/internal/infrastructure/ratelimit"
	"kostera/internal/infrastructure/repository"
	"kostera/internal/interfaces/http/handlers"
	"kostera/internal/interfaces/http/middleware"
	"kostera/internal/interfaces/http/routes"
	"kostera/internal/shared/db"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/markdown"
	"kostera/internal/shared/utils"
)

// Router holds the configured Gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full HTTP surface from its dependencies.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestLogger(log.Named("http")))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	// infrastructure
	txManager := db.NewTransactionManager(database)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	apiCallLimiter := ratelimit.NewRedisAPICallLimiter(redisClient)

	// repositories
	tenantRepo := repository.NewTenantRepository(database, log)
	userRepo := repository.NewUserRepository(database, log)
	planRepo := repository.NewPlanRepository(database, log)
	subscriptionRepo := repository.NewSubscriptionRepository(database, log)
	usageCounter := repository.NewUsageCounter(database, log)
	kostRepo := repository.NewKostRepository(database, log)
	roomTypeRepo := repository.NewRoomTypeRepository(database, log)
	roomRepo := repository.NewRoomRepository(database, log)
	customerRepo := repository.NewCustomerRepository(database, log)
	bookingRepo := repository.NewBookingRepository(database, log)
	invoiceRepo := repository.NewInvoiceRepository(database, log)
	paymentRepo := repository.NewPaymentRepository(database, log)
	expenseRepo := repository.NewExpenseRepository(database, log)
	apiKeyRepo := repository.NewAPIKeyRepository(database, log)

	// use cases
	checkLimitUC := subscriptionUC.NewCheckLimitUseCase(subscriptionRepo, planRepo, usageCounter, log)
	checkFeatureUC := subscriptionUC.NewCheckFeatureUseCase(subscriptionRepo, planRepo, log)
	currentPlanUC := subscriptionUC.NewGetCurrentPlanUseCase(subscriptionRepo, planRepo, usageCounter, log)
	assignPlanUC := subscriptionUC.NewAssignPlanUseCase(subscriptionRepo, planRepo, txManager, log)
	startTrialUC := subscriptionUC.NewStartTrialUseCase(subscriptionRepo, planRepo,
		cfg.Subscription.DefaultPlan, cfg.Subscription.TrialDays, log)

	registerUC := authUC.NewRegisterUseCase(tenantRepo, userRepo, hasher, jwtService, startTrialUC, txManager, log)
	loginUC := authUC.NewLoginUseCase(userRepo, hasher, jwtService, log)

	// middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	tenantGuard := middleware.NewTenantGuard(tenantRepo, log)
	planGuard := middleware.NewPlanGuard(checkLimitUC, checkFeatureUC, log)
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(apiKeyRepo, subscriptionRepo, planRepo, apiCallLimiter, log)

	// handlers
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, log)
	planHandler := handlers.NewPlanHandler(
		subscriptionUC.NewCreatePlanUseCase(planRepo, log),
		subscriptionUC.NewUpdatePlanUseCase(planRepo, log),
		subscriptionUC.NewListPlansUseCase(planRepo, log),
		subscriptionUC.NewGetPlanUseCase(planRepo, log),
		subscriptionUC.NewDeletePlanUseCase(planRepo, log),
		log,
	)
	subscriptionHandler := handlers.NewSubscriptionHandler(currentPlanUC, assignPlanUC, log)
	tenantHandler := handlers.NewTenantHandler(
		tenantUC.NewListTenantsUseCase(tenantRepo, log),
		tenantUC.NewSuspendTenantUseCase(tenantRepo, log),
		tenantUC.NewReactivateTenantUseCase(tenantRepo, log),
		tenantUC.NewGetTenantProfileUseCase(tenantRepo, log),
		tenantUC.NewUpdateTenantProfileUseCase(tenantRepo, log),
		log,
	)
	kostHandler := handlers.NewKostHandler(
		kostUC.NewCreateKostUseCase(kostRepo, checkLimitUC, log),
		kostUC.NewListKostsUseCase(kostRepo, log),
		kostUC.NewGetKostUseCase(kostRepo, log),
		kostUC.NewUpdateKostUseCase(kostRepo, log),
		kostUC.NewDeleteKostUseCase(kostRepo, log),
		log,
	)
	roomTypeHandler := handlers.NewRoomTypeHandler(
		kostUC.NewCreateRoomTypeUseCase(roomTypeRepo, log),
		kostUC.NewListRoomTypesUseCase(roomTypeRepo, log),
		kostUC.NewUpdateRoomTypeUseCase(roomTypeRepo, log),
		kostUC.NewDeleteRoomTypeUseCase(roomTypeRepo, log),
		log,
	)
	roomHandler := handlers.NewRoomHandler(
		kostUC.NewCreateRoomUseCase(roomRepo, kostRepo, roomTypeRepo, checkLimitUC, log),
		kostUC.NewListRoomsUseCase(roomRepo, log),
		kostUC.NewUpdateRoomUseCase(roomRepo, log),
		kostUC.NewSetRoomMaintenanceUseCase(roomRepo, log),
		kostUC.NewDeleteRoomUseCase(roomRepo, log),
		log,
	)
	staffHandler := handlers.NewStaffHandler(
		staffUC.NewCreateStaffUseCase(userRepo, hasher, checkLimitUC, log),
		staffUC.NewListStaffUseCase(userRepo, log),
		staffUC.NewRemoveStaffUseCase(userRepo, log),
		log,
	)
	customerHandler := handlers.NewCustomerHandler(
		customerUC.NewCreateCustomerUseCase(customerRepo, log),
		customerUC.NewListCustomersUseCase(customerRepo, log),
		customerUC.NewUpdateCustomerUseCase(customerRepo, log),
		customerUC.NewDeleteCustomerUseCase(customerRepo, log),
		log,
	)
	bookingHandler := handlers.NewBookingHandler(
		bookingUC.NewCreateBookingUseCase(bookingRepo, invoiceRepo, roomRepo, customerRepo, txManager, log),
		bookingUC.NewRemoveBookingUseCase(bookingRepo, roomRepo, txManager, log),
		bookingUC.NewListBookingsUseCase(bookingRepo, log),
		bookingUC.NewListInvoicesUseCase(invoiceRepo, log),
		bookingUC.NewPayInvoiceUseCase(invoiceRepo, paymentRepo, txManager, log),
		log,
	)
	financeHandler := handlers.NewFinanceHandler(
		financeUC.NewCreateExpenseUseCase(expenseRepo, log),
		financeUC.NewListExpensesUseCase(expenseRepo, log),
		financeUC.NewDeleteExpenseUseCase(expenseRepo, log),
		financeUC.NewGetFinanceSummaryUseCase(invoiceRepo, expenseRepo, log),
		log,
	)
	exportHandler := handlers.NewExportHandler(
		exportUC.NewExportRoomsCSVUseCase(roomRepo, log),
		exportUC.NewExportInvoicesCSVUseCase(invoiceRepo, log),
		log,
	)
	publicHandler := handlers.NewPublicHandler(
		publicUC.NewGetStorefrontUseCase(tenantRepo, kostRepo, roomRepo, markdown.NewRenderer(), log),
		log,
	)
	apiKeyHandler := handlers.NewAPIKeyHandler(
		apikeyUC.NewGenerateAPIKeyUseCase(apiKeyRepo, log),
		apikeyUC.NewListAPIKeysUseCase(apiKeyRepo, log),
		apikeyUC.NewRevokeAPIKeyUseCase(apiKeyRepo, log),
		apikeyUC.NewGetAPIUsageUseCase(apiCallLimiter, log),
		log,
	)

	engine.GET("/health", func(c *gin.Context) {
		utils.OKResponse(c, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{AuthHandler: authHandler})
	routes.SetupPlanRoutes(engine, &routes.PlanRouteConfig{
		PlanHandler:    planHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		TenantHandler:       tenantHandler,
		SubscriptionHandler: subscriptionHandler,
		AuthMiddleware:      authMiddleware,
	})
	routes.SetupTenantRoutes(engine, &routes.TenantRouteConfig{
		TenantHandler:       tenantHandler,
		SubscriptionHandler: subscriptionHandler,
		APIKeyHandler:       apiKeyHandler,
		AuthMiddleware:      authMiddleware,
		TenantGuard:         tenantGuard,
	})
	routes.SetupKostRoutes(engine, &routes.KostRouteConfig{
		KostHandler:     kostHandler,
		RoomTypeHandler: roomTypeHandler,
		RoomHandler:     roomHandler,
		AuthMiddleware:  authMiddleware,
		TenantGuard:     tenantGuard,
		PlanGuard:       planGuard,
	})
	routes.SetupStaffRoutes(engine, &routes.StaffRouteConfig{
		StaffHandler:   staffHandler,
		AuthMiddleware: authMiddleware,
		TenantGuard:    tenantGuard,
		PlanGuard:      planGuard,
	})
	routes.SetupCustomerRoutes(engine, &routes.CustomerRouteConfig{
		CustomerHandler: customerHandler,
		AuthMiddleware:  authMiddleware,
		TenantGuard:     tenantGuard,
	})
	routes.SetupBookingRoutes(engine, &routes.BookingRouteConfig{
		BookingHandler: bookingHandler,
		AuthMiddleware: authMiddleware,
		TenantGuard:    tenantGuard,
	})
	routes.SetupFinanceRoutes(engine, &routes.FinanceRouteConfig{
		FinanceHandler: financeHandler,
		ExportHandler:  exportHandler,
		AuthMiddleware: authMiddleware,
		TenantGuard:    tenantGuard,
		PlanGuard:      planGuard,
	})
	routes.SetupPublicRoutes(engine, &routes.PublicRouteConfig{
		PublicHandler:    publicHandler,
		APIKeyMiddleware: apiKeyMiddleware,
	})

	engine.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusNotFound, "route not found")
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying Gin engine, mainly for the server runner
// and tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
