package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/propertyai/agent-platform/internal/api/handler"
	"github.com/propertyai/agent-platform/internal/api/middleware"
	"github.com/propertyai/agent-platform/internal/core/domain"
	"github.com/propertyai/agent-platform/internal/core/ports"
	"github.com/propertyai/agent-platform/internal/core/service"
	mongodb "github.com/propertyai/agent-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/propertyai/agent-platform/internal/infrastructure/db/redis"
)

// Options carries everything the router needs beyond its connections.
type Options struct {
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Generator  ports.ContentGenerator
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("propertyai"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	draftRepo := mongodb.NewDraftRepository(db)
	leadRepo := mongodb.NewLeadRepository(db)
	tokenStore := redisdb.NewRefreshTokenStore(rdb)
	summaryCache := redisdb.NewSummaryCache(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, tokenStore, opts.JWTSecret, opts.AccessTTL, opts.RefreshTTL)
	onboardingService := service.NewOnboardingService(userRepo, opts.Generator, opts.Logger)
	propertyService := service.NewPropertyService(propertyRepo, opts.Logger)
	publishingService := service.NewPublishingService(draftRepo, propertyRepo, opts.Generator, opts.Logger)
	leadService := service.NewLeadService(leadRepo, opts.Logger)
	dashboardService := service.NewDashboardService(leadRepo, propertyRepo, draftRepo, userRepo, summaryCache, opts.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	onboardingHandler := handler.NewOnboardingHandler(onboardingService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	publishingHandler := handler.NewPublishingHandler(publishingService)
	leadHandler := handler.NewLeadHandler(leadService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authRequired := middleware.Auth(opts.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	v1 := e.Group("/api/v1")

	// --- Auth ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/refresh", authHandler.Refresh)
	v1.GET("/auth/me", authHandler.Me, authRequired)

	// --- Onboarding ---
	v1.POST("/onboarding/:user_id", onboardingHandler.SaveStep, authRequired)
	v1.POST("/onboarding/:user_id/complete", onboardingHandler.Complete, authRequired)
	v1.GET("/onboarding/:user_id", onboardingHandler.Progress, authRequired)
	v1.POST("/agent/branding-suggest", onboardingHandler.BrandingSuggest, authRequired)

	// --- Properties ---
	v1.POST("/properties", propertyHandler.Create, authRequired)
	v1.GET("/properties", propertyHandler.List, authRequired)
	v1.GET("/properties/:id", propertyHandler.Get, authRequired)

	// --- Social publishing ---
	v1.POST("/social/generate", publishingHandler.Generate, authRequired)
	v1.GET("/social/drafts/:property_id", publishingHandler.Drafts, authRequired)
	v1.PATCH("/social/drafts/:id", publishingHandler.UpdateDraft, authRequired)
	v1.POST("/social/drafts/:id/ready", publishingHandler.MarkReady, authRequired)
	v1.POST("/social/publish", publishingHandler.Publish, authRequired)

	// --- Leads (capture is public: embedded on listing pages) ---
	v1.POST("/leads", leadHandler.Capture)
	v1.GET("/leads", leadHandler.List, authRequired)
	v1.PATCH("/leads/:id/status", leadHandler.UpdateStatus, authRequired)

	// --- Admin (cross-agent views) ---
	v1.GET("/admin/leads", leadHandler.List, authRequired, adminOnly)

	// --- Dashboard ---
	v1.GET("/dashboard/summary", dashboardHandler.Summary, authRequired)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
