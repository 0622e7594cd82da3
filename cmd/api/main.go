package main

// @title KnockBase API
// @version 1.0
// @description Door-to-door sales territory management: zones, teams, agents, and assignment consistency.

// @contact.name API Support
// @contact.email support@knockbase.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/knockbase/knockbase/config"
	"github.com/knockbase/knockbase/pkg/api/handlers"
	custommw "github.com/knockbase/knockbase/pkg/api/middleware"
	"github.com/knockbase/knockbase/pkg/audit"
	"github.com/knockbase/knockbase/pkg/cache"
	"github.com/knockbase/knockbase/pkg/database"
	"github.com/knockbase/knockbase/pkg/export"
	"github.com/knockbase/knockbase/pkg/geo"
	"github.com/knockbase/knockbase/pkg/jobs"
	"github.com/knockbase/knockbase/pkg/metrics"
	custommiddleware "github.com/knockbase/knockbase/pkg/middleware"
	"github.com/knockbase/knockbase/pkg/notify"
	"github.com/knockbase/knockbase/pkg/reconcile"
	"github.com/knockbase/knockbase/pkg/sweeper"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/knockbase/knockbase/docs" // Swagger docs (generated)
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database with SSL configuration
	sslCfg := &database.SSLConfig{
		Mode:         cfg.DBSSLMode,
		CertPath:     cfg.DBSSLCertPath,
		KeyPath:      cfg.DBSSLKeyPath,
		RootCertPath: cfg.DBSSLRootCertPath,
	}
	db, err := database.NewClientWithSSL(cfg.DatabaseURL, sslCfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)     // 5 req/min for login
	registerRateLimiter := custommiddleware.NewRateLimiter(3, 1) // 3 req/min for register

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.FrontendURL)))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.DefaultSecurityHeadersConfig()))

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "KnockBase API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 routes group with versioning middleware
	v1 := e.Group("/api/v1")
	v1.Use(custommiddleware.APIVersionMiddleware(custommiddleware.CurrentAPIVersion))

	// Version info endpoint (public)
	v1.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, custommiddleware.VersionInfo(custommiddleware.CurrentAPIVersion))
	})

	// Ping endpoint (public)
	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Initialize audit logger
	auditLogger := audit.NewService(db.Ent)
	log.Printf("✅ Audit logging initialized")

	// Initialize notification service (SendGrid email + Redis pub/sub)
	notifier := notify.NewService(db.Ent, redisClient, cfg.EmailFrom, cfg.EmailFromName, cfg.SendGridAPIKey)

	// Initialize the reconciliation engine and its collaborators
	engine := reconcile.NewEngine(db.Ent, notifier, prometheusMetrics, log.Default())
	sweepService := sweeper.NewService(db.Ent, engine, notifier, prometheusMetrics, log.Default())
	geoService := geo.NewService(db.Ent)
	exportService := export.NewService(db.Ent, engine.Ledger(), cfg.StorageLocalPath)
	log.Printf("✅ Reconciliation engine initialized")

	// Initialize cron manager for the activation sweep and nightly resync
	cronManager := jobs.NewCronManager(sweepService, engine, cfg.SweepIntervalMinutes, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, auditLogger)
	zoneHandler := handlers.NewZoneHandler(db.Ent, engine, geoService, exportService, auditLogger)
	teamHandler := handlers.NewTeamHandler(db.Ent, engine, auditLogger)
	adminHandler := handlers.NewAdminHandler(db.Ent, engine, sweepService, auditLogger)
	auditHandler := handlers.NewAuditHandler(auditLogger)

	jwtAuth := custommw.JWTMiddlewareWithDB(cfg.JWTSecret, db.Ent)
	adminOnly := custommiddleware.RequireAdmin(db.Ent)

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register, registerRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		authRoutes.GET("/me", authHandler.Me, jwtAuth)
	}

	// Zone routes (authenticated; mutations admin only)
	zoneRoutes := v1.Group("/zones", jwtAuth)
	{
		zoneRoutes.GET("", zoneHandler.List)
		zoneRoutes.GET("/:id", zoneHandler.Get)
		zoneRoutes.GET("/:id/history", zoneHandler.History)
		zoneRoutes.GET("/:id/export", zoneHandler.Export)

		zoneRoutes.POST("", zoneHandler.Create, adminOnly)
		zoneRoutes.PUT("/:id", zoneHandler.Update, adminOnly)
		zoneRoutes.DELETE("/:id", zoneHandler.Delete, adminOnly)
		zoneRoutes.POST("/:id/assign", zoneHandler.Assign, adminOnly)
		zoneRoutes.DELETE("/:id/assign", zoneHandler.Unassign, adminOnly)
	}

	// Team routes (authenticated; mutations admin only)
	teamRoutes := v1.Group("/teams", jwtAuth)
	{
		teamRoutes.GET("", teamHandler.List)
		teamRoutes.GET("/:id", teamHandler.Get)

		teamRoutes.POST("", teamHandler.Create, adminOnly)
		teamRoutes.POST("/:id/members", teamHandler.AddMember, adminOnly)
		teamRoutes.DELETE("/:id/members/:userId", teamHandler.RemoveMember, adminOnly)
	}

	// Admin maintenance routes
	adminRoutes := v1.Group("/admin", jwtAuth, adminOnly)
	{
		adminRoutes.POST("/resync", adminHandler.Resync)
		adminRoutes.POST("/sweep", adminHandler.Sweep)
		adminRoutes.GET("/stats", adminHandler.Stats)
		adminRoutes.GET("/audit-logs", auditHandler.GetRecentLogs)
	}

	// Audit routes (authenticated)
	v1.GET("/audit-logs/me", auditHandler.GetUserLogs, jwtAuth)

	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 KnockBase API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Activation sweep: every %d min; nightly resync at 3 AM", cfg.SweepIntervalMinutes)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Stop cron jobs
	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	// Gracefully shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
