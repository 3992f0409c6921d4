package main

// @title RealtyCRM API
// @version 1.0
// @description Relationship-management backend for real-estate lead tracking, matching and segmentation.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jordanlanch/realtycrm/config"
	"github.com/jordanlanch/realtycrm/pkg/api/handlers"
	"github.com/jordanlanch/realtycrm/pkg/cache"
	importpkg "github.com/jordanlanch/realtycrm/pkg/import"
	"github.com/jordanlanch/realtycrm/pkg/jobs"
	"github.com/jordanlanch/realtycrm/pkg/leads"
	"github.com/jordanlanch/realtycrm/pkg/logger"
	"github.com/jordanlanch/realtycrm/pkg/metrics"
	custommiddleware "github.com/jordanlanch/realtycrm/pkg/middleware"
	"github.com/jordanlanch/realtycrm/pkg/store"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)

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

	// Initialize Redis for working-set snapshots
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	snapshots := cache.NewSnapshotStore(redisClient)

	// Remote lead store adapter
	storeClient := store.NewClient(cfg.StoreBaseURL, time.Duration(cfg.StoreTimeoutSeconds)*time.Second)
	log.Printf("✅ Lead store adapter configured (%s)", cfg.StoreBaseURL)

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Working-set service and initial load. A store outage at boot is not
	// fatal; the snapshot keeps the dashboard usable.
	leadService := leads.NewService(storeClient, snapshots, appLogger)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		resp, err := leadService.Refresh(ctx)
		cancel()
		if err != nil {
			log.Printf("⚠️  Initial lead load failed: %v", err)
		} else if resp.Refreshed {
			log.Printf("✅ Working set loaded: %d leads from the store", resp.Total)
		} else {
			log.Printf("⚠️  Lead store unavailable, serving %d leads from the last snapshot", resp.Total)
		}
		prometheusMetrics.ObserveRefresh(resp.Source)
		prometheusMetrics.SetWorkingSetSize(resp.Total)
	}

	importService := importpkg.NewExcelImportService(appLogger)
	importConfig := importpkg.ExcelConfig{
		MaxRows:     cfg.ImportMaxRows,
		PhoneRegion: cfg.DefaultPhoneRegion,
	}

	// Initialize cron manager for the periodic refresh
	cronManager := jobs.NewCronManager(leadService, prometheusMetrics, log.Default())
	if err := cronManager.SetupJobs(cfg.RefreshCronSpec); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)

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

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "RealtyCRM API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		// Redis is the only hard dependency; the lead store may be down
		// without making the dashboard unhealthy.
		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status": "healthy",
			"cache":  "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API v1 routes group with versioning middleware
	v1 := e.Group("/api/v1")
	v1.Use(custommiddleware.APIVersionMiddleware(custommiddleware.CurrentAPIVersion))

	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Initialize handlers
	leadHandler := handlers.NewLeadHandler(leadService, prometheusMetrics)
	activityHandler := handlers.NewActivityHandler(leadService)
	importHandler := handlers.NewImportHandler(leadService, importService, importConfig)
	referenceHandler := handlers.NewReferenceHandler()
	userHandler := handlers.NewUserHandler(leadService)

	// Lead routes
	leadsGroup := v1.Group("/leads")
	{
		leadsGroup.GET("", leadHandler.ListLeads)
		leadsGroup.POST("", leadHandler.CreateLead)
		leadsGroup.POST("/refresh", leadHandler.RefreshLeads)
		leadsGroup.POST("/import", importHandler.ImportLeads)
		leadsGroup.GET("/:id", leadHandler.GetLead)
		leadsGroup.PUT("/:id", leadHandler.UpdateLead)
		leadsGroup.DELETE("/:id", leadHandler.DeleteLead)

		// Activity
		leadsGroup.POST("/:id/notes", activityHandler.AddNote)
		leadsGroup.POST("/:id/calls", activityHandler.LogCall)
		leadsGroup.POST("/:id/calls/:index/points", activityHandler.AddCallPoint)
		leadsGroup.POST("/:id/tasks", activityHandler.AddTask)
		leadsGroup.PATCH("/:id/tasks/:taskId/toggle", activityHandler.ToggleTask)
		leadsGroup.PATCH("/:id/tasks/:taskId/cancel", activityHandler.CancelTask)
		leadsGroup.POST("/:id/showings", activityHandler.ScheduleShowing)
	}

	// Reference tables and user directory (public)
	v1.GET("/reference", referenceHandler.GetReferenceTables)
	v1.GET("/users", userHandler.ListUsers)

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 RealtyCRM API starting on %s", address)
	log.Printf("📝 Log level: %s, Log format: %s", cfg.LogLevel, cfg.LogFormat)
	log.Printf("🌍 CORS: %s", strings.Join(cfg.CORSAllowedOrigins, ", "))
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Refresh schedule: %s", cfg.RefreshCronSpec)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
