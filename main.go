package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/fadhlanhapp/trekshare-backend/config"
	"github.com/fadhlanhapp/trekshare-backend/handlers"
	"github.com/fadhlanhapp/trekshare-backend/logger"
	"github.com/fadhlanhapp/trekshare-backend/repository"
	"github.com/fadhlanhapp/trekshare-backend/routes"
	"github.com/fadhlanhapp/trekshare-backend/services"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Logging); err != nil {
		logger.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize New Relic
	var app *newrelic.Application
	if cfg.NewRelic.LicenseKey != "" {
		var err error
		app, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			logger.Warnf("Failed to initialize New Relic: %v", err)
		}
	}

	if cfg.Security.JWTSecret == "" {
		logger.Warnf("JWT_SECRET is not set, every request will be treated as anonymous")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize database
	if err := repository.InitDB(ctx, cfg.Database); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer repository.CloseDB()

	redisClient, err := repository.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	conn := repository.GetDB()
	stores := handlers.Stores{
		Regions:  repository.NewRegionRepository(conn),
		Treks:    repository.NewTrekRepository(conn),
		Guides:   repository.NewGuideRepository(conn),
		Bookings: repository.NewBookingRepository(conn),
		Drafts:   repository.NewDraftStore(redisClient, cfg.Redis.DraftTTL),
	}
	media := services.NewMediaService(cfg.Uploads.Dir, cfg.Uploads.ThumbnailWidth)

	// Set up Gin router
	router := gin.New()
	router.Use(gin.Recovery(), handlers.RequestLogger())

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, handlers.NewHandlerServices(stores, media), cfg)

	// Start server
	logger.Infof("Server starting on port %s...", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
