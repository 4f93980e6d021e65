package main

import (
	"os"

	"storefront_service/config"
	"storefront_service/internal/delivery"
	"storefront_service/internal/domain"
	"storefront_service/internal/repository"
	"storefront_service/internal/usecase"
	"storefront_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', falling back to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Starting Storefront Service...")

	// Repository layer. The catalog is a static file; the cart store is
	// Postgres when a database URL is configured, a local file otherwise.
	catalogRepo := repository.NewFileCatalogRepository(cfg.CatalogPath, logger)

	var cartRepo domain.CartRepository
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		cartRepo, err = repository.NewPostgresCartRepository(database, logger)
		if err != nil {
			logger.Fatalf("Failed to initialize Postgres cart store: %v", err)
		}
		logger.Info("Cart persistence: Postgres")
	} else {
		cartRepo = repository.NewFileCartRepository(cfg.CartPath, logger)
		logger.Info("Cart persistence: file")
	}

	// Usecase layer. The catalog loads once here; a failed load leaves the
	// grid empty but the service up.
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, logger)
	cartUseCase := usecase.NewCartUseCase(cartRepo, catalogUseCase, logger)
	checkoutUseCase := usecase.NewCheckoutUseCase(cartUseCase, logger)
	logger.Info("Use cases initialized.")

	// Delivery layer.
	notifier := delivery.NewNotifier()
	productHandler := delivery.NewProductHandler(catalogUseCase, logger)
	cartHandler := delivery.NewCartHandler(cartUseCase, catalogUseCase, notifier, logger)
	checkoutHandler := delivery.NewCheckoutHandler(checkoutUseCase, notifier, logger)
	notificationHandler := delivery.NewNotificationHandler(notifier, logger)
	logger.Info("Handlers initialized.")

	router := gin.Default()
	router.Use(gin.Recovery())

	router.Use(func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		}).Info("Request received")
		c.Next()
		logger.WithFields(logrus.Fields{
			"status": c.Writer.Status(),
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Info("Request completed")
	})

	productHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router)
	notificationHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	logger.Info("Routes registered.")

	logger.Infof("Starting server on port %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
