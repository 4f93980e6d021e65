package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort    string `envconfig:"HTTP_PORT"    default:":8080"`
	LogLevel    string `envconfig:"LOG_LEVEL"    default:"info"`
	CatalogPath string `envconfig:"CATALOG_PATH" default:"productlist.json"`
	CartPath    string `envconfig:"CART_PATH"    default:"cart.json"`
	// When set, the cart is persisted in Postgres instead of the cart file.
	DatabaseURL string `envconfig:"DATABASE_URL"`
}

// LoadConfig reads configuration from the environment, with an optional .env
// file layered in first.
func LoadConfig(logger *logrus.Logger) *Config {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Fatalf("Failed to process configuration from environment variables: %v", err)
	}

	logger.Infof("Configuration loaded: HTTPPort=%s, LogLevel=%s, CatalogPath=%s", cfg.HTTPPort, cfg.LogLevel, cfg.CatalogPath)
	if cfg.DatabaseURL != "" {
		logger.Info("Configuration loaded: cart persistence backed by Postgres")
	} else {
		logger.Infof("Configuration loaded: cart persistence backed by file '%s'", cfg.CartPath)
	}
	return &cfg
}
