package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the parcel service.
type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	StripeSecret string
	SiteDomain   string // frontend base URL for checkout redirects
}

// LoadConfig reads configuration from the environment, with a best-effort
// .env load for local development.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "3000"),
		MongoURI:     os.Getenv("MONGODB_URI"),
		MongoDB:      getEnv("MONGODB_DB", "zap_shift_db"),
		StripeSecret: os.Getenv("STRIPE_SECRET"),
		SiteDomain:   getEnv("SITE_DOMAIN", "http://localhost:3000"),
	}

	if cfg.MongoURI == "" || cfg.StripeSecret == "" {
		return nil, fmt.Errorf("MONGODB_URI and STRIPE_SECRET are required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
