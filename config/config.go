package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	BackendBaseURL string
	SessionSecret  string
	RequestTimeout time.Duration
	AllowedOrigins []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeoutSec, _ := strconv.Atoi(getEnv("BACKEND_TIMEOUT_SECONDS", "30"))

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		BackendBaseURL: getEnv("BACKEND_API_URL", "http://localhost:8081"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		RequestTimeout: time.Duration(timeoutSec) * time.Second,
		AllowedOrigins: []string{getEnv("FRONTEND_URL", "http://localhost:8080")},
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
