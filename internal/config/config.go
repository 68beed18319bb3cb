package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	// Storage
	StoragePath string

	// Auth
	JWTSecret     string
	JWTExpiration time.Duration

	// Analysis
	AnalysisDelay time.Duration // simulated latency of the A/B simulation run

	// Server
	ListenHost  string
	APIPort     string
	CORSOrigins string

	// Rate limit
	RateLimitPerMinute int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		StoragePath: getEnv("STORAGE_PATH", "dashboard.db"),

		JWTSecret:     getEnv("JWT_SECRET", "change-me-in-production"),
		JWTExpiration: time.Duration(getEnvInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,

		AnalysisDelay: time.Duration(getEnvInt("ANALYSIS_DELAY_MS", 3000)) * time.Millisecond,

		ListenHost:  getEnv("LISTEN_HOST", "127.0.0.1"),
		APIPort:     getEnv("API_PORT", "3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
	}
}

func (c *Config) Validate(log *zap.Logger) {
	if c.JWTSecret == "change-me-in-production" {
		log.Warn("JWT_SECRET is default, change in production")
	}
	if c.ListenHost != "127.0.0.1" && c.ListenHost != "localhost" {
		log.Warn("dashboard exposed beyond localhost", zap.String("host", c.ListenHost))
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
