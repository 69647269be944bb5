package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort                = "8080"
	defaultDatabaseURL         = "prospectcrm.db"
	defaultJWTSecret           = "change-me-jwt-secret"
	defaultJWTAccessTTL        = "24h"
	defaultLogLevel            = "info"
	defaultRetentionDays       = "90"
	defaultCleanupSchedule     = "@daily"
	defaultImportMaxRows       = "5000"
	defaultCORSAllowedOrigins  = ""
	defaultNotificationEnabled = "true"
)

type Config struct {
	AppEnv                     string
	Port                       string
	DatabaseURL                string
	JWTSecret                  string
	JWTAccessTTL               time.Duration
	LogLevel                   string
	CORSAllowedOrigins         []string
	NotificationRetentionDays  int
	NotificationCleanupCron    string
	NotificationCleanupEnabled bool
	ImportMaxRows              int
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel)))
	cfg.NotificationCleanupCron = strings.TrimSpace(getEnv("NOTIFICATION_CLEANUP_SCHEDULE", defaultCleanupSchedule))
	cfg.NotificationCleanupEnabled = parseBoolEnv("NOTIFICATION_CLEANUP_ENABLED", defaultNotificationEnabled)

	for _, o := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSAllowedOrigins), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.NotificationRetentionDays, err = parseIntEnv("NOTIFICATION_RETENTION_DAYS", defaultRetentionDays)
	if err != nil {
		return nil, err
	}

	cfg.ImportMaxRows, err = parseIntEnv("IMPORT_MAX_ROWS", defaultImportMaxRows)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in a prod-like environment.
func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.NotificationRetentionDays <= 0 {
		return fmt.Errorf("NOTIFICATION_RETENTION_DAYS must be > 0")
	}
	if cfg.ImportMaxRows <= 0 {
		return fmt.Errorf("IMPORT_MAX_ROWS must be > 0")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
