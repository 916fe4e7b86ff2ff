package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bailanysta/api/pkg/jwtx"
)

type Config struct {
	JWTSecret      string        // Required: shared secret for bearer tokens
	Issuer         string        // Optional: issuer claim for tokens
	TokenTTL       time.Duration // Optional: bearer token lifetime (default: 7 days)
	DatabaseFile   string        // Optional: path to the SQLite database file (default: ./feed.db)
	PepperFile     string        // Optional: pepper file for password hashing ("" disables)
	AllowedOrigins []string      // Optional: CORS allow-list (default: "*")

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		JWTSecret:           os.Getenv("FEED_JWT_SECRET"),
		Issuer:              getEnvOrDefault("FEED_ISSUER", "bailanysta-feed"),
		TokenTTL:            getEnvDurationOrDefault("FEED_TOKEN_TTL", jwtx.DefaultTokenTTL),
		DatabaseFile:        getEnvOrDefault("FEED_DATABASE_FILE", "feed.db"),
		PepperFile:          os.Getenv("FEED_PEPPER_FILE"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	origins := getEnvOrDefault("FEED_ALLOWED_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
