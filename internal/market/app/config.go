package app

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// MinJWTSecretLen is the floor for the HS256 signing secret. Anything
// shorter is a process misconfiguration and refuses to start.
const MinJWTSecretLen = 32

var ErrShortJWTSecret = errors.New("MARKET_JWT_SECRET must be set and at least 32 bytes")

type Config struct {
	Issuer    string // Issuer claim for session tokens
	JWTSecret string // Required: HS256 signing secret, min 32 bytes

	DatabaseFile string // Path to SQLite database file (default: ./market.db)
	PepperFile   string // Path to password-hashing pepper file (default: ./pepper)
	Seed         bool   // Seed demo accounts on first start (default: true)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment, after loading a
// local .env file when one exists.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Issuer:              getEnvOrDefault("MARKET_ISSUER", "market-api"),
		JWTSecret:           os.Getenv("MARKET_JWT_SECRET"),
		DatabaseFile:        getEnvOrDefault("MARKET_DATABASE_FILE", "market.db"),
		PepperFile:          getEnvOrDefault("MARKET_PEPPER_FILE", "pepper"),
		Seed:                getEnvBoolOrDefault("MARKET_SEED", true),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

// Validate catches startup misconfiguration before any listener opens.
func (c Config) Validate() error {
	if len(c.JWTSecret) < MinJWTSecretLen {
		return ErrShortJWTSecret
	}
	return nil
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
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
