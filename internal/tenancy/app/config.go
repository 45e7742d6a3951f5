package app

import (
	"os"
	"strconv"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/service"
)

type Config struct {
	Issuer         string // Required: issuer claim for tokens
	BootstrapToken string // Optional: token required to perform bootstrap

	TokenSecretFile      string        // Optional: path to HMAC secret file for session and invite tokens (default: ./token.secret)
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./causeway.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SessionTTL           time.Duration // Optional: session token lifetime (default: 12h)
	InviteTTL            time.Duration // Optional: invite lifetime (default: 7 days)
	AppBaseURL           string        // Public application URL embedded in invite links (default: http://localhost:8080)
	AccessDenyMode       string        // How permission denials render: message or redirect (default: message)
	AccessRedirectURL    string        // Redirect target in redirect mode
	SESRegion            string        // Optional: AWS region for SES delivery
	SESFromEmail         string        // Optional: sender address; empty disables delivery (invites are logged)
	SESFromName          string        // Optional: sender display name
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	InviteRetention      time.Duration // How long expired invites are kept before purging (default: 30 days)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:          os.Getenv("CAUSEWAY_ISSUER"),
		TokenSecretFile: getEnvOrDefault("CAUSEWAY_TOKEN_SECRET_FILE", "token.secret"),
		DatabaseFile:    getEnvOrDefault("CAUSEWAY_DATABASE_FILE", "causeway.db"),
		PepperFile:      getEnvOrDefault("CAUSEWAY_PEPPER_FILE", "pepper"),
		SessionTTL:      getEnvDurationOrDefault("SESSION_TTL", 12*time.Hour),
		InviteTTL:       getEnvDurationOrDefault("INVITE_TTL", service.DefaultInviteTTL),
		AppBaseURL:      getEnvOrDefault("APP_BASE_URL", "http://localhost:8080"),
		AccessDenyMode:  getEnvOrDefault("ACCESS_DENY_MODE", "message"),
		AccessRedirectURL: os.Getenv(
			"ACCESS_REDIRECT_URL",
		), // Only used in redirect mode
		SESRegion:    os.Getenv("SES_REGION"),
		SESFromEmail: os.Getenv("SES_FROM_EMAIL"), // Empty disables email delivery
		SESFromName:  getEnvOrDefault("SES_FROM_NAME", "Causeway"),
		BootstrapToken: os.Getenv(
			"BOOTSTRAP_TOKEN",
		), // Optional: if set, required to perform bootstrap
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		InviteRetention:      getEnvDurationOrDefault("INVITE_RETENTION", 30*24*time.Hour),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "causeway"
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
