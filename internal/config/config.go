// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string

	MongoURL    string
	MongoDBName string

	JWTSecret           string
	JWTExpiresInSeconds int64

	ResetTokenTTL    time.Duration
	ResetLinkBaseURL string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	SMTPUseTLS   bool

	// AuthReturnResetToken echoes the reset token in the forgot-password
	// response so the flow can be exercised without a mail server.
	// Development aid only.
	AuthReturnResetToken bool
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		MongoURL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDBName: getEnv("MONGO_DB_NAME", "jobboard"),

		JWTSecret:           getEnv("JWT_SECRET", "dev-secret"),
		JWTExpiresInSeconds: getEnvInt64("JWT_EXPIRES_IN_SECONDS", 86400),

		ResetTokenTTL:    time.Duration(getEnvInt64("RESET_TOKEN_TTL_MINUTES", 10)) * time.Minute,
		ResetLinkBaseURL: getEnv("RESET_LINK_BASE_URL", "http://localhost:5000/reset-password"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "no-reply@jobboard.local"),
		SMTPUseTLS:   getEnvBool("SMTP_USE_TLS", false),

		AuthReturnResetToken: getEnvBool("AUTH_RETURN_RESET_TOKEN", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
