package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Password schemes understood by the credential layer.
const (
	SchemeBcrypt = "bcrypt"
	SchemePlain  = "plain"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port string
	Env  string

	// Database configuration
	DatabaseURL string

	// Redis configuration. An empty RedisURL switches the session store
	// to the in-memory implementation.
	RedisURL      string
	RedisPassword string

	// Session configuration. Zero TTL keeps sessions until logout.
	SessionTTL time.Duration

	// Credential storage scheme: bcrypt (default) or plain.
	PasswordScheme string

	// CORS
	AllowedOrigins []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		RedisURL:       getEnv("REDIS_URL", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		SessionTTL:     getEnvAsDuration("SESSION_TTL", 0),
		PasswordScheme: getEnv("PASSWORD_SCHEME", SchemeBcrypt),
		AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.PasswordScheme != SchemeBcrypt && c.PasswordScheme != SchemePlain {
		return fmt.Errorf("PASSWORD_SCHEME must be %q or %q", SchemeBcrypt, SchemePlain)
	}

	if c.SessionTTL < 0 {
		return fmt.Errorf("SESSION_TTL must not be negative")
	}

	// The plain scheme exists for parity with the legacy native_users table
	// and must not leak into production.
	if c.IsProduction() && c.PasswordScheme == SchemePlain {
		return fmt.Errorf("PASSWORD_SCHEME=plain is not allowed in production")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as a duration with a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvAsList gets a comma-separated environment variable with a default value
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
