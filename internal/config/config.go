package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all application configuration. Every environment-derived
// behavior of the server is enumerated here; nothing else reads the
// environment at request time.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Admin    AdminConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port       string
	Production bool
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// AuthConfig holds token-signing settings.
type AuthConfig struct {
	JWTSecret string
}

// AdminConfig holds the bootstrap admin identity the seeder converges to.
type AdminConfig struct {
	Email    string
	Password string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnv("PORT", "8080"),
			Production: os.Getenv("APP_ENV") == "production",
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "inkwell"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: 25,
			MaxIdleConns: 5,
			MaxLifetime:  time.Hour,
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@example.com"),
			Password: getEnv("ADMIN_PASSWORD", "password"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants that would otherwise only fail deep inside a
// request. The JWT secret is checked lazily by the token service so that its
// absence surfaces as a server-configuration error, not a startup crash in
// environments that never serve admin traffic.
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s application_name=inkwell",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
