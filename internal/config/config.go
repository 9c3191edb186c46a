// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
)

// Default admin credentials. Production refuses to start with them.
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin123"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Filesystem locations
	DataDir   string // JSON documents (json store backend)
	PublicDir string // static assets and uploads

	// Document store backend: "json", "postgres", "sqlite" or "memory"
	StoreBackend string
	SQLitePath   string

	// PostgreSQL connection (postgres store backend)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey page cache. Disabled when ValkeyHost is empty.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// S3-compatible upload storage. Disabled when S3Endpoint is empty.
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	// Admin access
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string // bcrypt; takes precedence over AdminPassword
	AdminCookieValue  string // sentinel stored in the admin-auth cookie
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "3000"),
		Env:  envOrDefault("APP_ENV", "development"),

		DataDir:   envOrDefault("DATA_DIR", "data"),
		PublicDir: envOrDefault("PUBLIC_DIR", "public"),

		StoreBackend: envOrDefault("STORE_BACKEND", "json"),
		SQLitePath:   envOrDefault("SQLITE_PATH", "data/nishat.db"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "nishat"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "nishat"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "nishat-uploads"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		AdminEmail:        envOrDefault("ADMIN_EMAIL", DefaultAdminEmail),
		AdminPassword:     envOrDefault("ADMIN_PASSWORD", DefaultAdminPassword),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminCookieValue:  envOrDefault("ADMIN_COOKIE_VALUE", "true"),
	}

	if cfg.Env == "production" {
		if cfg.AdminPasswordHash == "" && cfg.AdminPassword == DefaultAdminPassword {
			return nil, fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set in production")
		}
		if cfg.StoreBackend == "postgres" && cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Valkey host is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// S3Enabled reports whether uploads go to object storage.
func (c *Config) S3Enabled() bool {
	return c.S3Endpoint != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
