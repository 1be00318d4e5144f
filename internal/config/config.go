package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Admin authentication configuration
	Auth AuthConfig

	// Cover image upload configuration
	Upload UploadConfig

	// Catalog read-path configuration
	Catalog CatalogConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database connection settings
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

// BreakGlassIdentity is an operator account sourced from the environment
// and seeded into the admin_users table at startup.
type BreakGlassIdentity struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// AuthConfig holds admin session settings
type AuthConfig struct {
	JWTSecret    string
	TokenTTL     time.Duration
	PrimaryAdmin BreakGlassIdentity
	Developer    BreakGlassIdentity
}

// UploadConfig holds cover image upload settings
type UploadConfig struct {
	CloudinaryURL string
	Folder        string
	MaxSize       int64 // in bytes
}

// CatalogConfig holds catalog read-path settings
type CatalogConfig struct {
	// FixtureFallback serves the built-in demo catalog on store read
	// failures instead of returning an error. Off by default.
	FixtureFallback bool
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "barelyrics"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			TokenTTL:  getDurationEnv("TOKEN_TTL", 24*time.Hour),
			PrimaryAdmin: BreakGlassIdentity{
				Email:    os.Getenv("ADMIN_EMAIL"),
				Password: os.Getenv("ADMIN_PASSWORD"),
				Name:     "Primary Admin",
				Role:     "admin",
			},
			Developer: BreakGlassIdentity{
				Email:    os.Getenv("DEVELOPER_EMAIL"),
				Password: os.Getenv("DEVELOPER_PASSWORD"),
				Name:     "Developer",
				Role:     "developer",
			},
		},
		Upload: UploadConfig{
			CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
			Folder:        getEnv("UPLOAD_FOLDER", "song-covers"),
			MaxSize:       getInt64Env("MAX_UPLOAD_SIZE", 5*1024*1024), // 5MB
		},
		Catalog: CatalogConfig{
			FixtureFallback: getBoolEnv("CATALOG_FIXTURE_FALLBACK", false),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// BreakGlassIdentities returns the configured operator identities that
// have both an email and a password set.
func (c *AuthConfig) BreakGlassIdentities() []BreakGlassIdentity {
	var ids []BreakGlassIdentity
	if c.PrimaryAdmin.Email != "" && c.PrimaryAdmin.Password != "" {
		ids = append(ids, c.PrimaryAdmin)
	}
	if c.Developer.Email != "" && c.Developer.Password != "" {
		ids = append(ids, c.Developer)
	}
	return ids
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
