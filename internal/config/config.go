package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	GitHub   GitHubConfig
	Sync     SyncConfig
	Limits   LimitsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string
	DSN      string
	MaxConns int
	MinConns int
}

// AuthConfig holds identity provider configuration
type AuthConfig struct {
	APIURL    string
	SecretKey string
	JWKSURL   string
	Issuer    string
}

// GitHubConfig holds GitHub integration configuration
type GitHubConfig struct {
	WebhookSecret string
}

// SyncConfig holds sync status tracker retention policy
type SyncConfig struct {
	RunningTTL time.Duration
	DoneTTL    time.Duration
}

// LimitsConfig holds rate limiter configuration
type LimitsConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// .env file is optional
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 120),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			DSN:      getEnv("DB_DSN", "postgres://localhost:5432/deptrack?sslmode=disable"),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns: getEnvAsInt("DB_MIN_CONNS", 5),
		},
		Auth: AuthConfig{
			APIURL:    getEnv("AUTH_API_URL", ""),
			SecretKey: getEnv("AUTH_SECRET_KEY", ""),
			JWKSURL:   getEnv("AUTH_JWKS_URL", ""),
			Issuer:    getEnv("AUTH_ISSUER", ""),
		},
		GitHub: GitHubConfig{
			WebhookSecret: getEnv("GITHUB_WEBHOOK_SECRET", ""),
		},
		Sync: SyncConfig{
			RunningTTL: getEnvAsDuration("SYNC_RUNNING_TTL", 10*time.Minute),
			DoneTTL:    getEnvAsDuration("SYNC_DONE_TTL", time.Hour),
		},
		Limits: LimitsConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 10),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Auth.SecretKey == "" {
		return fmt.Errorf("AUTH_SECRET_KEY is required")
	}
	if c.Auth.JWKSURL == "" {
		return fmt.Errorf("AUTH_JWKS_URL is required")
	}
	if c.Auth.Issuer == "" {
		return fmt.Errorf("AUTH_ISSUER is required")
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	return nil
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getEnvAsFloat gets an environment variable as float with a fallback value
func getEnvAsFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return fallback
}

// getEnvAsDuration gets an environment variable as duration with a fallback value
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
