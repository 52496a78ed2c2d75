package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// All environment variables are read through this package only.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// External sources
	NBP    NBPConfig
	Movies MoviesConfig

	// HTTP transport
	HTTPTimeout time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// NBPConfig holds the NBP (Narodowy Bank Polski) gold-price API configuration.
type NBPConfig struct {
	BaseURL string
	// RateLimit is the maximum number of requests per second issued to the
	// NBP API. The public API is unauthenticated, so stay polite.
	RateLimit int
}

// MoviesConfig holds the movies CSV source configuration.
type MoviesConfig struct {
	CSVURL string
}

// Load reads configuration from environment variables.
// Only this function calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8089"),
		Env:  getEnv("ENV", "development"),

		NBP: NBPConfig{
			BaseURL:   getEnv("NBP_BASE_URL", "https://api.nbp.pl/api"),
			RateLimit: getEnvAsInt("NBP_RATE_LIMIT", 5),
		},

		Movies: MoviesConfig{
			CSVURL: getEnv("MOVIES_CSV_URL", "https://bit.ly/imdbratings"),
		},

		HTTPTimeout: getEnvAsDuration("HTTP_TIMEOUT", "30s"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set.
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.NBP.BaseURL == "" {
		return fmt.Errorf("NBP_BASE_URL must not be empty")
	}

	if c.Movies.CSVURL == "" {
		return fmt.Errorf("MOVIES_CSV_URL must not be empty")
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations.
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
