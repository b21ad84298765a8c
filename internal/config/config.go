package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	CORS       CORSConfig
	Projection ProjectionConfig
	Refresh    RefreshConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// ProjectionConfig holds the tunable constants of the projection and
// income-approximation engine. The defaults are load-bearing: estimates
// within NearTermDays of payment are the most trustworthy tier, and the
// flat AvgWeeklyPerShare/TaxRate constants are documented approximations,
// not derived values.
type ProjectionConfig struct {
	NearTermDays      int     // confidence tier boundary, default 14
	MidTermDays       int     // confidence tier boundary, default 30
	AvgWeeklyPerShare float64 // flat per-share weekly dividend approximation
	FlatTaxRate       float64 // flat tax approximation for taxable accounts
}

// RefreshConfig holds the snapshot refresh schedule.
type RefreshConfig struct {
	CronSpec string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/yieldmax.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Projection: ProjectionConfig{
			NearTermDays:      getEnvInt("CONFIDENCE_NEAR_TERM_DAYS", 14),
			MidTermDays:       getEnvInt("CONFIDENCE_MID_TERM_DAYS", 30),
			AvgWeeklyPerShare: getEnvFloat("AVG_WEEKLY_PER_SHARE", 0.30),
			FlatTaxRate:       getEnvFloat("FLAT_TAX_RATE", 0.22),
		},
		Refresh: RefreshConfig{
			CronSpec: getEnv("REFRESH_CRON", "@hourly"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	if config.Projection.NearTermDays > config.Projection.MidTermDays {
		return nil, fmt.Errorf("CONFIDENCE_NEAR_TERM_DAYS (%d) cannot exceed CONFIDENCE_MID_TERM_DAYS (%d)",
			config.Projection.NearTermDays, config.Projection.MidTermDays)
	}

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvFloat gets a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
