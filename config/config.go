package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	App    AppConfig
}

type ServerConfig struct {
	Port string
}

type AppConfig struct {
	ServiceName      string
	Environment      string
	Version          string
	SeedCount        int
	StatsLogSchedule string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "4000"),
		},
		App: AppConfig{
			ServiceName:      getEnv("SERVICE_NAME", "ig-assessment-api"),
			Environment:      getEnv("APP_ENV", "development"),
			Version:          getEnv("APP_VERSION", "1.0.0"),
			SeedCount:        getEnvAsInt("SEED_COUNT", 100),
			StatsLogSchedule: getEnv("STATS_LOG_SCHEDULE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.App.SeedCount < 0 {
		return fmt.Errorf("SEED_COUNT must not be negative")
	}

	return nil
}

// IsDevelopment reports whether the app runs in a development-like environment.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
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
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
