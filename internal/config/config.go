package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	Port                   string
	LogLevel               string
	DatabaseURL            string
	OpenAIAPIKey           string
	OpenAIModel            string
	OpenAIMaxTokens        int
	VideoCatalogPath       string
	CatalogRefreshInterval time.Duration
	BookingNotifyChannel   string
}

// Load reads configuration from environment variables, applying defaults
// where a variable is unset.
func Load() *Config {
	return &Config{
		Port:                   getEnv("PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		DatabaseURL:            getEnv("DATABASE_URL", ""),
		OpenAIAPIKey:           getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:            getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAIMaxTokens:        getEnvAsInt("OPENAI_MAX_TOKENS", 1000),
		VideoCatalogPath:       getEnv("VIDEO_CATALOG_PATH", "video_data.txt"),
		CatalogRefreshInterval: getEnvAsDuration("CATALOG_REFRESH_INTERVAL", 24*time.Hour),
		BookingNotifyChannel:   getEnv("BOOKING_NOTIFY_CHANNEL", "bookings"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
