package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const DefaultBaseURL = "https://api.abacatepay.com/v1"

type Config struct {
	AbacatePay AbacatePayConfig
	Log        LogConfig
	MockAPI    ServerConfig
}

type AbacatePayConfig struct {
	APIKey      string
	BaseURL     string
	HTTPTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type ServerConfig struct {
	Host string
	Port string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		AbacatePay: AbacatePayConfig{
			APIKey:      getEnv("ABACATEPAY_API_KEY", ""),
			BaseURL:     getEnv("ABACATEPAY_BASE_URL", DefaultBaseURL),
			HTTPTimeout: getSecondsEnv("ABACATEPAY_HTTP_TIMEOUT_SECONDS", 10*time.Second),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		MockAPI: ServerConfig{
			Host: getEnv("MOCK_API_HOST", "127.0.0.1"),
			Port: getEnv("MOCK_API_PORT", "8089"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
