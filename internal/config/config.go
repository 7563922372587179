package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Port           string   `validate:"required,numeric"`
	DatabasePath   string   `validate:"required"`
	Environment    string   `validate:"oneof=development production"`
	LogLevel       string   `validate:"oneof=debug info warn error"`
	AllowedOrigins []string `validate:"min=1,dive,url"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnvWithDefault("PORT", "3000"),
		DatabasePath:   getEnvWithDefault("DATABASE_PATH", "./database.db"),
		Environment:    getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:       strings.ToLower(getEnvWithDefault("LOG_LEVEL", "info")),
		AllowedOrigins: splitList(getEnvWithDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Level maps LogLevel onto a slog level, falling back to info.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
