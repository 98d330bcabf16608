package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shenikar/police_smart_analytics/internal/models"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080" validate:"required,numeric"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json text"`

	// Analytics backend
	BackendURL     string        `env:"BACKEND_URL" envDefault:"http://localhost:8000" validate:"required,url"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s" validate:"gte=0"`

	// Dashboard
	SeedCount             int  `env:"SEED_COUNT" envDefault:"80" validate:"gt=0"`
	DiscardStaleResponses bool `env:"DISCARD_STALE_RESPONSES" envDefault:"true"`
	RefreshOnStart        bool `env:"REFRESH_ON_START" envDefault:"true"`
}

const DefaultBackendURL = "http://localhost:8000"

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             strings.ToLower(getEnv("LOG_FORMAT", "json")),
		BackendURL:            strings.TrimRight(getEnv("BACKEND_URL", DefaultBackendURL), "/"),
		BackendTimeout:        getEnvAsDuration("BACKEND_TIMEOUT", 10*time.Second),
		SeedCount:             getEnvAsInt("SEED_COUNT", models.DefaultSeedCount),
		DiscardStaleResponses: getEnvAsBool("DISCARD_STALE_RESPONSES", true),
		RefreshOnStart:        getEnvAsBool("REFRESH_ON_START", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
