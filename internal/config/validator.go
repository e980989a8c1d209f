package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	// Валидация пути к базе данных
	if c.DatabasePath == "" {
		errors = append(errors, "database path is required")
	}

	// Валидация connection pooling
	if c.MaxOpenConns < 1 {
		errors = append(errors, "max open connections must be at least 1")
	}
	if c.MaxIdleConns < 1 {
		errors = append(errors, "max idle connections must be at least 1")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		errors = append(errors, "max idle connections cannot be greater than max open connections")
	}
	if c.ConnMaxLifetime < time.Second {
		errors = append(errors, "connection max lifetime must be at least 1 second")
	}

	// Валидация каталога выгрузок
	if c.ExportDir == "" {
		errors = append(errors, "export dir is required")
	}

	// Валидация границ возраста
	if c.MinDriverAge < 0 {
		errors = append(errors, "min driver age cannot be negative")
	}
	if c.MaxDriverAge <= c.MinDriverAge {
		errors = append(errors, "max driver age must be greater than min driver age")
	}

	// Валидация ограничения частоты
	if c.RateLimitRPS <= 0 {
		errors = append(errors, "rate limit rps must be positive")
	}
	if c.RateLimitBurst < 1 {
		errors = append(errors, "rate limit burst must be at least 1")
	}

	// Валидация таймаутов
	if c.RequestTimeout < time.Second {
		errors = append(errors, "request timeout must be at least 1 second")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// GetDefaults возвращает конфигурацию со значениями по умолчанию
func GetDefaults() *Config {
	return &Config{
		Port:            "9999",
		DatabasePath:    "cargo.db",
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ExportDir:       "exports",
		MinDriverAge:    16,
		MaxDriverAge:    100,
		RateLimitRPS:    50,
		RateLimitBurst:  100,
		RequestTimeout:  10 * time.Second,
	}
}
