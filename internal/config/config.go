// Package config читает настройки сервиса из окружения (и файла .env, если он есть).
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr           string
	BackendURL         string
	BackendTimeout     time.Duration
	DatabaseURL        string
	RedisAddr          string
	RedisPassword      string
	SessionIdleTimeout time.Duration
	ConfirmPIN         string
	CORSOrigins        []string
	ReportRetention    time.Duration
	RetentionSchedule  string
	AbortOnError       bool
	CookieSecure       bool
}

// Load загружает .env (если файл есть) и собирает Config с дефолтами.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:           getenv("HTTP_ADDR", ":8080"),
		BackendURL:         getenv("BACKEND_URL", "http://127.0.0.1:8000"),
		BackendTimeout:     getenvDuration("BACKEND_TIMEOUT", 15*time.Second),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		SessionIdleTimeout: getenvDuration("SESSION_IDLE_TIMEOUT", time.Hour),
		ConfirmPIN:         getenv("CONFIRM_PIN", "8496"),
		CORSOrigins:        getenvList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		ReportRetention:    getenvDuration("REPORT_RETENTION", 30*24*time.Hour),
		RetentionSchedule:  getenv("REPORT_RETENTION_SCHEDULE", "@daily"),
		AbortOnError:       getenvBool("ROSTER_ABORT_ON_ERROR", false),
		CookieSecure:       getenvBool("COOKIE_SECURE", false),
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	if val := os.Getenv(key + "_SECONDS"); val != "" {
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
