package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	DatabaseURL    string
	Port           string
	ConnectTimeout time.Duration
	LogLevel       slog.Level
}

// FromEnv reads configuration from the environment. An empty DATABASE_URL
// selects the in-memory record source.
func FromEnv() Config {
	to := 15 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	return Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           envOr("PORT", "8080"),
		ConnectTimeout: to,
		LogLevel:       lvl,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
