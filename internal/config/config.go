package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath              string
	APIPort             string
	LogLevel            slog.Level
	LogFormat           string
	DefaultDocumentName string
	HistoryLimit        int
	RegexTimeout        time.Duration
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent, it is loaded first.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		DBPath:              getEnv("DB_PATH", "./data/linuxword.db"),
		APIPort:             getEnv("API_PORT", "9000"),
		LogFormat:           strings.ToLower(getEnv("LOG_FORMAT", "text")),
		DefaultDocumentName: getEnv("DEFAULT_DOCUMENT_NAME", "Untitled Document"),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	historyLimit, err := strconv.Atoi(getEnv("HISTORY_LIMIT", "100"))
	if err != nil {
		return nil, fmt.Errorf("HISTORY_LIMIT must be a valid integer: %w", err)
	}
	if historyLimit <= 0 {
		return nil, fmt.Errorf("HISTORY_LIMIT must be greater than 0")
	}
	cfg.HistoryLimit = historyLimit

	// Bounds each match attempt of a search pattern so a pathological
	// expression cannot stall the editor.
	regexTimeout, err := time.ParseDuration(getEnv("REGEX_TIMEOUT", "2s"))
	if err != nil {
		return nil, fmt.Errorf("REGEX_TIMEOUT must be a valid duration: %w", err)
	}
	if regexTimeout <= 0 {
		return nil, fmt.Errorf("REGEX_TIMEOUT must be greater than 0")
	}
	cfg.RegexTimeout = regexTimeout

	// Create ./data directory if it doesn't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// parseLogLevel maps LOG_LEVEL values onto slog levels.
func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %w", err)
	}
	return level, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
