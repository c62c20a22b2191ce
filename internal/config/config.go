package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Session backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	HTTPAddr       string
	LogLevel       slog.Level
	LLMModel       string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	LLMTimeout     time.Duration
	SessionDir     string
	SessionBackend string
	SQLitePath     string
	ImageDir       string
	ImagePrefix    string
	DeckID         string
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		LLMModel:       envOr("LLM_MODEL", "gpt-3.5-turbo"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		LLMTimeout:     30 * time.Second,
		SessionDir:     envOr("SESSION_DIR", "./data/sessions"),
		SessionBackend: envOr("SESSION_BACKEND", BackendFile),
		SQLitePath:     envOr("SQLITE_PATH", "./data/sessions.db"),
		ImageDir:       envOr("IMAGE_DIR", "./web/images"),
		ImagePrefix:    envOr("IMAGE_PREFIX", "/images"),
		DeckID:         envOr("DECK_ID", "rider_waite"),
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		c.LLMTimeout = d
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if c.OpenAIAPIKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY is required")
	}

	switch c.SessionBackend {
	case BackendFile, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("invalid SESSION_BACKEND %q", c.SessionBackend)
	}

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
