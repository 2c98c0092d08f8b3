package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Zachdehooge/temperature-heatmap/internal/fetcher"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level

	// DatasetURL is the location of the temperature JSON document.
	DatasetURL   string
	FetchTimeout time.Duration

	// HTTPAddr and RefreshInterval only apply to serve mode.
	HTTPAddr        string
	RefreshInterval time.Duration
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return LoadFromEnv()
}

func LoadFromEnv() (Config, error) {
	appEnv := getenvDefault("APP_ENV", "dev")
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	level, err := parseLogLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}

	fetchTimeoutStr := getenvDefault("FETCH_TIMEOUT", "15s")
	fetchTimeout, err := time.ParseDuration(fetchTimeoutStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid FETCH_TIMEOUT %q: %w", fetchTimeoutStr, err)
	}
	if fetchTimeout < 0 {
		return Config{}, fmt.Errorf("invalid FETCH_TIMEOUT %q: must not be negative", fetchTimeoutStr)
	}

	refreshStr := getenvDefault("REFRESH_INTERVAL", "1h")
	refresh, err := time.ParseDuration(refreshStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid REFRESH_INTERVAL %q: %w", refreshStr, err)
	}
	if refresh <= 0 {
		return Config{}, fmt.Errorf("invalid REFRESH_INTERVAL %q: must be positive", refreshStr)
	}

	return Config{
		AppEnv:          appEnv,
		LogLevel:        level,
		DatasetURL:      getenvDefault("DATASET_URL", fetcher.DefaultURL),
		FetchTimeout:    fetchTimeout,
		HTTPAddr:        getenvDefault("HTTP_ADDR", ":8080"),
		RefreshInterval: refresh,
	}, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
