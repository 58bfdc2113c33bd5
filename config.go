package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/solware/solware-id/internal/directory"
)

// config is read from the environment, optionally preloaded from .env.
type config struct {
	Port            string
	DirectoryPath   string
	DefaultSlug     string
	DatabasePath    string
	AnalyticsBuffer int
	TrackRate       float64
	TrackBurst      float64
	TrustProxy      bool
	LogLevel        slog.Level
}

func loadConfig() (config, error) {
	cfg := config{
		Port:          envOrDefault("PORT", "8080"),
		DirectoryPath: os.Getenv("DIRECTORY_PATH"),
		DefaultSlug:   os.Getenv("DEFAULT_SLUG"),
		DatabasePath:  os.Getenv("DATABASE_PATH"),
		TrustProxy:    os.Getenv("TRUST_PROXY") == "true",
	}

	var err error
	if cfg.AnalyticsBuffer, err = strconv.Atoi(envOrDefault("ANALYTICS_BUFFER", "256")); err != nil || cfg.AnalyticsBuffer < 1 {
		return cfg, fmt.Errorf("invalid ANALYTICS_BUFFER %q", os.Getenv("ANALYTICS_BUFFER"))
	}
	if cfg.TrackRate, err = strconv.ParseFloat(envOrDefault("TRACK_RATE", "1"), 64); err != nil || cfg.TrackRate < 0 {
		return cfg, fmt.Errorf("invalid TRACK_RATE %q", os.Getenv("TRACK_RATE"))
	}
	if cfg.TrackBurst, err = strconv.ParseFloat(envOrDefault("TRACK_BURST", "10"), 64); err != nil || cfg.TrackBurst < 1 {
		return cfg, fmt.Errorf("invalid TRACK_BURST %q", os.Getenv("TRACK_BURST"))
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(envOrDefault("LOG_LEVEL", "info")))); err != nil {
		return cfg, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// loadDirectory reads the configured directory file, or the embedded one,
// and applies the DEFAULT_SLUG override.
func loadDirectory(cfg config) (*directory.Config, error) {
	var (
		dir *directory.Config
		err error
	)
	if cfg.DirectoryPath != "" {
		dir, err = directory.LoadFile(cfg.DirectoryPath)
	} else {
		dir, err = directory.Default()
	}
	if err != nil {
		return nil, err
	}

	if cfg.DefaultSlug != "" {
		dir.DefaultSlug = cfg.DefaultSlug
	}
	return dir, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
