package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mobil-koeln/dispatch-cli/internal/models"
	"github.com/mobil-koeln/dispatch-cli/internal/output"
)

// Version is set at build time via -ldflags
var Version = "1.0.0"

// Config holds the runtime configuration. Load fills it from DISPATCH_*
// environment variables; command-line flags override individual fields.
type Config struct {
	// Color is the color mode: "auto", "always" or "never" (default: auto)
	Color string

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error" (default: info)
	LogLevel string

	// LogFile is the log file path. Empty disables logging (default: "")
	LogFile string

	// Seed adds the filler departures on startup (default: true)
	Seed bool

	// StartTime is the initial station time (default: 00:00)
	StartTime models.Clock

	// MaxTrack is the highest track number an operator may assign (default: 68)
	MaxTrack int

	// LineWidth is the maximum line length and its board column width (default: 5)
	LineWidth int

	// DestinationWidth is the maximum destination length and its column width (default: 16)
	DestinationWidth int
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	board := output.DefaultBoardOptions()
	return Config{
		Color:            "auto",
		LogLevel:         "info",
		Seed:             true,
		MaxTrack:         output.DefaultMaxTrack,
		LineWidth:        board.LineWidth,
		DestinationWidth: board.DestinationWidth,
	}
}

// Load reads configuration from environment variables with defaults.
func Load() (Config, error) {
	cfg := Default()

	cfg.Color = getEnvOrDefault("DISPATCH_COLOR", cfg.Color)
	cfg.LogLevel = getEnvOrDefault("DISPATCH_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnvOrDefault("DISPATCH_LOG_FILE", cfg.LogFile)

	if v := os.Getenv("DISPATCH_SEED"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("DISPATCH_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("DISPATCH_START_TIME"); v != "" {
		c, err := ParseClock(v)
		if err != nil {
			return cfg, fmt.Errorf("DISPATCH_START_TIME: %w", err)
		}
		cfg.StartTime = c
	}

	var err error
	if cfg.MaxTrack, err = getEnvInt("DISPATCH_MAX_TRACK", cfg.MaxTrack); err != nil {
		return cfg, err
	}
	if cfg.LineWidth, err = getEnvInt("DISPATCH_LINE_WIDTH", cfg.LineWidth); err != nil {
		return cfg, err
	}
	if cfg.DestinationWidth, err = getEnvInt("DISPATCH_DESTINATION_WIDTH", cfg.DestinationWidth); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseClock parses a wall-clock time in HH:MM form. Unlike models.NewClock
// it rejects out-of-range values instead of normalizing them.
func ParseClock(s string) (models.Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return models.Clock{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return models.Clock{}, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return models.Clock{}, fmt.Errorf("invalid minute in %q", s)
	}
	return models.NewClock(hour, minute), nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads a positive integer from the environment.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue, fmt.Errorf("%s: expected a positive integer, got %q", key, value)
	}
	return n, nil
}
