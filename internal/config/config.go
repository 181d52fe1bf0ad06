// Package config holds viewer settings. Every value has a built-in default;
// a few can be overridden through optional environment variables.
package config

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

const (
	EnvLogLevel   = "MESHPICK_LOG_LEVEL"
	EnvPickRadius = "MESHPICK_PICK_RADIUS"
)

// Settings holds all tunable values of the viewer
type Settings struct {
	WindowWidth  int32
	WindowHeight int32
	TargetFPS    int32

	PickRadius      float64 // pixels
	MarkerRadius    float32 // pixels
	HighlightRadius float32 // pixels
	ClickTolerance  float32 // max pointer travel in pixels for a press/release to count as a click

	LogLevel slog.Level
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		WindowWidth:     1024,
		WindowHeight:    768,
		TargetFPS:       60,
		PickRadius:      10,
		MarkerRadius:    3,
		HighlightRadius: 6,
		ClickTolerance:  5,
		LogLevel:        slog.LevelInfo,
	}
}

// FromEnv returns the defaults with overrides from lookup (usually os.LookupEnv).
// Invalid values are reported in the returned warnings and ignored.
func FromEnv(lookup func(string) (string, bool)) (Settings, []error) {
	s := Default()
	var warnings []error

	if v, ok := lookup(EnvLogLevel); ok {
		level, err := ParseLevel(v)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("%s: %w", EnvLogLevel, err))
		} else {
			s.LogLevel = level
		}
	}

	if v, ok := lookup(EnvPickRadius); ok {
		radius, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		switch {
		case err != nil:
			warnings = append(warnings, fmt.Errorf("%s: %w", EnvPickRadius, err))
		case math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0:
			warnings = append(warnings, fmt.Errorf("%s: must be a finite positive number, got %v", EnvPickRadius, radius))
		default:
			s.PickRadius = radius
		}
	}

	return s, warnings
}

// ParseLevel converts a level name like "debug" or "WARN" to a slog.Level
func ParseLevel(value string) (slog.Level, error) {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(strings.TrimSpace(value))]
	if !ok {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", value)
	}
	return v, nil
}
