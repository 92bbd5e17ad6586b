package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/cwbudde/algo-difeq/dsp/window"
	"github.com/cwbudde/algo-difeq/internal/logging"
	"github.com/cwbudde/algo-difeq/measure/eqmatch"
)

// Analysis controls the short-time spectrum of every input file.
type Analysis struct {
	FFTSize int    `toml:"fft_size"`
	HopSize int    `toml:"hop_size"`
	Window  string `toml:"window"`
}

// Curve controls aggregation and channel selection.
type Curve struct {
	Smoothing    int     `toml:"smoothing"`
	Resolution   int     `toml:"resolution"`
	RolloffStart float64 `toml:"rolloff_start"`
	RolloffEnd   float64 `toml:"rolloff_end"`
	ChannelMode  string  `toml:"channel_mode"`
}

// Runtime contains process-level settings.
type Runtime struct {
	// Workers bounds parallel pair analysis; 0 uses one worker per CPU.
	Workers  int    `toml:"workers"`
	LogLevel string `toml:"log_level"`
}

// Config encapsulates all configuration values for difeq.
type Config struct {
	Analysis Analysis `toml:"analysis"`
	Curve    Curve    `toml:"curve"`
	Runtime  Runtime  `toml:"runtime"`
}

// DefaultConfigPath returns the per-user configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/difeq/config.toml")
}

// Load parses the configuration at path, or at the default location when
// path is empty, and validates it. The returned bool reports whether a file
// was read.
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	resolved, err := resolveConfigPath(path)
	if err != nil {
		return nil, false, err
	}

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &cfg, false, cfg.Validate()
	case err != nil:
		return nil, false, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).DisallowUnknownFields().Decode(&cfg); err != nil {
		return nil, true, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, true, fmt.Errorf("config %s: %w", resolved, err)
	}
	return &cfg, true, nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// EqParams converts the curve section into aggregation parameters.
func (c *Config) EqParams() eqmatch.Params {
	return eqmatch.Params{
		Smoothing:    c.Curve.Smoothing,
		Resolution:   c.Curve.Resolution,
		RolloffStart: c.Curve.RolloffStart,
		RolloffEnd:   c.Curve.RolloffEnd,
	}
}

// Mode parses the configured channel mode.
func (c *Config) Mode() (eqmatch.ChannelMode, error) {
	return eqmatch.ParseChannelMode(c.Curve.ChannelMode)
}

// WindowType parses the configured analysis window.
func (c *Config) WindowType() (window.Type, error) {
	return window.Parse(c.Analysis.Window)
}

// SlogLevel parses the configured log level.
func (c *Config) SlogLevel() (slog.Level, error) {
	return logging.ParseLevel(c.Runtime.LogLevel)
}

func resolveConfigPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultConfigPath()
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
