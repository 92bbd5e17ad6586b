package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.EqParams().Validate(); err != nil {
		return fmt.Errorf("curve: %w", err)
	}
	if _, err := c.Mode(); err != nil {
		return fmt.Errorf("curve.channel_mode: %w", err)
	}
	if c.Runtime.Workers < 0 {
		return errors.New("runtime.workers must be >= 0")
	}
	if _, err := c.SlogLevel(); err != nil {
		return fmt.Errorf("runtime.log_level: %w", err)
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.FFTSize < 2 {
		return fmt.Errorf("analysis.fft_size must be >= 2, got %d", c.Analysis.FFTSize)
	}
	if c.Analysis.HopSize < 1 {
		return fmt.Errorf("analysis.hop_size must be >= 1, got %d", c.Analysis.HopSize)
	}
	if _, err := c.WindowType(); err != nil {
		return fmt.Errorf("analysis.window: %w", err)
	}
	return nil
}
