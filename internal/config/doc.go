// Package config loads and validates the difeq TOML configuration.
//
// A missing file is not an error: Load falls back to Default so the command
// works without any setup. Unknown keys are rejected to surface typos.
package config
