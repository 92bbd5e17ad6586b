// Package testutil provides deterministic signals, tolerance assertions and
// WAV fixtures for tests.
package testutil
