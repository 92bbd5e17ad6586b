// Package logging assembles the slog loggers used by the difeq command and
// the session layer.
//
// Library code receives a *slog.Logger and tags it with a component
// attribute through NewComponentLogger. When no logger is supplied the
// no-op logger from NewNop keeps call sites free of nil checks.
package logging
