// Package logging provides structured logging helpers built on log/slog.
//
// It defines the canonical attribute keys used across the codebase so that
// log output stays consistent and greppable, plus helpers for attaching
// common attributes and for anonymizing account identifiers before they
// reach log storage.
package logging
