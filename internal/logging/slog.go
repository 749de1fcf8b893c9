package logging

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation = "operation"
	KeySource    = "source"
	KeyUserHash  = "user_hash"
	KeyDuration  = "duration"
	KeyStatus    = "status"
	KeyError     = "error"
	KeyView      = "view"
	KeyDaySpan   = "day_span"
)

// Status values matching the instrumentation package's metric labels, kept
// here so logging does not depend on it.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Source returns a slog attribute for the event-source name.
func Source(source string) slog.Attr {
	return slog.String(KeySource, source)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// DaySpan returns a slog attribute for the configured day span.
func DaySpan(span int) slog.Attr {
	return slog.Int(KeyDaySpan, span)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from
// output. This allows safely passing Err(maybeNilErr) without adding empty
// attributes.
func Err(err error) slog.Attr {
	if err == nil {
		// Return an empty Group that slog will omit from output
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// AnonymizeAccount returns a hashed representation of an account identifier
// (typically an email) for logging purposes. This allows correlation of log
// entries without exposing PII.
func AnonymizeAccount(account string) string {
	if account == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(account))
	return "user:" + hex.EncodeToString(hash[:8])
}

// UserHash returns a slog attribute with the anonymized account identifier.
func UserHash(account string) slog.Attr {
	return slog.String(KeyUserHash, AnonymizeAccount(account))
}
