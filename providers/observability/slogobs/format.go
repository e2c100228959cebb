package slogobs

import (
	"log/slog"
	"os"
	"strings"
)

// Format represents the output format for logs.
type Format string

const (
	// FormatText is slog's key=value text format (default).
	FormatText Format = "text"

	// FormatJSON is one JSON object per record, for log aggregation.
	FormatJSON Format = "json"
)

// ParseFormat parses a format string. Unknown values yield FormatText.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// GetFormatFromEnv checks AIGO_LOG_FORMAT first, then LOG_FORMAT.
func GetFormatFromEnv() Format {
	if format := os.Getenv("AIGO_LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	return FormatText
}

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}

// ParseLogLevel parses DEBUG, INFO, WARN, WARNING or ERROR (case-insensitive).
// The second return value is false for unknown input, in which case INFO is
// returned.
func ParseLogLevel(level string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// GetLogLevelFromEnv checks AIGO_LOG_LEVEL first, then LOG_LEVEL.
// Default: INFO
func GetLogLevelFromEnv() slog.Level {
	level := os.Getenv("AIGO_LOG_LEVEL")
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	parsed, _ := ParseLogLevel(level)
	return parsed
}
