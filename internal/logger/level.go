// Package logger provides leveled diagnostic logging for minigrep.
//
// Diagnostics never go to standard output, which carries only search
// results. ConsoleLogger writes to standard error (colourised on a
// terminal), FileLogger keeps a per-run log file, and MultiLogger fans a
// message out to several loggers. All implementations are safe for
// concurrent use.
package logger

import "strings"

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// DefaultLevel is used when a level is empty or unknown.
const DefaultLevel = "warn"

// Logger is the interface shared by all loggers in this package.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

var validLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// IsValidLevel reports whether level names a known log level (case-insensitive).
func IsValidLevel(level string) bool {
	return validLevels[strings.ToLower(strings.TrimSpace(level))]
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns DefaultLevel for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if validLevels[normalized] {
		return normalized
	}
	return DefaultLevel
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelWarn
	}
}

// enabled reports whether a message at messageLevel passes configuredLevel.
func enabled(configuredLevel, messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(configuredLevel)
}
