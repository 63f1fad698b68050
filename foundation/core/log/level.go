// File: level.go
// Title: Log Level Definitions
// Description: Defines the log levels used to filter entries, their long,
//              short and colored names, and parsing of level names from
//              configuration values and command line flags. Each level is
//              described once in a lookup table that the formatters and
//              the parser share.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Level names, colors and aliases moved into one table

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelFatal represents errors that terminate the program
	LevelFatal

	// LevelAudit is always written regardless of the minimum level
	LevelAudit
)

// levelInfo describes how a level is named and rendered
type levelInfo struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levels = [...]levelInfo{
	LevelTrace: {"trace", "TRC", "\033[37m", nil},
	LevelDebug: {"debug", "DBG", "\033[36m", nil},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"warning"}},
	LevelError: {"error", "ERR", "\033[31m", nil},
	LevelFatal: {"fatal", "FTL", "\033[35m", nil},
	LevelAudit: {"audit", "AUD", "\033[34m", nil},
}

var unknownLevel = levelInfo{name: "unknown", short: "???", color: "\033[0m"}

func (l Level) info() levelInfo {
	if l < 0 || int(l) >= len(levels) {
		return unknownLevel
	}
	return levels[l]
}

// String returns the string representation of the log level
func (l Level) String() string {
	return l.info().name
}

// ShortString returns the three letter tag used by the text formatter
func (l Level) ShortString() string {
	return l.info().short
}

// Color returns the ANSI color code for the log level (for console output)
func (l Level) Color() string {
	return l.info().color
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// ParseLevel parses a level name. Long names, short tags and a few common
// aliases are accepted case-insensitively.
func ParseLevel(level string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(level))
	for l, info := range levels {
		if key == info.name || key == strings.ToLower(info.short) {
			return Level(l), nil
		}
		for _, alias := range info.aliases {
			if key == alias {
				return Level(l), nil
			}
		}
	}

	return LevelInfo, &ParseError{
		Input: level,
		Type:  "level",
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
