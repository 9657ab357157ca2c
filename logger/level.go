package logger

import (
	"errors"
	"fmt"
	"strings"
)

// Level defines log severity. Higher values are more severe.
type Level int

const (
	// TraceLevel is the most verbose level.
	TraceLevel Level = iota
	// DebugLevel enables debug logging.
	DebugLevel
	// InfoLevel enables informational logging.
	InfoLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
)

// ErrUnknownLevel is returned by ParseLevel for names it does not recognize.
var ErrUnknownLevel = errors.New("unknown log level")

var levelNames = [...]string{
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
}

// AllLevels returns all supported levels, least severe first.
func AllLevels() []Level {
	return []Level{
		TraceLevel,
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
	}
}

// String returns the upper-case name used in formatted log lines.
func (l Level) String() string {
	if !l.valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

func (l Level) valid() bool {
	return l >= TraceLevel && l <= ErrorLevel
}

// ParseLevel parses a level name case-insensitively. WARNING is accepted as
// an alias of WARN.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}
