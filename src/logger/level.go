// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Level represents the severity of a log message.
//
// Levels are strictly totally ordered: LevelInfo < LevelWarning < LevelError.
// A [Gate] forwards a message when its level is at or above the gate's
// threshold.
type Level int32

const (
	// LevelInfo is for routine operational messages.
	LevelInfo Level = iota
	// LevelWarning is for unexpected conditions that don't prevent operation.
	LevelWarning
	// LevelError is for failures that affect functionality.
	LevelError
)

// DefaultLevel is the threshold a freshly constructed [Gate] starts with.
const DefaultLevel = LevelWarning

var _ pflag.Value = (*Level)(nil)

// String returns the uppercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int32(l))
	}
}

// ParseLevel parses a level name, case-insensitively.
// It accepts "info", "warning" (or "warn"), and "error" (or "err").
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error", "err":
		return LevelError, nil
	default:
		return DefaultLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// Set implements [pflag.Value], allowing a Level to be used directly as a
// command-line flag.
func (l *Level) Set(s string) error {
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Type implements [pflag.Value].
func (l *Level) Type() string { return "level" }

// MarshalText implements [encoding.TextMarshaler] so levels render as their
// names in JSON and YAML configuration files.
func (l Level) MarshalText() ([]byte, error) {
	switch l {
	case LevelInfo, LevelWarning, LevelError:
		return []byte(strings.ToLower(l.String())), nil
	default:
		return nil, fmt.Errorf("cannot marshal unknown log level %d", int32(l))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Level) UnmarshalText(text []byte) error {
	return l.Set(string(text))
}
