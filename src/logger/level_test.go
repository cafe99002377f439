// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"testing"

	"github.com/H0llyW00dzZ/loggate/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOrdering(t *testing.T) {
	// The severity order is strict and total: INFO < WARNING < ERROR.
	assert.Less(t, logger.LevelInfo, logger.LevelWarning, "expected INFO < WARNING")
	assert.Less(t, logger.LevelWarning, logger.LevelError, "expected WARNING < ERROR")
	assert.Less(t, logger.LevelInfo, logger.LevelError, "expected INFO < ERROR")

	levels := []logger.Level{logger.LevelInfo, logger.LevelWarning, logger.LevelError}
	for i, a := range levels {
		for j, b := range levels {
			switch {
			case i < j:
				assert.True(t, a < b, "%s should sort before %s", a, b)
			case i > j:
				assert.True(t, a > b, "%s should sort after %s", a, b)
			default:
				assert.Equal(t, a, b)
			}
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level logger.Level
		want  string
	}{
		{logger.LevelInfo, "INFO"},
		{logger.LevelWarning, "WARNING"},
		{logger.LevelError, "ERROR"},
		{logger.Level(42), "LEVEL(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    logger.Level
		wantErr bool
	}{
		{name: "info", input: "info", want: logger.LevelInfo},
		{name: "uppercase", input: "INFO", want: logger.LevelInfo},
		{name: "warning", input: "warning", want: logger.LevelWarning},
		{name: "warn alias", input: "warn", want: logger.LevelWarning},
		{name: "error", input: "error", want: logger.LevelError},
		{name: "err alias", input: "err", want: logger.LevelError},
		{name: "mixed case", input: "WaRnInG", want: logger.LevelWarning},
		{name: "surrounding space", input: "  error  ", want: logger.LevelError},
		{name: "unknown", input: "verbose", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err, "expected parse error for %q", tt.input)
				return
			}
			require.NoError(t, err, "unexpected parse error for %q", tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelFlagValue(t *testing.T) {
	var l logger.Level

	require.NoError(t, l.Set("error"), "Set should accept a valid level name")
	assert.Equal(t, logger.LevelError, l)
	assert.Equal(t, "level", l.Type())

	assert.Error(t, l.Set("loud"), "Set should reject an unknown level name")
	assert.Equal(t, logger.LevelError, l, "a failed Set must not change the value")
}

func TestLevelTextMarshaling(t *testing.T) {
	data, err := logger.LevelWarning.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warning", string(data), "levels marshal as lowercase names")

	var l logger.Level
	require.NoError(t, l.UnmarshalText([]byte("error")))
	assert.Equal(t, logger.LevelError, l)

	_, err = logger.Level(42).MarshalText()
	assert.Error(t, err, "unknown levels should not marshal")

	assert.Error(t, l.UnmarshalText([]byte("nope")), "unknown names should not unmarshal")
}
