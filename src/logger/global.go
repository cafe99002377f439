// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"sync"
)

// The process-wide gate. Built lazily on first use, never torn down; its
// resources are released by normal process exit. Code that can take a
// *Gate as a dependency should prefer that over these package-level
// functions.
var (
	defaultOnce sync.Once
	defaultSink *WriterSink
	defaultGate *Gate
)

// Default returns the process-wide gate, creating it on first use.
// Every caller gets the same instance, so a threshold set through one
// access point is observed through all of them.
func Default() *Gate {
	defaultOnce.Do(func() {
		defaultSink = NewWriterSink(nil)
		defaultGate = NewGate(defaultSink)
	})
	return defaultGate
}

// SetThreshold sets the process-wide gate's threshold.
func SetThreshold(l Level) { Default().SetThreshold(l) }

// Threshold returns the process-wide gate's threshold.
func Threshold() Level { return Default().Threshold() }

// Admit submits message at level l to the process-wide gate.
func Admit(l Level, message string) { Default().Admit(l, message) }

// Infof logs through the process-wide gate at [LevelInfo].
func Infof(format string, args ...any) { Default().Infof(format, args...) }

// Warningf logs through the process-wide gate at [LevelWarning].
func Warningf(format string, args ...any) { Default().Warningf(format, args...) }

// Errorf logs through the process-wide gate at [LevelError].
func Errorf(format string, args ...any) { Default().Errorf(format, args...) }

// SetOutput redirects the process-wide gate's sink. A nil writer silences
// it. Tests use this to capture output in a bytes.Buffer.
func SetOutput(w io.Writer) {
	Default()
	defaultSink.SetOutput(w)
}
