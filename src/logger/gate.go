// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"sync/atomic"
)

// Gate filters log messages by severity. It holds a single mutable
// threshold and forwards a message to its [Sink] only when the message's
// level is at or above that threshold. Messages below the threshold are
// silently discarded; discarding is normal filtering, not a failure, so no
// operation on a Gate returns an error.
//
// The threshold lives in a single atomic word, so concurrent SetThreshold
// and Admit calls are safe and a threshold change is visible to every
// subsequent admission check.
type Gate struct {
	threshold atomic.Int32
	sink      Sink
}

// NewGate creates a gate forwarding admitted messages to sink, with the
// threshold at [DefaultLevel]. A nil sink falls back to a [WriterSink] on
// standard error.
func NewGate(sink Sink) *Gate {
	if sink == nil {
		sink = NewWriterSink(nil)
	}
	g := &Gate{sink: sink}
	g.threshold.Store(int32(DefaultLevel))
	return g
}

// SetThreshold replaces the threshold unconditionally.
func (g *Gate) SetThreshold(l Level) {
	g.threshold.Store(int32(l))
}

// Threshold returns the current threshold.
func (g *Gate) Threshold() Level {
	return Level(g.threshold.Load())
}

// Admit forwards message to the sink iff l is at or above the current
// threshold. Below-threshold messages are dropped without a trace.
func (g *Gate) Admit(l Level, message string) {
	if l >= g.Threshold() {
		g.sink.Emit(l, message)
	}
}

// Infof formats its arguments like [fmt.Printf] and submits the result at
// [LevelInfo].
func (g *Gate) Infof(format string, args ...any) {
	g.logf(LevelInfo, format, args)
}

// Warningf is like Infof at [LevelWarning].
func (g *Gate) Warningf(format string, args ...any) {
	g.logf(LevelWarning, format, args)
}

// Errorf is like Infof at [LevelError].
func (g *Gate) Errorf(format string, args ...any) {
	g.logf(LevelError, format, args)
}

// logf checks the threshold before formatting so that filtered messages
// cost one atomic load and nothing else.
func (g *Gate) logf(l Level, format string, args []any) {
	if l < g.Threshold() {
		return
	}
	g.sink.Emit(l, fmt.Sprintf(format, args...))
}
