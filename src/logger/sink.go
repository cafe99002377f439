// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/loggate/src/internal/helper/gc"
)

// Sink receives the messages a [Gate] admits. It is responsible for
// formatting and emitting them; the gate never looks at a message again
// after handing it over.
//
// Sink implementations must be safe for concurrent use by multiple
// goroutines. Emit has no error return: a sink that cannot write has
// nowhere meaningful to report that, so write failures stay inside the
// sink (matching the standard library log package).
type Sink interface {
	// Emit formats and writes a single admitted message.
	Emit(level Level, message string)
}

// WriterSink writes plain "[LEVEL] message" lines to an [io.Writer].
// It is the default sink for human-readable output on a terminal.
//
// WriterSink is safe for concurrent use by multiple goroutines.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a plain-text sink writing to w.
// A nil writer falls back to [os.Stderr].
func NewWriterSink(w io.Writer) *WriterSink {
	if w == nil {
		w = os.Stderr
	}
	return &WriterSink{w: w}
}

// Emit writes one "[LEVEL] message" line. The line is assembled in a pooled
// buffer and handed to the writer in a single Write call so concurrent
// emits never interleave mid-line.
func (s *WriterSink) Emit(level Level, message string) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteByte('[')
	buf.WriteString(level.String())
	buf.WriteString("] ")
	buf.WriteString(message)
	buf.WriteByte('\n')

	s.mu.Lock()
	s.w.Write(buf.Bytes())
	s.mu.Unlock()
}

// SetOutput sets the output destination. A nil writer silences the sink
// by routing it to [io.Discard].
func (s *WriterSink) SetOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w == nil {
		s.w = io.Discard
	} else {
		s.w = w
	}
}

// jsonEntry is the wire shape of a JSONSink line.
type jsonEntry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// JSONSink writes one JSON object per admitted message, suitable for
// machine-consumed logs or for processes whose stdout carries a protocol
// and must not be polluted with free-form text.
//
// JSONSink is safe for concurrent use by multiple goroutines.
type JSONSink struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewJSONSink creates a structured sink writing to writer.
// With silent=true all output is suppressed regardless of writer; a nil
// writer behaves like [io.Discard].
func NewJSONSink(writer io.Writer, silent bool) *JSONSink {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONSink{
		writer: writer,
		silent: silent,
	}
}

// Emit writes a {"level":...,"message":...} line. The level is rendered in
// lowercase. Output is suppressed in silent mode.
func (s *JSONSink) Emit(level Level, message string) {
	if s.silent {
		return
	}

	data, err := json.Marshal(jsonEntry{
		Level:   levelKey(level),
		Message: message,
	})
	if err != nil {
		return
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString(string(data))
	buf.WriteByte('\n')

	s.mu.Lock()
	s.writer.Write(buf.Bytes())
	s.mu.Unlock()
}

// SetOutput sets the output destination. A nil writer routes the sink to
// [io.Discard].
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (s *JSONSink) SetOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w == nil {
		s.writer = io.Discard
	} else {
		s.writer = w
	}
}

// levelKey renders a level the way structured logs expect it: lowercase.
func levelKey(level Level) string {
	switch level {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}
