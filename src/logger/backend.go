// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"os"
	"sync"

	gol "github.com/op/go-logging"
)

// StandardFormat is the default go-logging record format: colored timestamp
// and four-letter level tag, then the message.
const StandardFormat = `%{color}[%{time:15:04:05.000} %{level:.4s}]%{color:reset} %{message}`

// golModule is the module name registered with the go-logging library.
const golModule = "loggate"

// GoLoggingSink is a [Sink] backed by the go-logging library, which owns
// timestamping, level tags, and terminal coloring. The backend is built
// once, on the first admitted message; until then the sink holds only its
// configuration.
//
// GoLoggingSink is safe for concurrent use by multiple goroutines.
type GoLoggingSink struct {
	// Format is the go-logging record format string.
	// Empty means StandardFormat.
	Format string
	// Out is the destination writer. Nil means os.Stderr.
	Out io.Writer

	once sync.Once
	log  *gol.Logger
}

// NewGoLoggingSink creates a go-logging backed sink writing to w.
// A nil writer falls back to [os.Stderr].
func NewGoLoggingSink(w io.Writer) *GoLoggingSink {
	return &GoLoggingSink{Out: w}
}

// setup builds the go-logging backend exactly once: backend, formatter,
// and a leveled wrapper whose baseline is INFO so that admission decisions
// stay with the Gate rather than being second-guessed here.
func (s *GoLoggingSink) setup() {
	format := s.Format
	if format == "" {
		format = StandardFormat
	}
	out := s.Out
	if out == nil {
		out = os.Stderr
	}

	backend := gol.NewLogBackend(out, "", 0)
	formatted := gol.NewBackendFormatter(backend, gol.MustStringFormatter(format))
	leveled := gol.AddModuleLevel(formatted)
	leveled.SetLevel(gol.INFO, golModule)

	s.log = gol.MustGetLogger(golModule)
	s.log.SetBackend(leveled)
}

// Emit forwards an admitted message to the go-logging backend, performing
// the one-time backend setup on the first call.
func (s *GoLoggingSink) Emit(level Level, message string) {
	s.once.Do(s.setup)

	switch level {
	case LevelWarning:
		s.log.Warning(message)
	case LevelError:
		s.log.Error(message)
	default:
		s.log.Info(message)
	}
}
