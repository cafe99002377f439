// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides severity-gated logging. A [Gate] holds a single
// mutable threshold and forwards messages at or above it to a pluggable
// [Sink]; everything below is silently discarded. Three sinks ship with the
// package: WriterSink for plain terminal lines, JSONSink for structured
// one-object-per-line output, and GoLoggingSink backed by the go-logging
// library. Gates are explicitly constructed and independently testable with
// a fake sink; a lazily-created process-wide gate is available through
// Default and the package-level forwarding functions for code that cannot
// thread a gate through. All types are safe for concurrent use.
package logger
