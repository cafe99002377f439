// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// loggate is a command-line tool for submitting messages through a
// severity-gated logger.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/loggate/cmd/loggate@latest
//
// # Usage
//
//	loggate [MESSAGE...] [FLAGS]
//
// With no message arguments, loggate reads one message per line from stdin.
//
// # Flags
//
//	-l, --level    Minimum severity forwarded to the sink (default: warning)
//	-s, --severity Severity the message(s) are submitted at (default: info)
//	-b, --backend  Sink backend: plain, json, or gologging (default: plain)
//	-o, --output   Sink destination: stderr, stdout, or a file path
//	-c, --config   Configuration file (.json, .yaml, .yml)
//	    --silent   Suppress all sink output
//
// # Examples
//
// Emit a warning (forwarded at the default threshold):
//
//	loggate -s warning "disk almost full"
//
// Emit an info message (discarded at the default threshold):
//
//	loggate -s info "routine detail"
//
// Lower the threshold so info messages pass, as structured JSON:
//
//	loggate -l info -s info -b json "routine detail"
//
// Gate a stream of lines into a file:
//
//	tail -f app.out | loggate -s error -o app.log
//
// Show the severity table at a given threshold:
//
//	loggate levels -l error
package main
