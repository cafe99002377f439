// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for loggate.
// It implements a Cobra-based CLI that submits messages through a severity
// gate built from a configuration file and flags, supporting the plain,
// JSON, and go-logging sink backends, plus a "levels" subcommand that
// renders the severity table. The package handles stdin input and context
// cancellation.
package cli
