// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// ConfigFileEnv is the environment variable consulted for a configuration
// file path when none is passed to [LoadConfig].
const ConfigFileEnv = "LOGGATE_CONFIG_FILE"

// Backend names accepted by [Config].
const (
	// BackendPlain selects a [WriterSink] ("[LEVEL] message" lines).
	BackendPlain = "plain"
	// BackendJSON selects a [JSONSink] (one JSON object per line).
	BackendJSON = "json"
	// BackendGoLogging selects a [GoLoggingSink] (go-logging library).
	BackendGoLogging = "gologging"
)

// Output names with special meaning in [Config]. Anything else is treated
// as a file path, opened for appending.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
)

// Config describes how to assemble a [Gate]: its threshold, the sink
// implementation behind it, and where that sink writes.
//
// It can be loaded from a JSON or YAML file (extension-detected), with
// defaults applied for any missing values.
type Config struct {
	// Level is the gate threshold. Defaults to warning.
	Level Level `json:"level" yaml:"level"`
	// Backend selects the sink implementation: plain, json, or gologging.
	// Defaults to plain.
	Backend string `json:"backend" yaml:"backend"`
	// Output is the sink destination: stderr, stdout, or a file path.
	// Defaults to stderr.
	Output string `json:"output" yaml:"output"`
	// Silent suppresses all sink output (json backend only honors this
	// natively; other backends are routed to io.Discard).
	Silent bool `json:"silent,omitempty" yaml:"silent,omitempty"`
	// Format is the go-logging record format string, used only by the
	// gologging backend. Empty means StandardFormat.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// detectConfigFormat determines the configuration file format based on the
// file extension, case-insensitively. Unknown extensions fall back to JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the detected
// format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// LoadConfig loads gate configuration from a JSON or YAML file, or applies
// defaults when no file is given.
//
// Configuration priority:
//  1. Default values are set (warning threshold, plain backend, stderr).
//  2. The LOGGATE_CONFIG_FILE environment variable is checked if
//     configPath is empty.
//  3. Config file values override defaults (if a path was found).
//
// Unknown level names in the file are unmarshal errors; unknown backend
// names are rejected here so a typo fails at load time rather than at
// [Config.Build] time.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Level:   DefaultLevel,
		Backend: BackendPlain,
		Output:  OutputStderr,
	}

	if configPath == "" {
		configPath = os.Getenv(ConfigFileEnv)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		if config.Backend == "" {
			config.Backend = BackendPlain
		}
		if config.Output == "" {
			config.Output = OutputStderr
		}
	}

	switch config.Backend {
	case BackendPlain, BackendJSON, BackendGoLogging:
	default:
		return nil, fmt.Errorf("unknown log backend %q", config.Backend)
	}

	return config, nil
}

// Build assembles a [Gate] from the configuration. When Output is a file
// path the returned closer owns that file and the caller must close it;
// for stderr/stdout the closer is nil.
func (c *Config) Build() (*Gate, io.Closer, error) {
	var (
		w      io.Writer
		closer io.Closer
	)

	switch c.Output {
	case OutputStderr, "":
		w = os.Stderr
	case OutputStdout:
		w = os.Stdout
	default:
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log output file: %w", err)
		}
		w = f
		closer = f
	}

	if c.Silent && c.Backend != BackendJSON {
		w = io.Discard
	}

	var sink Sink
	switch c.Backend {
	case BackendJSON:
		sink = NewJSONSink(w, c.Silent)
	case BackendGoLogging:
		sink = &GoLoggingSink{Format: c.Format, Out: w}
	case BackendPlain, "":
		sink = NewWriterSink(w)
	default:
		if closer != nil {
			closer.Close()
		}
		return nil, nil, fmt.Errorf("unknown log backend %q", c.Backend)
	}

	gate := NewGate(sink)
	gate.SetThreshold(c.Level)
	return gate, closer, nil
}
