// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, an optional config file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the record service address and request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local database settings used for the session token.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds log destination and verbosity.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"CONFIG"`
}

// Adapter configures the HTTP client of the record service.
type Adapter struct {
	// HTTPAddress is the API base URL, including the API path prefix
	// (e.g. "http://localhost:8000/api").
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite connection settings.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// Log configures the zerolog output.
type Log struct {
	// File is the log file path. Empty means next to the executable.
	File string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error).
	Level string `env:"LEVEL"`
}

// Defaults used when no source sets a value.
const (
	DefaultHTTPAddress    = "http://localhost:8000/api"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDSN            = "kittygram.db"
	DefaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Log:     Log{Level: DefaultLogLevel},
	}
}
