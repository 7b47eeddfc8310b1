// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// qa-demo-api server and its smoke client. It is populated by merging values
// from environment variables, command-line flags, and an optional JSON file,
// with built-in defaults filling whatever is left empty.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the advertised version and the
	// log level.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Features holds demo toggles. Its variables are read without a prefix so
	// that BUG_ADD keeps its historical name.
	Features Features

	// Adapter holds the settings the smoke client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Smoke holds the credentials the smoke client logs in with.
	Smoke Smoke `envPrefix:"SMOKE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Features holds demo-only behaviour switches.
type Features struct {
	// BugAdd is the raw value of BUG_ADD. Only the exact string "1" turns
	// bug mode on; see [Features.BugMode].
	// Env: BUG_ADD
	BugAdd string `env:"BUG_ADD"`
}

// BugMode reports whether the /math/add bug toggle is active.
func (f Features) BugMode() bool {
	return f.BugAdd == "1"
}

// Adapter holds outbound client settings.
type Adapter struct {
	// HTTPAddress is the base address of the server, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Smoke holds the account the smoke client uses.
type Smoke struct {
	// Env: SMOKE_USERNAME
	Username string `env:"USERNAME"`
	// Env: SMOKE_PASSWORD
	Password string `env:"PASSWORD"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to whatever is still empty after the merge.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
