// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// configuration service. It is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage describes the directory tree configuration is served from.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Templating holds parameter substitution settings.
	Templating Templating `envPrefix:"TEMPLATING_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage describes the configuration tree on disk.
type Storage struct {
	// BaseDirectory is the root holding one directory (or .redirect record)
	// per application.
	// Env: STORAGE_BASE_DIR
	BaseDirectory string `env:"BASE_DIR"`

	// Extension is the file extension of module, base and parameter files,
	// including the leading dot (e.g. ".config", ".json", ".yaml").
	// Env: STORAGE_EXTENSION
	Extension string `env:"EXTENSION"`

	// ParametersName is the file name (without extension) of the parameter
	// document of each application.
	// Env: STORAGE_PARAMETERS_NAME
	ParametersName string `env:"PARAMETERS_NAME"`

	// Cache controls the in-memory document cache.
	Cache Cache `envPrefix:"CACHE_"`
}

// Cache controls the modification-invalidated document cache.
type Cache struct {
	// Enabled turns the cache on.
	// Env: STORAGE_CACHE_ENABLED
	Enabled bool `env:"ENABLED"`

	// MaxIdle is how long an entry may go unused before the janitor evicts it.
	// Env: STORAGE_CACHE_MAX_IDLE
	MaxIdle time.Duration `env:"MAX_IDLE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Templating holds parameter substitution settings.
type Templating struct {
	// MissingParameterToken, when non-empty, is written in place of
	// parameters that cannot be resolved instead of failing the request.
	// Env: TEMPLATING_MISSING_PARAMETER_TOKEN
	MissingParameterToken string `env:"MISSING_PARAMETER_TOKEN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// CachePurgeInterval is how often stale cache entries are evicted.
	// Env: WORKERS_CACHE_PURGE_INTERVAL
	CachePurgeInterval time.Duration `env:"CACHE_PURGE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
