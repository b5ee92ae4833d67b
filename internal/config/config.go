// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the layered configuration of both processes.
//
// Values are merged from environment variables, command-line flags, and an
// optional JSON file; the merged [StructuredConfig] is then projected into
// the process-specific views [ClientConfig] and [ServerConfig].
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// TUI client and the reference backend.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds tenant-wide application settings.
	App App `envPrefix:"APP_"`

	// Backend holds the client's view of the remote store: where it
	// lives and how long to wait for it.
	Backend Backend `envPrefix:"BACKEND_"`

	// Server holds the listen settings of the reference backend.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds persistence settings for both processes.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of env and flag values when non-empty.
	// Populated via the CONFIG variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds tenant-wide settings.
type App struct {
	// Tenant is the slug stamped onto every backend call as the X-Tenant
	// header and checked by the backend's tenant middleware. It is always
	// injected explicitly, never resolved from ambient state.
	// Env: APP_TENANT
	Tenant string `env:"TENANT"`
}

// Backend holds the client's transport settings.
type Backend struct {
	// Address is the base URL of the appointment backend
	// (e.g. "http://127.0.0.1:8000").
	// Env: BACKEND_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound call (e.g. "15s").
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds the reference backend's inbound settings.
type Server struct {
	// HTTPAddress is the TCP listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the backend's relational database settings.
	DB DB `envPrefix:"DB_"`

	// CachePath is the client's SQLite snapshot cache location; empty
	// disables persistence (an in-memory cache is used).
	// Env: STORAGE_CACHE_PATH
	CachePath string `env:"CACHE_PATH"`
}

// DB holds connection settings for the backend database.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources in priority order (the first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
