// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultHTTPAddress          = ":8000"
	defaultServerRequestTimeout = 30 * time.Second
)

// ServerHTTP holds the HTTP listener settings.
type ServerHTTP struct {
	// Address is the host:port the server listens on.
	Address string
	// RequestTimeout bounds request handling.
	RequestTimeout time.Duration
}

// ServerConfig is the server-specific configuration view assembled from
// [StructuredConfig].
type ServerConfig struct {
	// Tenant is the only slug the server accepts on incoming requests.
	Tenant string
	// HTTP contains listener settings.
	HTTP ServerHTTP
	// DatabaseDSN is the PostgreSQL connection string.
	DatabaseDSN string
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Tenant: cfg.App.Tenant,
		HTTP: ServerHTTP{
			Address:        cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		DatabaseDSN: cfg.Storage.DB.DSN,
	}

	if serverCfg.HTTP.Address == "" {
		serverCfg.HTTP.Address = defaultHTTPAddress
	}
	if serverCfg.HTTP.RequestTimeout == 0 {
		serverCfg.HTTP.RequestTimeout = defaultServerRequestTimeout
	}
	if serverCfg.Tenant == "" {
		serverCfg.Tenant = defaultTenant
	}

	return serverCfg, serverCfg.validate()
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTP.Address == "" || cfg.HTTP.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.DatabaseDSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Tenant == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
