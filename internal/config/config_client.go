// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied to the client view when neither env, flags, nor JSON
// provide a value.
const (
	defaultBackendAddress = "http://127.0.0.1:8000"
	defaultRequestTimeout = 15 * time.Second
	defaultTenant         = "sprintwave-digital"
)

// ClientBackend holds transport settings used by the client adapter.
type ClientBackend struct {
	// Address is the backend base URL.
	Address string
	// RequestTimeout bounds a single outbound request.
	RequestTimeout time.Duration
}

// ClientConfig is the client-specific configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Tenant is the slug attached to every backend call.
	Tenant string
	// Backend contains transport settings.
	Backend ClientBackend
	// CachePath is the SQLite snapshot cache location; empty means an
	// in-memory cache.
	CachePath string
}

// GetClientConfig builds and validates the client view of the merged
// configuration, applying the product defaults for absent values.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Tenant: cfg.App.Tenant,
		Backend: ClientBackend{
			Address:        cfg.Backend.Address,
			RequestTimeout: cfg.Backend.RequestTimeout,
		},
		CachePath: cfg.Storage.CachePath,
	}

	if clientCfg.Backend.Address == "" {
		clientCfg.Backend.Address = defaultBackendAddress
	}
	if clientCfg.Backend.RequestTimeout == 0 {
		clientCfg.Backend.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Tenant == "" {
		clientCfg.Tenant = defaultTenant
	}

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Backend.Address == "" || cfg.Backend.RequestTimeout == 0 {
		return ErrInvalidBackendConfigs
	}
	if cfg.Tenant == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
