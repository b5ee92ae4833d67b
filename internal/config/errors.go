// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by the config views when required groups are
// incomplete.
var (
	// ErrInvalidBackendConfigs indicates missing client transport
	// settings (backend address).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")

	// ErrInvalidServerConfigs indicates missing backend listen settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidStorageConfigs indicates missing database settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs indicates a missing tenant slug.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
