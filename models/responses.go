// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DetailResponse is the error envelope used by the backend for every
// non-2xx response, mirroring the Django-REST convention the tenant API
// was originally served by.
type DetailResponse struct {
	// Detail is the human-readable failure description.
	Detail string `json:"detail"`
}
