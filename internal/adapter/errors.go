// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrNotFound is returned when the backend answers 404 for an id the
	// client believed to exist (e.g. a record deleted concurrently).
	ErrNotFound = errors.New("record not found on backend")

	// ErrBadRequest is returned when the backend rejects the payload
	// (400), typically a referential-integrity failure.
	ErrBadRequest = errors.New("backend rejected request")

	// ErrTenantRejected is returned when the backend refuses the
	// configured tenant slug (403).
	ErrTenantRejected = errors.New("tenant rejected by backend")

	// ErrUnavailable is returned for 5xx responses.
	ErrUnavailable = errors.New("backend unavailable")
)
