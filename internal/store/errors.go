// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrNoRows is returned when a lookup, update, or delete matched no
	// record.
	ErrNoRows = errors.New("no matching rows")

	// ErrExecutingQuery wraps database-level failures while running a
	// statement.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow wraps failures while reading a result row.
	ErrScanningRow = errors.New("error scanning row")

	// ErrConstraint is returned when the database rejects a statement on
	// an integrity constraint (e.g. the appointment->contact foreign key).
	ErrConstraint = errors.New("constraint violation")
)
