// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// planner server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. The API is
// consumed by a German-language product, so the user-facing messages are
// German; keeping them in one place ensures consistent wording throughout.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgNotFound is returned when the addressed record does not exist.
	MsgNotFound = "Nicht gefunden."

	// MsgTenantRejected is returned when the X-Tenant header names an
	// unknown tenant.
	MsgTenantRejected = "Sie haben keine Berechtigung für diese Aktion."

	// MsgListContactsFailed is returned when the contact collection cannot
	// be read.
	MsgListContactsFailed = "error listing contacts"

	// MsgListAppointmentsFailed is returned when the appointment collection
	// cannot be read.
	MsgListAppointmentsFailed = "error listing appointments"
)
