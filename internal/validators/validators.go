// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators contains the pure form validation behind the
// appointment editor and the contact forms.
//
// Both validators map a draft to a [models.FieldErrors] set. An empty set
// is the success signal; invalid input never produces a Go error. Rules
// are evaluated independently so a form reports every applicable problem
// at once, not just the first.
package validators

import "regexp"

// Field names used as keys of the returned [models.FieldErrors] maps.
// They match the draft field they describe, so the UI can attach each
// message to its input.
const (
	FieldDate      = "date"
	FieldTime      = "time"
	FieldContactID = "contactId"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldNote      = "note"
)

// SchedulingHorizonYears bounds how far into the future an appointment
// date may lie.
const SchedulingHorizonYears = 10

var (
	// timePattern accepts 24-hour HH:MM values, 00:00 through 23:59.
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	// emailPattern is the RFC-lite check used by the product: a local
	// part, an @, and a domain with at least one dot, no whitespace.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)
