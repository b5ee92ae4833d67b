// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrCallInFlight is returned when a save or delete is requested while
	// a previous persistence call on the same session has not resolved.
	ErrCallInFlight = errors.New("persistence call already in flight")

	// ErrNoEditor is returned when an edit-mode-only operation (delete) is
	// requested while no matching editor session is open.
	ErrNoEditor = errors.New("no editor session open")

	// ErrValidationFailed is returned by Save when the draft did not pass
	// validation; the field messages live in the session's error set.
	ErrValidationFailed = errors.New("draft failed validation")

	// ErrPastDate is returned when a create-mode session is requested for
	// a day that already passed.
	ErrPastDate = errors.New("cannot schedule on a past date")

	// ErrInvalidRecord is returned by the server services when an inbound
	// record fails the form rules the backend re-checks.
	ErrInvalidRecord = errors.New("record failed validation")

	// ErrUnknownContact is returned by the server service when an
	// appointment references a contact id that does not exist.
	ErrUnknownContact = errors.New("appointment references unknown contact")

	// ErrUnknownAppointment is returned by the server service when an
	// update or delete targets an id that does not exist.
	ErrUnknownAppointment = errors.New("appointment not found")
)
