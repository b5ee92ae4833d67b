// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-contact-planner/models"

type refreshDoneMsg struct {
	err error
}

type appointmentSavedMsg struct {
	err error
}

type appointmentDeletedMsg struct {
	err error
}

type contactSavedMsg struct {
	contact models.Contact
	errs    models.FieldErrors
	err     error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
