// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"

	"github.com/MKhiriev/go-contact-planner/models"
)

// User-facing messages of the contact form.
const (
	MsgNameRequired  = "Name ist erforderlich."
	MsgNameTooShort  = "Name sollte mindestens 3 Zeichen haben."
	MsgEmailRequired = "E-Mail ist erforderlich."
	MsgEmailFormat   = "Bitte eine gültige E-Mail-Adresse eingeben."
	MsgPhoneTooShort = "Telefonnummer ist zu kurz."
	MsgNoteTooLong   = "Notiz darf maximal 1000 Zeichen haben."
)

// Length limits of the contact form.
const (
	MinNameLen  = 3
	MinPhoneLen = 6
	MaxNoteLen  = 1000
)

// ValidateContact checks a contact draft. All fields are trimmed before
// evaluation. Phone and note are optional: empty values are always valid,
// non-empty ones must meet the length limits. The address field carries no
// rules.
func ValidateContact(form models.ContactDraft) models.FieldErrors {
	errs := models.FieldErrors{}

	name := strings.TrimSpace(form.Name)
	switch {
	case name == "":
		errs[FieldName] = MsgNameRequired
	case len([]rune(name)) < MinNameLen:
		errs[FieldName] = MsgNameTooShort
	}

	email := strings.TrimSpace(form.Email)
	switch {
	case email == "":
		errs[FieldEmail] = MsgEmailRequired
	case !emailPattern.MatchString(email):
		errs[FieldEmail] = MsgEmailFormat
	}

	if phone := strings.TrimSpace(form.Phone); phone != "" && len([]rune(phone)) < MinPhoneLen {
		errs[FieldPhone] = MsgPhoneTooShort
	}

	if note := strings.TrimSpace(form.Note); note != "" && len([]rune(note)) > MaxNoteLen {
		errs[FieldNote] = MsgNoteTooLong
	}

	return errs
}
