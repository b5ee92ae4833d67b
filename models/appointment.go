// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppointmentType is the closed set of interaction kinds an appointment
// can be scheduled as.
type AppointmentType string

const (
	// TypeChat is a text chat session.
	TypeChat AppointmentType = "chat"

	// TypeEmail is a scheduled e-mail exchange.
	TypeEmail AppointmentType = "email"

	// TypePhone is a regular phone call.
	TypePhone AppointmentType = "phone"

	// TypeLiveCall is a live video call. It is the default for new
	// appointments.
	TypeLiveCall AppointmentType = "livecall"
)

// SendEmail values on the wire. The backend stores the flag as a string,
// not a boolean; the client preserves that format.
const (
	SendEmailYes = "yes"
	SendEmailNo  = "no"
)

// Appointment represents a scheduled interaction with a contact.
// The record is owned by the backend; the client only mirrors it.
type Appointment struct {
	// ID is the backend-assigned identifier of the appointment.
	ID int64 `json:"id"`

	// ContactID references the contact the appointment is scheduled with.
	// Referential integrity is enforced by the backend.
	ContactID int64 `json:"contactId"`

	// Datetime is the absolute instant of the appointment as an RFC 3339
	// string, combining a calendar date and a local time of day.
	Datetime string `json:"datetime"`

	// Type is one of the AppointmentType values.
	Type AppointmentType `json:"type"`

	// Note is an optional free-text annotation. Empty means absent.
	Note string `json:"note,omitempty"`

	// SendEmail is "yes" when an e-mail notification should be produced
	// for this appointment by an external process, "no" otherwise.
	// Once persisted as "yes", deletion goes through the archive path.
	SendEmail string `json:"sendEmail"`
}

// AppointmentDraft is the editable form state of the appointment editor.
// Date and Time are kept as separate strings exactly as entered; they are
// combined into a single instant only on save.
type AppointmentDraft struct {
	// Date in YYYY-MM-DD form.
	Date string

	// Time in 24-hour HH:MM form.
	Time string

	// ContactID is the raw contact selection; 0 means none selected.
	ContactID int64

	// Type of the interaction.
	Type AppointmentType

	// Note is a free-text annotation.
	Note string

	// SendEmail is the "yes"/"no" notification choice.
	SendEmail string
}

// NewAppointmentDraft returns the draft defaults used whenever a fresh
// create-mode editor opens: no time, no contact, live call, no e-mail.
func NewAppointmentDraft(date string) AppointmentDraft {
	return AppointmentDraft{
		Date:      date,
		Type:      TypeLiveCall,
		SendEmail: SendEmailNo,
	}
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
