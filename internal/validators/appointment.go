// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"github.com/MKhiriev/go-contact-planner/internal/calendar"
	"github.com/MKhiriev/go-contact-planner/models"
)

// User-facing messages of the appointment form.
const (
	MsgDateRequired = "Bitte ein Datum wählen."
	MsgDateInPast   = "Termine in der Vergangenheit können nicht neu angelegt werden."
	MsgDateTooFar   = "Datum darf maximal 10 Jahre in der Zukunft liegen."
	MsgTimeRequired = "Bitte eine Uhrzeit eingeben."
	MsgTimeFormat   = "Bitte eine gültige Uhrzeit im Format HH:MM angeben."
	MsgContact      = "Bitte einen Kontakt auswählen."
)

// ValidateAppointment checks an appointment draft against the scheduling
// rules.
//
// The date component alone is bounds-checked (required, not in the past,
// at most SchedulingHorizonYears ahead); the combined date+time instant is
// deliberately not re-checked, so a late-night time on the boundary date
// stays valid. On the time field the format rule wins over the required
// rule: a non-empty invalid value carries only the format message.
func ValidateAppointment(form models.AppointmentDraft) models.FieldErrors {
	errs := models.FieldErrors{}

	if form.Date == "" {
		errs[FieldDate] = MsgDateRequired
	} else if selected, err := calendar.ParseInputDate(form.Date); err != nil {
		errs[FieldDate] = MsgDateRequired
	} else {
		bounds := calendar.TodayAndMaxDate(SchedulingHorizonYears)
		switch {
		case selected.Before(bounds.Today):
			errs[FieldDate] = MsgDateInPast
		case selected.After(bounds.Max):
			errs[FieldDate] = MsgDateTooFar
		}
	}

	if form.Time == "" {
		errs[FieldTime] = MsgTimeRequired
	}

	if form.ContactID == 0 {
		errs[FieldContactID] = MsgContact
	}

	if form.Time != "" && !timePattern.MatchString(form.Time) {
		errs[FieldTime] = MsgTimeFormat
	}

	return errs
}
