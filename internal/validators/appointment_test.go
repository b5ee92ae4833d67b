// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-contact-planner/internal/calendar"
	"github.com/MKhiriev/go-contact-planner/models"
)

func validDraft() models.AppointmentDraft {
	return models.AppointmentDraft{
		Date:      calendar.FormatForInput(time.Now()),
		Time:      "14:30",
		ContactID: 7,
		Type:      models.TypeLiveCall,
		SendEmail: models.SendEmailNo,
	}
}

// ── date rules ───────────────────────────────────────────────────────────────

func TestValidateAppointment_ValidDraft(t *testing.T) {
	errs := ValidateAppointment(validDraft())
	assert.True(t, errs.Empty(), "unexpected errors: %v", errs)
}

func TestValidateAppointment_DateRequired(t *testing.T) {
	draft := validDraft()
	draft.Date = ""

	errs := ValidateAppointment(draft)
	assert.Equal(t, MsgDateRequired, errs.Get(FieldDate))
}

func TestValidateAppointment_DateUnparseable(t *testing.T) {
	draft := validDraft()
	draft.Date = "kein-datum"

	errs := ValidateAppointment(draft)
	assert.Equal(t, MsgDateRequired, errs.Get(FieldDate))
}

func TestValidateAppointment_DateInPast(t *testing.T) {
	draft := validDraft()
	draft.Date = calendar.FormatForInput(time.Now().AddDate(0, 0, -1))

	errs := ValidateAppointment(draft)
	assert.Equal(t, MsgDateInPast, errs.Get(FieldDate))
}

func TestValidateAppointment_TodayIsAllowed(t *testing.T) {
	errs := ValidateAppointment(validDraft())
	assert.Empty(t, errs.Get(FieldDate))
}

func TestValidateAppointment_HorizonBoundary(t *testing.T) {
	bounds := calendar.TodayAndMaxDate(SchedulingHorizonYears)

	onBoundary := validDraft()
	onBoundary.Date = bounds.MaxStr
	assert.Empty(t, ValidateAppointment(onBoundary).Get(FieldDate),
		"the horizon date itself is admissible")

	beyond := validDraft()
	beyond.Date = calendar.FormatForInput(bounds.Max.AddDate(0, 0, 1))
	assert.Equal(t, MsgDateTooFar, ValidateAppointment(beyond).Get(FieldDate))
}

// ── time rules ───────────────────────────────────────────────────────────────

func TestValidateAppointment_TimeRequired(t *testing.T) {
	draft := validDraft()
	draft.Time = ""

	errs := ValidateAppointment(draft)
	assert.Equal(t, MsgTimeRequired, errs.Get(FieldTime))
}

func TestValidateAppointment_TimeFormat(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"14:30", ""},
		{"00:00", ""},
		{"23:59", ""},
		{"24:00", MsgTimeFormat},
		{"9:30", MsgTimeFormat},
		{"14:60", MsgTimeFormat},
		{"1430", MsgTimeFormat},
		{"14:3", MsgTimeFormat},
		{"abc", MsgTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			draft := validDraft()
			draft.Time = tt.value
			assert.Equal(t, tt.want, ValidateAppointment(draft).Get(FieldTime))
		})
	}
}

func TestValidateAppointment_FormatMessageWinsOverRequired(t *testing.T) {
	// a non-empty invalid value carries the format message only
	draft := validDraft()
	draft.Time = "later"

	errs := ValidateAppointment(draft)
	assert.Equal(t, MsgTimeFormat, errs.Get(FieldTime))
}

// ── contact rule and independence ────────────────────────────────────────────

func TestValidateAppointment_ContactRequired(t *testing.T) {
	draft := validDraft()
	draft.ContactID = 0

	errs := ValidateAppointment(draft)
	assert.Equal(t, MsgContact, errs.Get(FieldContactID))
}

func TestValidateAppointment_ReportsAllFieldsAtOnce(t *testing.T) {
	errs := ValidateAppointment(models.AppointmentDraft{})

	assert.Len(t, errs, 3)
	assert.Equal(t, MsgDateRequired, errs.Get(FieldDate))
	assert.Equal(t, MsgTimeRequired, errs.Get(FieldTime))
	assert.Equal(t, MsgContact, errs.Get(FieldContactID))
}

func TestValidateAppointment_LateTimeOnBoundaryDateStaysValid(t *testing.T) {
	// only the date component is bounds-checked; the combined instant is not
	bounds := calendar.TodayAndMaxDate(SchedulingHorizonYears)

	draft := validDraft()
	draft.Date = bounds.MaxStr
	draft.Time = "23:59"

	assert.True(t, ValidateAppointment(draft).Empty())
}
