// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-planner/internal/calendar"
	"github.com/MKhiriev/go-contact-planner/internal/validators"
	"github.com/MKhiriev/go-contact-planner/models"
)

// ── opening ──────────────────────────────────────────────────────────────────

func TestEditorSession_OpenForDate(t *testing.T) {
	var s EditorSession
	date := time.Date(2027, 5, 20, 0, 0, 0, 0, time.Local)

	s.OpenForDate(date)

	assert.Equal(t, ModeCreate, s.Mode)
	assert.Zero(t, s.EditingID)
	assert.False(t, s.EmailLocked)
	assert.Equal(t, "2027-05-20", s.Draft.Date)
	assert.Equal(t, models.TypeLiveCall, s.Draft.Type, "default interaction type")
	assert.Equal(t, models.SendEmailNo, s.Draft.SendEmail)
	assert.True(t, s.Errors.Empty())
}

func TestEditorSession_OpenForContact(t *testing.T) {
	var s EditorSession

	s.OpenForContact(42)

	assert.Equal(t, ModeCreate, s.Mode)
	assert.Equal(t, int64(42), s.Draft.ContactID)
	assert.Empty(t, s.Draft.Date, "no day chosen yet")
}

func TestEditorSession_OpenForEdit(t *testing.T) {
	at := time.Date(2027, 5, 20, 16, 45, 0, 0, time.Local)
	appointment := models.Appointment{
		ID:        9,
		ContactID: 3,
		Datetime:  at.Format(time.RFC3339),
		Type:      models.TypePhone,
		Note:      "Rückruf",
		SendEmail: models.SendEmailYes,
	}

	var s EditorSession
	require.NoError(t, s.OpenForEdit(appointment))

	assert.Equal(t, ModeEdit, s.Mode)
	assert.Equal(t, int64(9), s.EditingID)
	assert.True(t, s.EmailLocked)
	assert.Equal(t, "2027-05-20", s.Draft.Date)
	assert.Equal(t, "16:45", s.Draft.Time)
	assert.Equal(t, models.TypePhone, s.Draft.Type)
	assert.Equal(t, "Rückruf", s.Draft.Note)
}

func TestEditorSession_OpenForEdit_BadInstant(t *testing.T) {
	var s EditorSession
	err := s.OpenForEdit(models.Appointment{Datetime: "morgen"})
	assert.Error(t, err)
}

func TestEditorSession_OpenForEdit_EmptySendEmailDefaultsToNo(t *testing.T) {
	var s EditorSession
	require.NoError(t, s.OpenForEdit(models.Appointment{
		Datetime: time.Now().Format(time.RFC3339),
	}))

	assert.Equal(t, models.SendEmailNo, s.Draft.SendEmail)
	assert.False(t, s.EmailLocked)
}

// ── the EmailLocked snapshot ─────────────────────────────────────────────────

func TestEditorSession_EmailLockedSurvivesDraftEdits(t *testing.T) {
	var s EditorSession
	require.NoError(t, s.OpenForEdit(models.Appointment{
		ID:        1,
		Datetime:  time.Now().Format(time.RFC3339),
		SendEmail: models.SendEmailYes,
	}))
	require.True(t, s.EmailLocked)

	// turning the flag off in the draft must not unlock the snapshot
	s.Draft.SendEmail = models.SendEmailNo

	assert.True(t, s.EmailLocked)
	assert.Equal(t, DeleteArchive, s.Disposition())
}

func TestEditorSession_Disposition(t *testing.T) {
	var s EditorSession
	assert.Equal(t, DeletePlain, s.Disposition())

	require.NoError(t, s.OpenForEdit(models.Appointment{
		Datetime:  time.Now().Format(time.RFC3339),
		SendEmail: models.SendEmailNo,
	}))
	assert.Equal(t, DeletePlain, s.Disposition())

	require.NoError(t, s.OpenForEdit(models.Appointment{
		Datetime:  time.Now().Format(time.RFC3339),
		SendEmail: models.SendEmailYes,
	}))
	assert.Equal(t, DeleteArchive, s.Disposition())
}

// ── submit / preview ─────────────────────────────────────────────────────────

func TestEditorSession_Submit_StoresAuthoritativeErrors(t *testing.T) {
	var s EditorSession
	s.OpenForDate(time.Now())

	errs := s.Submit()

	assert.False(t, errs.Empty())
	assert.Equal(t, errs, s.Errors)
	assert.Equal(t, ModeCreate, s.Mode, "failed submit keeps the session open")
}

func TestEditorSession_PreviewErrors_DoesNotMutate(t *testing.T) {
	var s EditorSession
	s.OpenForDate(time.Now())
	require.True(t, s.Errors.Empty())

	preview := s.PreviewErrors()

	assert.False(t, preview.Empty())
	assert.True(t, s.Errors.Empty(), "preview must not touch the authoritative set")
}

// ── record assembly ──────────────────────────────────────────────────────────

func TestEditorSession_Record(t *testing.T) {
	var s EditorSession
	s.OpenForDate(time.Date(2027, 5, 20, 0, 0, 0, 0, time.Local))
	s.Draft.Time = "09:15"
	s.Draft.ContactID = 4
	s.Draft.Note = "  Projektbesprechung  "

	record, err := s.Record()
	require.NoError(t, err)

	at, err := time.Parse(time.RFC3339, record.Datetime)
	require.NoError(t, err)

	assert.Equal(t, 2027, at.Year())
	assert.Equal(t, time.May, at.Month())
	assert.Equal(t, 20, at.Day())
	assert.Equal(t, 9, at.Hour())
	assert.Equal(t, 15, at.Minute())
	assert.Equal(t, "Projektbesprechung", record.Note, "note is trimmed")
	assert.Equal(t, int64(4), record.ContactID)
}

func TestEditorSession_Record_UncombinableDraft(t *testing.T) {
	var s EditorSession
	s.OpenForDate(time.Now())
	s.Draft.Time = "gleich"

	_, err := s.Record()
	assert.Error(t, err)
}

// ── reset ────────────────────────────────────────────────────────────────────

func TestEditorSession_Reset(t *testing.T) {
	var s EditorSession
	require.NoError(t, s.OpenForEdit(models.Appointment{
		ID:        5,
		Datetime:  time.Now().Format(time.RFC3339),
		SendEmail: models.SendEmailYes,
	}))
	s.Submit()

	s.Reset()

	assert.Equal(t, ModeNone, s.Mode)
	assert.Zero(t, s.EditingID)
	assert.False(t, s.EmailLocked)
	assert.True(t, s.Errors.Empty())
	assert.Equal(t, models.AppointmentDraft{}, s.Draft)
}

// sanity: the draft date written by OpenForDate parses back
func TestEditorSession_DraftDateRoundTrip(t *testing.T) {
	var s EditorSession
	date := time.Date(2027, 1, 7, 0, 0, 0, 0, time.Local)
	s.OpenForDate(date)

	parsed, err := calendar.ParseInputDate(s.Draft.Date)
	require.NoError(t, err)
	assert.True(t, calendar.SameDay(date, parsed))

	assert.True(t, s.Submit().Get(validators.FieldTime) != "", "time still missing")
}
