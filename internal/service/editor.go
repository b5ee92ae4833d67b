// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-contact-planner/internal/calendar"
	"github.com/MKhiriev/go-contact-planner/internal/validators"
	"github.com/MKhiriev/go-contact-planner/models"
)

// Mode is the state of the appointment editor session.
type Mode int

const (
	// ModeNone means no editor is open.
	ModeNone Mode = iota

	// ModeCreate means a new appointment is being drafted; there is no
	// backing record yet.
	ModeCreate

	// ModeEdit means an existing appointment, identified by EditingID, is
	// being modified.
	ModeEdit
)

// EditorSession is the ephemeral state of one create/edit workflow. It is
// a plain value mutated only through its transition methods, independent
// of any rendering mechanism, so the whole lifecycle is unit-testable
// without a UI harness.
type EditorSession struct {
	// Mode is the current lifecycle state.
	Mode Mode

	// EditingID is the id of the appointment being edited; zero in create
	// mode.
	EditingID int64

	// EmailLocked is a one-way snapshot of the target appointment's
	// send-email flag taken when edit mode opened. It is never re-derived
	// from later draft edits: once an appointment was persisted with the
	// notification flag set, its deletion keeps the archive wording for
	// the rest of the session.
	EmailLocked bool

	// Draft holds the in-progress form fields.
	Draft models.AppointmentDraft

	// Errors is the authoritative field-error set. It is recomputed only
	// on submit; see PreviewErrors for the non-mutating display pass.
	Errors models.FieldErrors
}

// OpenForDate starts a create-mode session for the given day. Callers must
// refuse past dates before transitioning; the session itself does not
// re-check.
func (s *EditorSession) OpenForDate(date time.Time) {
	s.Mode = ModeCreate
	s.EditingID = 0
	s.EmailLocked = false
	s.Draft = models.NewAppointmentDraft(calendar.FormatForInput(date))
	s.Errors = models.FieldErrors{}
}

// OpenForContact starts a create-mode session with the contact pre-filled
// and no date chosen yet. Used by the "schedule for this contact" flow.
func (s *EditorSession) OpenForContact(contactID int64) {
	s.Mode = ModeCreate
	s.EditingID = 0
	s.EmailLocked = false
	s.Draft = models.NewAppointmentDraft("")
	s.Draft.ContactID = contactID
	s.Errors = models.FieldErrors{}
}

// OpenForEdit starts an edit-mode session pre-filled from an existing
// appointment. The stored instant is split into its local date and time
// components, and EmailLocked snapshots the persisted send-email flag.
func (s *EditorSession) OpenForEdit(a models.Appointment) error {
	at, err := time.Parse(time.RFC3339, a.Datetime)
	if err != nil {
		return fmt.Errorf("parse appointment instant %q: %w", a.Datetime, err)
	}
	local := at.Local()

	s.Mode = ModeEdit
	s.EditingID = a.ID
	s.EmailLocked = a.SendEmail == models.SendEmailYes
	s.Draft = models.AppointmentDraft{
		Date:      calendar.FormatForInput(local),
		Time:      local.Format("15:04"),
		ContactID: a.ContactID,
		Type:      a.Type,
		Note:      a.Note,
		SendEmail: a.SendEmail,
	}
	if s.Draft.SendEmail == "" {
		s.Draft.SendEmail = models.SendEmailNo
	}
	s.Errors = models.FieldErrors{}
	return nil
}

// Reset discards the session unconditionally: no validation, no
// persistence. Used on cancel and after a successful save or delete.
func (s *EditorSession) Reset() {
	*s = EditorSession{Errors: models.FieldErrors{}}
}

// Submit re-runs the full appointment validation and stores the result as
// the authoritative error set. It returns the fresh errors; the session
// stays in its current mode when any are present.
func (s *EditorSession) Submit() models.FieldErrors {
	s.Errors = validators.ValidateAppointment(s.Draft)
	return s.Errors
}

// PreviewErrors computes a throwaway validation pass over the current
// draft without touching the authoritative error set, so exploratory
// inspection (e.g. hovering a disabled submit control) never produces a
// false "errors cleared" flicker.
func (s *EditorSession) PreviewErrors() models.FieldErrors {
	return validators.ValidateAppointment(s.Draft)
}

// Record combines the draft's date and time into a single instant and
// returns the appointment payload for persistence. Submit must have
// passed; Record reports an error for a draft that cannot be combined.
func (s *EditorSession) Record() (models.Appointment, error) {
	day, err := calendar.ParseInputDate(s.Draft.Date)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("combine draft date %q: %w", s.Draft.Date, err)
	}
	clock, err := time.Parse("15:04", s.Draft.Time)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("combine draft time %q: %w", s.Draft.Time, err)
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)

	return models.Appointment{
		ID:        s.EditingID,
		ContactID: s.Draft.ContactID,
		Datetime:  at.Format(time.RFC3339),
		Type:      s.Draft.Type,
		Note:      trimmedNote(s.Draft.Note),
		SendEmail: s.Draft.SendEmail,
	}, nil
}

// trimmedNote normalizes the optional note field: surrounding whitespace
// is dropped and an all-whitespace note becomes absent.
func trimmedNote(s string) string {
	return strings.TrimSpace(s)
}

// DeleteDisposition tells the confirmation layer how a delete request must
// be presented. Both dispositions resolve to the same delete-by-id call;
// the distinction is consent wording only.
type DeleteDisposition int

const (
	// DeletePlain asks for an ordinary delete confirmation.
	DeletePlain DeleteDisposition = iota

	// DeleteArchive asks for the "cancel & archive" confirmation used
	// when an e-mail notification may already be in flight externally.
	DeleteArchive
)

// Disposition returns the confirmation style required to delete the
// appointment currently being edited, gated by the EmailLocked snapshot.
func (s *EditorSession) Disposition() DeleteDisposition {
	if s.EmailLocked {
		return DeleteArchive
	}
	return DeletePlain
}
