// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-planner/internal/adapter"
	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/MKhiriev/go-contact-planner/internal/store"
	"github.com/MKhiriev/go-contact-planner/models"
)

// ClientScheduleService owns the appointment editor session and the
// mirrored contact/appointment snapshots. It is the only mutation entry
// point of the scheduling workflow: no other code path may touch the draft
// or trigger persistence.
//
// All methods are safe for the single bubbletea actor plus its command
// goroutines; persistence calls are serialized by a reentrancy guard.
type ClientScheduleService interface {
	// Refresh re-fetches both snapshots from the backend, updating the
	// local cache on success and falling back to the cache when the
	// backend is unreachable.
	Refresh(ctx context.Context) error

	// Contacts returns the current contact snapshot.
	Contacts() []models.Contact

	// Appointments returns the current appointment snapshot.
	Appointments() []models.Appointment

	// ContactByID resolves a contact from the snapshot.
	ContactByID(id int64) (models.Contact, bool)

	// Session returns a copy of the current editor session for rendering.
	Session() EditorSession

	// SelectedDate returns the calendar day currently selected.
	SelectedDate() time.Time

	// SelectDate moves the day selection.
	SelectDate(date time.Time)

	// DayAppointments returns the snapshot's appointments on the given
	// local calendar day, earliest first.
	DayAppointments(date time.Time) []models.Appointment

	// OpenForDate opens a create-mode editor for the given day, refusing
	// past dates with ErrPastDate.
	OpenForDate(date time.Time) error

	// OpenForEdit opens an edit-mode editor for an existing appointment.
	OpenForEdit(a models.Appointment) error

	// PreselectContact handles an externally nominated contact: when the
	// id exists in the snapshot a fresh create-mode draft opens with the
	// contact pre-filled; otherwise nothing opens. In both cases the
	// clear-preselection callback fires exactly once.
	PreselectContact(id int64)

	// SetDraft replaces the in-progress form fields.
	SetDraft(d models.AppointmentDraft)

	// Save validates and persists the draft. Validation failures return
	// ErrValidationFailed with the messages left in the session;
	// transport failures leave the session untouched for retry. On
	// success the session resets and the saved day becomes selected.
	Save(ctx context.Context) error

	// Delete removes the appointment being edited, then resets the
	// session. The consent wording is the caller's job via Disposition.
	Delete(ctx context.Context) error

	// Cancel discards the draft unconditionally.
	Cancel()

	// CreateContactInline validates and persists a new contact during
	// scheduling, prefilling the open draft's contact on success.
	CreateContactInline(ctx context.Context, draft models.ContactDraft) (models.Contact, models.FieldErrors, error)

	// UpdateContact validates and persists changes to an existing
	// contact.
	UpdateContact(ctx context.Context, id int64, draft models.ContactDraft) (models.Contact, models.FieldErrors, error)

	// SearchContacts filters the snapshot by a case-insensitive substring
	// of name or e-mail.
	SearchContacts(query string) []models.Contact
}

// ClientServices bundles every client-side service behind one wiring
// point.
type ClientServices struct {
	ScheduleService ClientScheduleService
}

// NewClientServices wires the client services with their collaborators.
// onClearPreselection is invoked every time a contact preselection has
// been consumed (whether or not an editor opened); cache may be nil when
// offline fallback is disabled.
func NewClientServices(backend adapter.BackendAdapter, cache store.SnapshotCache, onClearPreselection func(), log *logger.Logger) *ClientServices {
	return &ClientServices{
		ScheduleService: NewClientScheduleService(backend, cache, onClearPreselection, log),
	}
}
