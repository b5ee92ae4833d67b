// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store contains the persistence layer of both processes: the
// backend's PostgreSQL repositories for contacts and appointments, and the
// client's SQLite snapshot cache used for offline reads.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-planner/models"
)

// ContactRepository persists contact records for the backend.
type ContactRepository interface {
	// List returns every contact ordered by name.
	List(ctx context.Context) ([]models.Contact, error)

	// Get returns the contact with the given id, or ErrNoRows.
	Get(ctx context.Context, id int64) (models.Contact, error)

	// Create inserts the contact and returns it with the assigned id.
	Create(ctx context.Context, contact models.Contact) (models.Contact, error)

	// Update replaces the stored contact, or returns ErrNoRows.
	Update(ctx context.Context, id int64, contact models.Contact) (models.Contact, error)
}

// AppointmentFilter narrows an appointment listing. Zero values disable
// the respective condition.
type AppointmentFilter struct {
	// ContactID restricts to appointments with this contact.
	ContactID int64

	// From restricts to instants at or after this time.
	From time.Time

	// To restricts to instants before this time.
	To time.Time
}

// AppointmentRepository persists appointment records for the backend.
type AppointmentRepository interface {
	// List returns appointments matching the filter, earliest first.
	List(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error)

	// Create inserts the appointment and returns it with the assigned id.
	Create(ctx context.Context, appointment models.Appointment) (models.Appointment, error)

	// Update replaces the stored appointment, or returns ErrNoRows.
	Update(ctx context.Context, id int64, appointment models.Appointment) (models.Appointment, error)

	// Delete removes the appointment, or returns ErrNoRows.
	Delete(ctx context.Context, id int64) error
}

// SnapshotCache stores the last successfully fetched collections on the
// client, so the calendar stays readable when the backend is unreachable.
type SnapshotCache interface {
	// Store replaces the cached snapshot.
	Store(contacts []models.Contact, appointments []models.Appointment) error

	// Load returns the cached snapshot, or an error when none exists.
	Load() ([]models.Contact, []models.Appointment, error)

	// Close releases the underlying database.
	Close() error
}
