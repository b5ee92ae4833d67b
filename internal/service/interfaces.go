// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of both halves of the system:
// the client-side scheduling workflow (editor session, snapshots) and the
// backend-side record services that enforce referential integrity and
// assign identifiers.
package service

import (
	"context"

	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/MKhiriev/go-contact-planner/internal/store"
	"github.com/MKhiriev/go-contact-planner/models"
)

// ContactService is the backend's contact record service.
type ContactService interface {
	// List returns every contact of the tenant.
	List(ctx context.Context) ([]models.Contact, error)

	// Create stores a new contact and assigns its id.
	Create(ctx context.Context, contact models.Contact) (models.Contact, error)

	// Update replaces the contact identified by id.
	Update(ctx context.Context, id int64, contact models.Contact) (models.Contact, error)
}

// AppointmentService is the backend's appointment record service.
type AppointmentService interface {
	// List returns appointments matching the optional filter.
	List(ctx context.Context, filter store.AppointmentFilter) ([]models.Appointment, error)

	// Create stores a new appointment and assigns its id. The referenced
	// contact must exist; otherwise ErrUnknownContact is returned.
	Create(ctx context.Context, appointment models.Appointment) (models.Appointment, error)

	// Update replaces the appointment identified by id, re-checking the
	// contact reference.
	Update(ctx context.Context, id int64, appointment models.Appointment) (models.Appointment, error)

	// Delete removes the appointment identified by id.
	Delete(ctx context.Context, id int64) error
}

// Services bundles the backend services for the HTTP handlers.
type Services struct {
	ContactService     ContactService
	AppointmentService AppointmentService
}

// NewServices wires the backend services to their repositories.
func NewServices(storages *store.Storages, log *logger.Logger) *Services {
	return &Services{
		ContactService:     NewContactService(storages.Contacts, log),
		AppointmentService: NewAppointmentService(storages.Appointments, storages.Contacts, log),
	}
}
