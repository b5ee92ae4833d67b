// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// appointment backend.
//
// The primary abstraction is [BackendAdapter], which decouples the client
// services from the REST protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPBackendAdapter]) speaking the Django-REST-style
// tenant API: every request carries the tenant slug in the X-Tenant header,
// and every failure body is a {"detail": "..."} envelope.
//
// Transport failures are mapped to the sentinel errors defined in errors.go
// so that callers can use [errors.Is] without knowing status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contact-planner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines the persistence collaborator of the scheduling
// client. The backend owns all contact and appointment records and assigns
// their identifiers; the client treats the listed collections as read-only
// snapshots.
type BackendAdapter interface {
	// ListContacts fetches the full contact collection of the tenant.
	ListContacts(ctx context.Context) ([]models.Contact, error)

	// ListAppointments fetches the full appointment collection of the
	// tenant. No server-side filtering is requested; all date bucketing
	// happens locally.
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	// CreateContact persists a new contact and returns it with the
	// backend-assigned id.
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)

	// UpdateContact replaces the stored contact identified by id.
	UpdateContact(ctx context.Context, id int64, contact models.Contact) (models.Contact, error)

	// CreateAppointment persists a new appointment and returns it with the
	// backend-assigned id.
	CreateAppointment(ctx context.Context, appointment models.Appointment) (models.Appointment, error)

	// UpdateAppointment replaces the stored appointment identified by id.
	UpdateAppointment(ctx context.Context, id int64, appointment models.Appointment) (models.Appointment, error)

	// DeleteAppointment removes the appointment identified by id. The
	// archive flow of the editor resolves to this same call.
	DeleteAppointment(ctx context.Context, id int64) error
}
