// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/MKhiriev/go-contact-planner/internal/store"
	"github.com/MKhiriev/go-contact-planner/models"
)

type appointmentService struct {
	appointments store.AppointmentRepository
	contacts     store.ContactRepository
	logger       *logger.Logger
}

// NewAppointmentService constructs the backend appointment service.
func NewAppointmentService(appointments store.AppointmentRepository, contacts store.ContactRepository, log *logger.Logger) AppointmentService {
	return &appointmentService{
		appointments: appointments,
		contacts:     contacts,
		logger:       log,
	}
}

func (s *appointmentService) List(ctx context.Context, filter store.AppointmentFilter) ([]models.Appointment, error) {
	return s.appointments.List(ctx, filter)
}

func (s *appointmentService) Create(ctx context.Context, appointment models.Appointment) (models.Appointment, error) {
	if err := s.checkRecord(ctx, appointment); err != nil {
		return models.Appointment{}, err
	}
	return s.appointments.Create(ctx, appointment)
}

func (s *appointmentService) Update(ctx context.Context, id int64, appointment models.Appointment) (models.Appointment, error) {
	if err := s.checkRecord(ctx, appointment); err != nil {
		return models.Appointment{}, err
	}

	updated, err := s.appointments.Update(ctx, id, appointment)
	if errors.Is(err, store.ErrNoRows) {
		return models.Appointment{}, fmt.Errorf("%w: id %d", ErrUnknownAppointment, id)
	}
	return updated, err
}

func (s *appointmentService) Delete(ctx context.Context, id int64) error {
	err := s.appointments.Delete(ctx, id)
	if errors.Is(err, store.ErrNoRows) {
		return fmt.Errorf("%w: id %d", ErrUnknownAppointment, id)
	}
	return err
}

// checkRecord enforces what the client cannot: referential integrity of
// the contact reference, plus the shape of the stored instant and type.
func (s *appointmentService) checkRecord(ctx context.Context, appointment models.Appointment) error {
	if _, err := time.Parse(time.RFC3339, appointment.Datetime); err != nil {
		return fmt.Errorf("%w: bad datetime %q", ErrInvalidRecord, appointment.Datetime)
	}
	if !validAppointmentType(appointment.Type) {
		return fmt.Errorf("%w: bad type %q", ErrInvalidRecord, appointment.Type)
	}
	if appointment.SendEmail != models.SendEmailYes && appointment.SendEmail != models.SendEmailNo {
		return fmt.Errorf("%w: bad sendEmail %q", ErrInvalidRecord, appointment.SendEmail)
	}

	_, err := s.contacts.Get(ctx, appointment.ContactID)
	if errors.Is(err, store.ErrNoRows) {
		return fmt.Errorf("%w: id %d", ErrUnknownContact, appointment.ContactID)
	}
	if err != nil {
		return fmt.Errorf("resolve contact %d: %w", appointment.ContactID, err)
	}
	return nil
}

func validAppointmentType(t models.AppointmentType) bool {
	switch t {
	case models.TypeChat, models.TypeEmail, models.TypePhone, models.TypeLiveCall:
		return true
	}
	return false
}
