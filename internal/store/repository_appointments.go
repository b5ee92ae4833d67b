// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/MKhiriev/go-contact-planner/models"
)

// appointmentRepository is the PostgreSQL-backed implementation of
// [AppointmentRepository] over the "appointments" table.
type appointmentRepository struct {
	*DB
	logger *logger.Logger
}

// NewAppointmentRepository constructs an [AppointmentRepository] on the
// given connection.
func NewAppointmentRepository(db *DB, log *logger.Logger) AppointmentRepository {
	return &appointmentRepository{DB: db, logger: log}
}

func (r *appointmentRepository) List(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAppointmentsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build list appointments query: %w", err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("list appointments query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	appointments := make([]models.Appointment, 0, 50)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			log.Err(err).Msg("scan appointment row failed")
			return nil, err
		}
		appointments = append(appointments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return appointments, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment models.Appointment) (models.Appointment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAppointmentQuery(
		appointment.ContactID, appointment.Datetime,
		string(appointment.Type), appointment.Note, appointment.SendEmail,
	)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("build insert appointment query: %w", err)
	}

	created, err := scanAppointment(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Int64("contact_id", appointment.ContactID).Msg("insert appointment failed")
		return models.Appointment{}, classifyPgError(err)
	}
	return created, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id int64, appointment models.Appointment) (models.Appointment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAppointmentQuery(
		id, appointment.ContactID, appointment.Datetime,
		string(appointment.Type), appointment.Note, appointment.SendEmail,
	)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("build update appointment query: %w", err)
	}

	updated, err := scanAppointment(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Appointment{}, fmt.Errorf("%w: appointment %d", ErrNoRows, id)
	}
	if err != nil {
		log.Err(err).Int64("id", id).Msg("update appointment failed")
		return models.Appointment{}, classifyPgError(err)
	}
	return updated, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAppointmentQuery(id)
	if err != nil {
		return fmt.Errorf("build delete appointment query: %w", err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("delete appointment failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete appointment rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: appointment %d", ErrNoRows, id)
	}
	return nil
}

func scanAppointment(row rowScanner) (models.Appointment, error) {
	var a models.Appointment
	var typ string
	err := row.Scan(
		&a.ID,
		&a.ContactID,
		&a.Datetime,
		&typ,
		&a.Note,
		&a.SendEmail,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Appointment{}, err
	}
	if err != nil {
		return models.Appointment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	a.Type = models.AppointmentType(typ)
	return a, nil
}
