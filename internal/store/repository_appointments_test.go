// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/MKhiriev/go-contact-planner/models"
)

func appointmentRows(appointments ...models.Appointment) *sqlmock.Rows {
	rows := sqlmock.NewRows(appointmentColumns)
	for _, a := range appointments {
		rows.AddRow(a.ID, a.ContactID, a.Datetime, string(a.Type), a.Note, a.SendEmail)
	}
	return rows
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestAppointmentRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db, logger.Nop())

	query, _, err := buildListAppointmentsQuery(AppointmentFilter{})
	require.NoError(t, err)

	mock.ExpectQuery(query).WillReturnRows(appointmentRows(
		models.Appointment{ID: 1, ContactID: 4, Datetime: "2026-10-06T10:00:00+02:00", Type: models.TypeChat, SendEmail: models.SendEmailNo},
		models.Appointment{ID: 2, ContactID: 4, Datetime: "2026-10-06T14:30:00+02:00", Type: models.TypeLiveCall, SendEmail: models.SendEmailYes},
	))

	appointments, err := repo.List(context.Background(), AppointmentFilter{})
	require.NoError(t, err)

	require.Len(t, appointments, 2)
	assert.Equal(t, models.TypeChat, appointments[0].Type)
	assert.Equal(t, models.SendEmailYes, appointments[1].SendEmail)
}

func TestAppointmentRepository_ListWithFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db, logger.Nop())

	filter := AppointmentFilter{
		ContactID: 4,
		From:      time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
	}
	query, _, err := buildListAppointmentsQuery(filter)
	require.NoError(t, err)

	mock.ExpectQuery(query).
		WithArgs(int64(4), "2026-10-01T00:00:00Z").
		WillReturnRows(appointmentRows())

	appointments, err := repo.List(context.Background(), filter)
	require.NoError(t, err)

	assert.NotNil(t, appointments)
	assert.Empty(t, appointments)
}

func TestAppointmentRepository_ListQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db, logger.Nop())

	query, _, err := buildListAppointmentsQuery(AppointmentFilter{})
	require.NoError(t, err)
	mock.ExpectQuery(query).WillReturnError(errors.New("connection reset"))

	_, err = repo.List(context.Background(), AppointmentFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── Create / Update ──────────────────────────────────────────────────────────

func TestAppointmentRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db, logger.Nop())

	appointment := models.Appointment{
		ContactID: 4,
		Datetime:  "2026-10-06T10:00:00+02:00",
		Type:      models.TypeEmail,
		Note:      "Angebot besprechen",
		SendEmail: models.SendEmailYes,
	}
	query, _, err := buildInsertAppointmentQuery(
		appointment.ContactID, appointment.Datetime,
		string(appointment.Type), appointment.Note, appointment.SendEmail,
	)
	require.NoError(t, err)

	saved := appointment
	saved.ID = 21
	mock.ExpectQuery(query).
		WithArgs(appointment.ContactID, appointment.Datetime, string(appointment.Type), appointment.Note, appointment.SendEmail).
		WillReturnRows(appointmentRows(saved))

	created, err := repo.Create(context.Background(), appointment)
	require.NoError(t, err)

	assert.Equal(t, int64(21), created.ID)
	assert.Equal(t, appointment.Datetime, created.Datetime)
}

func TestAppointmentRepository_CreateForeignKeyViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db, logger.Nop())

	appointment := models.Appointment{ContactID: 999, Datetime: "2026-10-06T10:00:00+02:00", Type: models.TypeChat, SendEmail: models.SendEmailNo}
	query, _, err := buildInsertAppointmentQuery(
		appointment.ContactID, appointment.Datetime,
		string(appointment.Type), appointment.Note, appointment.SendEmail,
	)
	require.NoError(t, err)
	mock.ExpectQuery(query).WillReturnError(&pgconn.PgError{
		Code:    pgerrcode.ForeignKeyViolation,
		Message: "violates foreign key constraint",
	})

	_, err = repo.Create(context.Background(), appointment)
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestAppointmentRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db, logger.Nop())

	appointment := models.Appointment{ContactID: 4, Datetime: "2026-10-07T11:00:00+02:00", Type: models.TypePhone, SendEmail: models.SendEmailNo}
	query, _, err := buildUpdateAppointmentQuery(
		21, appointment.ContactID, appointment.Datetime,
		string(appointment.Type), appointment.Note, appointment.SendEmail,
	)
	require.NoError(t, err)

	saved := appointment
	saved.ID = 21
	mock.ExpectQuery(query).WillReturnRows(appointmentRows(saved))

	updated, err := repo.Update(context.Background(), 21, appointment)
	require.NoError(t, err)

	assert.Equal(t, models.TypePhone, updated.Type)
}

func TestAppointmentRepository_UpdateMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db, logger.Nop())

	query, _, err := buildUpdateAppointmentQuery(77, 0, "", "", "", "")
	require.NoError(t, err)
	mock.ExpectQuery(query).WillReturnRows(appointmentRows())

	_, err = repo.Update(context.Background(), 77, models.Appointment{})
	assert.ErrorIs(t, err, ErrNoRows)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestAppointmentRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db, logger.Nop())

	query, _, err := buildDeleteAppointmentQuery(21)
	require.NoError(t, err)
	mock.ExpectExec(query).
		WithArgs(int64(21)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 21))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_DeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db, logger.Nop())

	query, _, err := buildDeleteAppointmentQuery(99)
	require.NoError(t, err)
	mock.ExpectExec(query).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNoRows)
}
