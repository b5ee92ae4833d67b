// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/MKhiriev/go-contact-planner/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{DB: conn, logger: logger.Nop()}, mock
}

func contactRows(contacts ...models.Contact) *sqlmock.Rows {
	rows := sqlmock.NewRows(contactColumns)
	for _, c := range contacts {
		rows.AddRow(c.ID, c.Name, c.Email, c.Phone, c.Address, c.Note, c.LastContactAt)
	}
	return rows
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestContactRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, logger.Nop())

	query, _, err := buildListContactsQuery()
	require.NoError(t, err)

	mock.ExpectQuery(query).WillReturnRows(contactRows(
		models.Contact{ID: 1, Name: "Anna Berg", Email: "anna@example.de"},
		models.Contact{ID: 2, Name: "Bernd Maier"},
	))

	contacts, err := repo.List(context.Background())
	require.NoError(t, err)

	require.Len(t, contacts, 2)
	assert.Equal(t, "Anna Berg", contacts[0].Name)
	assert.Equal(t, int64(2), contacts[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_ListEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, logger.Nop())

	query, _, err := buildListContactsQuery()
	require.NoError(t, err)
	mock.ExpectQuery(query).WillReturnRows(contactRows())

	contacts, err := repo.List(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}

func TestContactRepository_ListQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, logger.Nop())

	query, _, err := buildListContactsQuery()
	require.NoError(t, err)
	mock.ExpectQuery(query).WillReturnError(errors.New("connection reset"))

	_, err = repo.List(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestContactRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, logger.Nop())

	query, _, err := buildGetContactQuery(3)
	require.NoError(t, err)
	mock.ExpectQuery(query).
		WithArgs(int64(3)).
		WillReturnRows(contactRows(models.Contact{ID: 3, Name: "Clara Vogt", Phone: "+49301234567"}))

	contact, err := repo.Get(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "Clara Vogt", contact.Name)
	assert.Equal(t, "+49301234567", contact.Phone)
}

func TestContactRepository_GetMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, logger.Nop())

	query, _, err := buildGetContactQuery(99)
	require.NoError(t, err)
	mock.ExpectQuery(query).WithArgs(int64(99)).WillReturnRows(contactRows())

	_, err = repo.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNoRows)
}

// ── Create / Update ──────────────────────────────────────────────────────────

func TestContactRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, logger.Nop())

	contact := models.Contact{
		Name:          "Anna Berg",
		Email:         "anna@example.de",
		LastContactAt: "2026-08-28T09:00:00+02:00",
	}
	query, _, err := buildInsertContactQuery(
		contact.Name, contact.Email, contact.Phone,
		contact.Address, contact.Note, contact.LastContactAt,
	)
	require.NoError(t, err)

	saved := contact
	saved.ID = 11
	mock.ExpectQuery(query).
		WithArgs(contact.Name, contact.Email, contact.Phone, contact.Address, contact.Note, contact.LastContactAt).
		WillReturnRows(contactRows(saved))

	created, err := repo.Create(context.Background(), contact)
	require.NoError(t, err)

	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, contact.Email, created.Email)
}

func TestContactRepository_CreateConstraintViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, logger.Nop())

	query, _, err := buildInsertContactQuery("Anna Berg", "", "", "", "", "")
	require.NoError(t, err)
	mock.ExpectQuery(query).WillReturnError(&pgconn.PgError{
		Code:    pgerrcode.UniqueViolation,
		Message: "duplicate key value",
	})

	_, err = repo.Create(context.Background(), models.Contact{Name: "Anna Berg"})
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestContactRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, logger.Nop())

	contact := models.Contact{Name: "Anna Berg-Neumann", Email: "anna@example.de"}
	query, _, err := buildUpdateContactQuery(
		11, contact.Name, contact.Email, contact.Phone,
		contact.Address, contact.Note, contact.LastContactAt,
	)
	require.NoError(t, err)

	saved := contact
	saved.ID = 11
	mock.ExpectQuery(query).WillReturnRows(contactRows(saved))

	updated, err := repo.Update(context.Background(), 11, contact)
	require.NoError(t, err)

	assert.Equal(t, "Anna Berg-Neumann", updated.Name)
}

func TestContactRepository_UpdateMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, logger.Nop())

	query, _, err := buildUpdateContactQuery(54, "", "", "", "", "", "")
	require.NoError(t, err)
	mock.ExpectQuery(query).WillReturnRows(contactRows())

	_, err = repo.Update(context.Background(), 54, models.Contact{})
	assert.ErrorIs(t, err, ErrNoRows)
}
