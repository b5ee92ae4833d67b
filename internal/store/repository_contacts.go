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

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository] over the "contacts" table.
type contactRepository struct {
	*DB
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] on the given
// connection.
func NewContactRepository(db *DB, log *logger.Logger) ContactRepository {
	return &contactRepository{DB: db, logger: log}
}

func (r *contactRepository) List(ctx context.Context) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListContactsQuery()
	if err != nil {
		return nil, fmt.Errorf("build list contacts query: %w", err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("list contacts query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, 50)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			log.Err(err).Msg("scan contact row failed")
			return nil, err
		}
		contacts = append(contacts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return contacts, nil
}

func (r *contactRepository) Get(ctx context.Context, id int64) (models.Contact, error) {
	query, args, err := buildGetContactQuery(id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("build get contact query: %w", err)
	}

	c, err := scanContact(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, fmt.Errorf("%w: contact %d", ErrNoRows, id)
	}
	return c, err
}

func (r *contactRepository) Create(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertContactQuery(
		contact.Name, contact.Email, contact.Phone,
		contact.Address, contact.Note, contact.LastContactAt,
	)
	if err != nil {
		return models.Contact{}, fmt.Errorf("build insert contact query: %w", err)
	}

	created, err := scanContact(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("name", contact.Name).Msg("insert contact failed")
		return models.Contact{}, classifyPgError(err)
	}
	return created, nil
}

func (r *contactRepository) Update(ctx context.Context, id int64, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateContactQuery(
		id, contact.Name, contact.Email, contact.Phone,
		contact.Address, contact.Note, contact.LastContactAt,
	)
	if err != nil {
		return models.Contact{}, fmt.Errorf("build update contact query: %w", err)
	}

	updated, err := scanContact(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, fmt.Errorf("%w: contact %d", ErrNoRows, id)
	}
	if err != nil {
		log.Err(err).Int64("id", id).Msg("update contact failed")
		return models.Contact{}, classifyPgError(err)
	}
	return updated, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.Note,
		&c.LastContactAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, err
	}
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return c, nil
}
