// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the backend's database handle.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens and pings a PostgreSQL connection for the
// backend process.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info().Msg("connected to database")

	return &DB{DB: conn, logger: log}, nil
}

// classifyPgError maps integrity-class PostgreSQL errors onto the store
// sentinels so services can branch with errors.Is.
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	if pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return fmt.Errorf("%w: %s", ErrConstraint, pgErr.Message)
	}
	return err
}

// Storages bundles the backend repositories.
type Storages struct {
	Contacts     ContactRepository
	Appointments AppointmentRepository
}

// NewStorages constructs the repositories over one shared connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Contacts:     NewContactRepository(db, log),
		Appointments: NewAppointmentRepository(db, log),
	}
}
