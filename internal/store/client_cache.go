// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-planner/models"
	_ "github.com/mattn/go-sqlite3"
)

// ErrCacheEmpty is returned by Load when no snapshot was ever stored.
var ErrCacheEmpty = errors.New("snapshot cache is empty")

// sqliteSnapshotCache keeps the last fetched collections in a single-row
// SQLite table. The snapshot is written whole and read whole; the cache
// never serves partial state.
type sqliteSnapshotCache struct {
	db *sql.DB
}

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS snapshot (
    id           INTEGER PRIMARY KEY CHECK (id = 1),
    contacts     TEXT NOT NULL,
    appointments TEXT NOT NULL,
    stored_at    TEXT NOT NULL DEFAULT (datetime('now'))
);`

// NewSnapshotCache opens (creating if needed) the client's snapshot cache
// at path. Use ":memory:" for a throwaway cache.
func NewSnapshotCache(path string) (SnapshotCache, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot cache: %w", err)
	}
	if _, err = db.Exec(snapshotSchema); err != nil {
		return nil, fmt.Errorf("init snapshot cache schema: %w", err)
	}

	return &sqliteSnapshotCache{db: db}, nil
}

func (c *sqliteSnapshotCache) Store(contacts []models.Contact, appointments []models.Appointment) error {
	contactsJSON, err := json.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("encode contacts snapshot: %w", err)
	}
	appointmentsJSON, err := json.Marshal(appointments)
	if err != nil {
		return fmt.Errorf("encode appointments snapshot: %w", err)
	}

	_, err = c.db.Exec(`
		INSERT INTO snapshot (id, contacts, appointments, stored_at)
		VALUES (1, ?, ?, datetime('now'))
		ON CONFLICT(id) DO UPDATE SET
			contacts = excluded.contacts,
			appointments = excluded.appointments,
			stored_at = excluded.stored_at;`,
		string(contactsJSON), string(appointmentsJSON),
	)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (c *sqliteSnapshotCache) Load() ([]models.Contact, []models.Appointment, error) {
	var contactsJSON, appointmentsJSON string
	err := c.db.QueryRow(`SELECT contacts, appointments FROM snapshot WHERE id = 1`).
		Scan(&contactsJSON, &appointmentsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrCacheEmpty
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read snapshot: %w", err)
	}

	var contacts []models.Contact
	if err = json.Unmarshal([]byte(contactsJSON), &contacts); err != nil {
		return nil, nil, fmt.Errorf("decode contacts snapshot: %w", err)
	}
	var appointments []models.Appointment
	if err = json.Unmarshal([]byte(appointmentsJSON), &appointments); err != nil {
		return nil, nil, fmt.Errorf("decode appointments snapshot: %w", err)
	}

	return contacts, appointments, nil
}

func (c *sqliteSnapshotCache) Close() error {
	return c.db.Close()
}
