// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-planner/models"
)

func newTestCache(t *testing.T) SnapshotCache {
	t.Helper()
	cache, err := NewSnapshotCache(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestSnapshotCache_LoadEmpty(t *testing.T) {
	cache := newTestCache(t)

	_, _, err := cache.Load()
	assert.ErrorIs(t, err, ErrCacheEmpty)
}

func TestSnapshotCache_StoreAndLoad(t *testing.T) {
	cache := newTestCache(t)

	contacts := []models.Contact{
		{ID: 1, Name: "Anna Berg", Email: "anna@example.de", Phone: "+49301234567"},
		{ID: 2, Name: "Bernd Maier", Note: "Rückruf vereinbart"},
	}
	appointments := []models.Appointment{
		{ID: 5, ContactID: 1, Datetime: "2026-10-06T10:00:00+02:00", Type: models.TypeChat, SendEmail: models.SendEmailNo},
	}

	require.NoError(t, cache.Store(contacts, appointments))

	gotContacts, gotAppointments, err := cache.Load()
	require.NoError(t, err)

	assert.Equal(t, contacts, gotContacts)
	assert.Equal(t, appointments, gotAppointments)
}

func TestSnapshotCache_StoreReplacesSnapshot(t *testing.T) {
	cache := newTestCache(t)

	require.NoError(t, cache.Store(
		[]models.Contact{{ID: 1, Name: "Anna Berg"}},
		[]models.Appointment{{ID: 5, ContactID: 1}},
	))
	require.NoError(t, cache.Store(
		[]models.Contact{{ID: 2, Name: "Bernd Maier"}},
		nil,
	))

	contacts, appointments, err := cache.Load()
	require.NoError(t, err)

	require.Len(t, contacts, 1)
	assert.Equal(t, "Bernd Maier", contacts[0].Name)
	assert.Empty(t, appointments)
}

func TestSnapshotCache_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.db")

	cache, err := NewSnapshotCache(path)
	require.NoError(t, err)
	require.NoError(t, cache.Store(
		[]models.Contact{{ID: 3, Name: "Clara Vogt"}},
		nil,
	))
	require.NoError(t, cache.Close())

	reopened, err := NewSnapshotCache(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	contacts, _, err := reopened.Load()
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Clara Vogt", contacts[0].Name)
}
