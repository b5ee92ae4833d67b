// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactDraft_RecordTrimsFields(t *testing.T) {
	draft := ContactDraft{
		Name:    "  Anna Berg  ",
		Email:   " anna@example.de ",
		Phone:   " +49301234567 ",
		Address: "  Berlin ",
		Note:    "  Rückruf vereinbart  ",
	}

	record := draft.Record()

	assert.Equal(t, "Anna Berg", record.Name)
	assert.Equal(t, "anna@example.de", record.Email)
	assert.Equal(t, "+49301234567", record.Phone)
	assert.Equal(t, "Berlin", record.Address)
	assert.Equal(t, "Rückruf vereinbart", record.Note)
	assert.Empty(t, record.LastContactAt)
	assert.Zero(t, record.ID)
}

func TestContactDraft_RecordWhitespaceOnlyBecomesEmpty(t *testing.T) {
	record := ContactDraft{Name: "Anna Berg", Phone: "   "}.Record()
	assert.Empty(t, record.Phone)
}

func TestDraftFromContact_RoundTrip(t *testing.T) {
	contact := Contact{
		ID:    7,
		Name:  "Anna Berg",
		Email: "anna@example.de",
		Note:  "Bestandskundin",
	}

	draft := DraftFromContact(contact)

	assert.Equal(t, contact.Name, draft.Name)
	assert.Equal(t, contact.Email, draft.Email)
	assert.Equal(t, contact.Note, draft.Note)
	assert.Equal(t, contact, Contact{
		ID:    7,
		Name:  draft.Record().Name,
		Email: draft.Record().Email,
		Note:  draft.Record().Note,
	})
}

func TestNewAppointmentDraft_Defaults(t *testing.T) {
	draft := NewAppointmentDraft("2026-10-06")

	assert.Equal(t, "2026-10-06", draft.Date)
	assert.Empty(t, draft.Time)
	assert.Zero(t, draft.ContactID)
	assert.Equal(t, TypeLiveCall, draft.Type)
	assert.Equal(t, SendEmailNo, draft.SendEmail)
}
