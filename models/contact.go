// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Contact represents a single person in the tenant's address book.
// The record is owned by the backend; the client only mirrors it.
type Contact struct {
	// ID is the backend-assigned identifier of the contact.
	ID int64 `json:"id"`

	// Name is the display name of the contact.
	Name string `json:"name"`

	// Email is the primary e-mail address of the contact.
	Email string `json:"email"`

	// Phone is an optional phone number. Empty means absent.
	Phone string `json:"phone,omitempty"`

	// Address is an optional postal address. Empty means absent.
	Address string `json:"address,omitempty"`

	// Note is an optional free-text annotation. Empty means absent.
	Note string `json:"note,omitempty"`

	// LastContactAt is the RFC 3339 instant of the last interaction with
	// the contact, or empty if never recorded.
	LastContactAt string `json:"lastContactAt,omitempty"`
}

// ContactDraft is the editable form state for creating or updating a
// contact. All fields are raw user input; trimming and empty-as-absent
// normalization happen when the draft is converted into a record.
type ContactDraft struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Note    string
}

// Record converts the draft into the payload sent to the backend.
// Fields are trimmed; optional fields that trim to empty are omitted.
// LastContactAt is stamped by the caller, not here.
func (d ContactDraft) Record() Contact {
	return Contact{
		Name:    trimmed(d.Name),
		Email:   trimmed(d.Email),
		Phone:   trimmed(d.Phone),
		Address: trimmed(d.Address),
		Note:    trimmed(d.Note),
	}
}

// DraftFromContact builds a pre-filled draft for editing an existing
// contact.
func DraftFromContact(c Contact) ContactDraft {
	return ContactDraft{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
		Note:    c.Note,
	}
}
