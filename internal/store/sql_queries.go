// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var contactColumns = []string{"id", "name", "email", "phone", "address", "note", "last_contact_at"}

var appointmentColumns = []string{"id", "contact_id", "datetime", "type", "note", "send_email"}

// buildListAppointmentsQuery assembles the appointment listing with its
// optional filter conditions. Instants are stored as RFC 3339 text, whose
// lexicographic order matches chronological order for a single offset.
func buildListAppointmentsQuery(filter AppointmentFilter) (string, []any, error) {
	b := psql.Select(appointmentColumns...).
		From("appointments").
		OrderBy("datetime ASC", "id ASC")

	if filter.ContactID != 0 {
		b = b.Where(sq.Eq{"contact_id": filter.ContactID})
	}
	if !filter.From.IsZero() {
		b = b.Where(sq.GtOrEq{"datetime": rfc3339(filter.From)})
	}
	if !filter.To.IsZero() {
		b = b.Where(sq.Lt{"datetime": rfc3339(filter.To)})
	}

	return b.ToSql()
}

func buildListContactsQuery() (string, []any, error) {
	return psql.Select(contactColumns...).
		From("contacts").
		OrderBy("name ASC", "id ASC").
		ToSql()
}

func buildGetContactQuery(id int64) (string, []any, error) {
	return psql.Select(contactColumns...).
		From("contacts").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertContactQuery(name, email, phone, address, note, lastContactAt string) (string, []any, error) {
	return psql.Insert("contacts").
		Columns("name", "email", "phone", "address", "note", "last_contact_at").
		Values(name, email, phone, address, note, lastContactAt).
		Suffix("RETURNING " + columnList(contactColumns)).
		ToSql()
}

func buildUpdateContactQuery(id int64, name, email, phone, address, note, lastContactAt string) (string, []any, error) {
	return psql.Update("contacts").
		Set("name", name).
		Set("email", email).
		Set("phone", phone).
		Set("address", address).
		Set("note", note).
		Set("last_contact_at", lastContactAt).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList(contactColumns)).
		ToSql()
}

func buildInsertAppointmentQuery(contactID int64, datetime, typ, note, sendEmail string) (string, []any, error) {
	return psql.Insert("appointments").
		Columns("contact_id", "datetime", "type", "note", "send_email").
		Values(contactID, datetime, typ, note, sendEmail).
		Suffix("RETURNING " + columnList(appointmentColumns)).
		ToSql()
}

func buildUpdateAppointmentQuery(id, contactID int64, datetime, typ, note, sendEmail string) (string, []any, error) {
	return psql.Update("appointments").
		Set("contact_id", contactID).
		Set("datetime", datetime).
		Set("type", typ).
		Set("note", note).
		Set("send_email", sendEmail).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList(appointmentColumns)).
		ToSql()
}

func buildDeleteAppointmentQuery(id int64) (string, []any, error) {
	return psql.Delete("appointments").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func rfc3339(t time.Time) string {
	return t.Format(time.RFC3339)
}

func columnList(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
