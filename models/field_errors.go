// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldErrors maps a form field name to a user-facing validation message.
// An empty map signals a fully valid form; validation failures are data,
// never error values.
type FieldErrors map[string]string

// Empty reports whether the form passed validation.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// Get returns the message for field, or the empty string.
func (e FieldErrors) Get(field string) string {
	return e[field]
}
