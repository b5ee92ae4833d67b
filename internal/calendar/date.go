// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package calendar provides the pure date arithmetic behind the scheduling
// views: local-day comparison, the YYYY-MM-DD input format, past-day
// detection, the admissible scheduling window, and the fixed 42-cell month
// grid.
//
// Every function works on local calendar fields. Time-of-day never
// participates in day-level decisions; both sides are normalized to local
// midnight before comparison.
package calendar

import (
	"fmt"
	"time"
)

// InputDateLayout is the wire format of date inputs, YYYY-MM-DD.
const InputDateLayout = "2006-01-02"

// SameDay reports whether a and b fall on the same local calendar day.
// Time-of-day and sub-day precision are ignored.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns t with its local time-of-day truncated to midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatForInput renders t as a zero-padded YYYY-MM-DD string using local
// calendar fields. ParseInputDate(FormatForInput(t)) formats back to the
// same string for every representable local date.
func FormatForInput(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// ParseInputDate parses a YYYY-MM-DD string into local midnight of that
// day.
func ParseInputDate(s string) (time.Time, error) {
	return time.ParseInLocation(InputDateLayout, s, time.Local)
}

// IsPastDate reports whether t's local calendar day lies strictly before
// today's. Today itself is not a past date.
func IsPastDate(t time.Time) bool {
	return StartOfDay(t).Before(StartOfDay(time.Now()))
}

// Bounds describes the admissible scheduling window: its lower bound is
// today at local midnight, its upper bound lies limitYears years ahead.
type Bounds struct {
	Today    time.Time
	Max      time.Time
	TodayStr string
	MaxStr   string
}

// TodayAndMaxDate computes the scheduling window for the given horizon.
// Dates before Today or after Max are rejected by form validation.
func TodayAndMaxDate(limitYears int) Bounds {
	today := StartOfDay(time.Now())
	max := today.AddDate(limitYears, 0, 0)
	return Bounds{
		Today:    today,
		Max:      max,
		TodayStr: FormatForInput(today),
		MaxStr:   FormatForInput(max),
	}
}
