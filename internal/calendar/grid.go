// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package calendar

import (
	"time"

	"github.com/MKhiriev/go-contact-planner/models"
)

// GridSize is the constant number of cells in a month grid: six full
// Monday-first weeks. A fixed height keeps the calendar layout stable when
// navigating between months of different lengths.
const GridSize = 42

// Day is one cell of the month grid.
type Day struct {
	// Date is the local midnight of the cell's calendar day.
	Date time.Time

	// InMonth is false for the leading and trailing overflow days that
	// belong to the adjacent months.
	InMonth bool
}

// StartOfMonth returns local midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// MonthGrid lays out the month containing ref as exactly GridSize cells.
//
// The first row starts on Monday: the weekday of the month's first day is
// shifted from Go's Sunday=0 convention to Monday=0 and that many
// previous-month days are prepended. Every real day of the month follows
// with InMonth set, then next-month days pad the grid to GridSize.
func MonthGrid(ref time.Time) []Day {
	start := StartOfMonth(ref)
	offset := (int(start.Weekday()) + 6) % 7

	cells := make([]Day, 0, GridSize)
	for i := offset; i > 0; i-- {
		cells = append(cells, Day{Date: start.AddDate(0, 0, -i)})
	}

	daysInMonth := start.AddDate(0, 1, -1).Day()
	for day := 0; day < daysInMonth; day++ {
		cells = append(cells, Day{Date: start.AddDate(0, 0, day), InMonth: true})
	}

	for len(cells) < GridSize {
		last := cells[len(cells)-1].Date
		cells = append(cells, Day{Date: last.AddDate(0, 0, 1)})
	}

	return cells
}

// AppointmentsOn filters the snapshot down to the appointments whose
// stored instant falls on the same local calendar day as date. Records
// with unparseable instants are skipped.
func AppointmentsOn(appointments []models.Appointment, date time.Time) []models.Appointment {
	var out []models.Appointment
	for _, a := range appointments {
		at, err := time.Parse(time.RFC3339, a.Datetime)
		if err != nil {
			continue
		}
		if SameDay(at.Local(), date) {
			out = append(out, a)
		}
	}
	return out
}

// HasAppointments reports whether at least one appointment falls on date.
func HasAppointments(appointments []models.Appointment, date time.Time) bool {
	for _, a := range appointments {
		at, err := time.Parse(time.RFC3339, a.Datetime)
		if err != nil {
			continue
		}
		if SameDay(at.Local(), date) {
			return true
		}
	}
	return false
}
