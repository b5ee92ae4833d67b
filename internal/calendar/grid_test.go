// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-planner/models"
)

// ── MonthGrid ────────────────────────────────────────────────────────────────

func TestMonthGrid_AlwaysFortyTwoConsecutiveDays(t *testing.T) {
	months := []time.Time{
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local),  // 28 days
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local),  // leap February
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local),  // starts on Monday
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local),  // starts on Sunday
		time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local), // mid-month reference
		time.Date(2026, 12, 31, 0, 0, 0, 0, time.Local),
	}

	for _, month := range months {
		grid := MonthGrid(month)
		require.Len(t, grid, GridSize, "month %s", month.Format("2006-01"))

		for i := 1; i < len(grid); i++ {
			assert.True(t, SameDay(grid[i-1].Date.AddDate(0, 0, 1), grid[i].Date),
				"cells %d and %d of %s are not consecutive", i-1, i, month.Format("2006-01"))
		}
	}
}

func TestMonthGrid_FirstRowStartsOnMonday(t *testing.T) {
	for month := time.Month(1); month <= 12; month++ {
		grid := MonthGrid(time.Date(2026, month, 1, 0, 0, 0, 0, time.Local))
		assert.Equal(t, time.Monday, grid[0].Date.Weekday(), "month %d", month)
	}
}

func TestMonthGrid_InMonthFlags(t *testing.T) {
	// June 2026 starts on a Monday: no leading overflow.
	grid := MonthGrid(time.Date(2026, 6, 10, 0, 0, 0, 0, time.Local))

	assert.True(t, grid[0].InMonth)
	assert.Equal(t, 1, grid[0].Date.Day())
	assert.True(t, grid[29].InMonth)
	assert.Equal(t, 30, grid[29].Date.Day())
	assert.False(t, grid[30].InMonth, "July overflow")

	inMonth := 0
	for _, day := range grid {
		if day.InMonth {
			inMonth++
		}
	}
	assert.Equal(t, 30, inMonth)
}

func TestMonthGrid_LeadingOverflowBelongsToPreviousMonth(t *testing.T) {
	// March 2026 starts on a Sunday: six leading February days.
	grid := MonthGrid(time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local))

	for i := 0; i < 6; i++ {
		assert.False(t, grid[i].InMonth)
		assert.Equal(t, time.February, grid[i].Date.Month())
	}
	assert.True(t, grid[6].InMonth)
	assert.Equal(t, 1, grid[6].Date.Day())
}

// ── AppointmentsOn / HasAppointments ─────────────────────────────────────────

func TestAppointmentsOn(t *testing.T) {
	day := time.Date(2026, 9, 3, 0, 0, 0, 0, time.Local)

	appointments := []models.Appointment{
		{ID: 1, Datetime: time.Date(2026, 9, 3, 9, 0, 0, 0, time.Local).Format(time.RFC3339)},
		{ID: 2, Datetime: time.Date(2026, 9, 4, 9, 0, 0, 0, time.Local).Format(time.RFC3339)},
		{ID: 3, Datetime: time.Date(2026, 9, 3, 23, 30, 0, 0, time.Local).Format(time.RFC3339)},
		{ID: 4, Datetime: "garbage"},
	}

	got := AppointmentsOn(appointments, day)

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestHasAppointments(t *testing.T) {
	day := time.Date(2026, 9, 3, 0, 0, 0, 0, time.Local)

	assert.False(t, HasAppointments(nil, day))
	assert.False(t, HasAppointments([]models.Appointment{{Datetime: "garbage"}}, day))
	assert.True(t, HasAppointments([]models.Appointment{
		{Datetime: time.Date(2026, 9, 3, 18, 0, 0, 0, time.Local).Format(time.RFC3339)},
	}, day))
}
