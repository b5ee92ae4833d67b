// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── SameDay ──────────────────────────────────────────────────────────────────

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			name: "same instant",
			a:    time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local),
			b:    time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local),
			want: true,
		},
		{
			name: "same day different times",
			a:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local),
			b:    time.Date(2026, 3, 14, 23, 59, 59, 0, time.Local),
			want: true,
		},
		{
			name: "adjacent days one second apart",
			a:    time.Date(2026, 3, 14, 23, 59, 59, 0, time.Local),
			b:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local),
			want: false,
		},
		{
			name: "same day of month different months",
			a:    time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local),
			b:    time.Date(2026, 4, 14, 12, 0, 0, 0, time.Local),
			want: false,
		},
		{
			name: "same date different years",
			a:    time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local),
			b:    time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameDay(tt.a, tt.b))
			assert.Equal(t, tt.want, SameDay(tt.b, tt.a))
		})
	}
}

// ── FormatForInput / ParseInputDate ──────────────────────────────────────────

func TestFormatForInput_ZeroPadding(t *testing.T) {
	got := FormatForInput(time.Date(2026, 1, 5, 15, 30, 0, 0, time.Local))
	assert.Equal(t, "2026-01-05", got)
}

func TestFormatForInput_RoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
		time.Date(2026, 12, 31, 23, 59, 0, 0, time.Local),
		time.Date(2024, 2, 29, 10, 0, 0, 0, time.Local), // leap day
		time.Date(2000, 2, 29, 0, 0, 0, 0, time.Local),  // century leap day
	}

	for _, date := range dates {
		formatted := FormatForInput(date)

		parsed, err := ParseInputDate(formatted)
		require.NoError(t, err)

		assert.Equal(t, formatted, FormatForInput(parsed))
		assert.True(t, SameDay(date, parsed))
	}
}

func TestParseInputDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "2026-13-01", "2026-02-30", "14.03.2026"} {
		_, err := ParseInputDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseInputDate_LocalMidnight(t *testing.T) {
	parsed, err := ParseInputDate("2026-03-14")
	require.NoError(t, err)

	assert.Equal(t, 0, parsed.Hour())
	assert.Equal(t, 0, parsed.Minute())
	assert.Equal(t, time.Local, parsed.Location())
}

// ── IsPastDate ───────────────────────────────────────────────────────────────

func TestIsPastDate(t *testing.T) {
	now := time.Now()

	assert.True(t, IsPastDate(now.AddDate(0, 0, -1)))
	assert.False(t, IsPastDate(now), "today is not a past date")
	assert.False(t, IsPastDate(now.AddDate(0, 0, 1)))
}

func TestIsPastDate_IgnoresTimeOfDay(t *testing.T) {
	// late tonight is still today, however close to midnight
	y, m, d := time.Now().Date()
	lateToday := time.Date(y, m, d, 23, 59, 59, 0, time.Local)

	assert.False(t, IsPastDate(lateToday))
}

// ── TodayAndMaxDate ──────────────────────────────────────────────────────────

func TestTodayAndMaxDate(t *testing.T) {
	bounds := TodayAndMaxDate(10)

	assert.True(t, SameDay(bounds.Today, time.Now()))
	assert.Equal(t, bounds.Today.AddDate(10, 0, 0), bounds.Max)
	assert.Equal(t, FormatForInput(bounds.Today), bounds.TodayStr)
	assert.Equal(t, FormatForInput(bounds.Max), bounds.MaxStr)

	assert.Equal(t, 0, bounds.Today.Hour())
}
