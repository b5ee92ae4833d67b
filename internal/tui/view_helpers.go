// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-planner/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

var germanMonths = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

var germanTypes = map[models.AppointmentType]string{
	models.TypeChat:     "Chat",
	models.TypeEmail:    "E-Mail",
	models.TypePhone:    "Telefon",
	models.TypeLiveCall: "Live-Call",
}

func monthTitle(month time.Time) string {
	return fmt.Sprintf("%s %d", germanMonths[month.Month()-1], month.Year())
}

func typeLabel(t models.AppointmentType) string {
	if label, ok := germanTypes[t]; ok {
		return label
	}
	return string(t)
}

// appointmentLine renders one list entry: time, contact name, type.
// An unresolvable contact reference is shown as "Unbekannt".
func appointmentLine(a models.Appointment, contactName string) string {
	clock := "--:--"
	if parsed, err := time.Parse(time.RFC3339, a.Datetime); err == nil {
		clock = parsed.Local().Format("15:04")
	}
	if contactName == "" {
		contactName = "Unbekannt"
	}
	return fmt.Sprintf("%s  %s  (%s)", clock, contactName, typeLabel(a.Type))
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
