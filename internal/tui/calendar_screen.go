// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-contact-planner/internal/calendar"
	"github.com/MKhiriev/go-contact-planner/internal/service"
	"github.com/MKhiriev/go-contact-planner/internal/validators"
)

// calendarModel is the month view plus the selected day's appointment list.
type calendarModel struct {
	visibleMonth time.Time
	selected     time.Time

	// focusList switches key handling from the grid to the day list.
	focusList bool
	listIdx   int

	loading bool
	status  string
}

func newCalendarModel(selected time.Time) calendarModel {
	return calendarModel{
		visibleMonth: startOfMonthOf(selected),
		selected:     selected,
		loading:      true,
	}
}

func (m appModel) updateCalendar(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	svc := m.services.ScheduleService

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		m.calendar.focusList = !m.calendar.focusList
		m.calendar.listIdx = 0
		return m, nil
	case key.Matches(keyMsg, keys.prevMonth):
		m.calendar.visibleMonth = m.calendar.visibleMonth.AddDate(0, -1, 0)
		return m, nil
	case key.Matches(keyMsg, keys.nextMonth):
		m.calendar.visibleMonth = m.calendar.visibleMonth.AddDate(0, 1, 0)
		return m, nil
	case key.Matches(keyMsg, keys.today):
		m.calendar.selected = calendar.StartOfDay(time.Now())
		m.calendar.visibleMonth = startOfMonthOf(m.calendar.selected)
		svc.SelectDate(m.calendar.selected)
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		m.calendar.loading = true
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.contacts):
		m.contacts = newContactsModel()
		m.currentScreen = screenContacts
		return m, nil
	case key.Matches(keyMsg, keys.newItem):
		if err := svc.OpenForDate(m.calendar.selected); err != nil {
			if errors.Is(err, service.ErrPastDate) {
				m.showErrorf(validators.MsgDateInPast)
			} else {
				m.showErrorf(err.Error())
			}
			return m, nil
		}
		m.form = newApptFormModel(svc, m.contactName)
		m.currentScreen = screenAppointmentForm
		return m, nil
	}

	if m.calendar.focusList {
		return m.updateCalendarList(keyMsg)
	}
	return m.updateCalendarGrid(keyMsg)
}

func (m appModel) updateCalendarGrid(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	move := 0
	switch {
	case key.Matches(keyMsg, keys.left):
		move = -1
	case key.Matches(keyMsg, keys.right):
		move = 1
	case key.Matches(keyMsg, keys.up):
		move = -7
	case key.Matches(keyMsg, keys.down):
		move = 7
	}
	if move == 0 {
		return m, nil
	}

	m.calendar.selected = m.calendar.selected.AddDate(0, 0, move)
	m.calendar.visibleMonth = startOfMonthOf(m.calendar.selected)
	m.services.ScheduleService.SelectDate(m.calendar.selected)
	m.calendar.listIdx = 0
	return m, nil
}

func (m appModel) updateCalendarList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	svc := m.services.ScheduleService
	day := svc.DayAppointments(m.calendar.selected)

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.calendar.listIdx > 0 {
			m.calendar.listIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.calendar.listIdx < len(day)-1 {
			m.calendar.listIdx++
		}
	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.edit):
		if m.calendar.listIdx >= len(day) {
			return m, nil
		}
		if err := svc.OpenForEdit(day[m.calendar.listIdx]); err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		m.form = newApptFormModel(svc, m.contactName)
		m.currentScreen = screenAppointmentForm
	case key.Matches(keyMsg, keys.delete):
		if m.calendar.listIdx >= len(day) {
			return m, nil
		}
		// deletion runs through the editor so the consent wording can
		// honor the persisted notification flag
		if err := svc.OpenForEdit(day[m.calendar.listIdx]); err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		m.openDeleteConfirm(true)
	}
	return m, nil
}

func (m appModel) viewCalendar() string {
	svc := m.services.ScheduleService
	grid := calendar.MonthGrid(m.calendar.visibleMonth)
	appointments := svc.Appointments()
	today := time.Now()

	var b strings.Builder
	b.WriteString(titleStyle.Render(monthTitle(m.calendar.visibleMonth)))
	if m.calendar.loading {
		b.WriteString("  (lädt...)")
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Mo  Di  Mi  Do  Fr  Sa  So"))
	b.WriteString("\n")

	for i, day := range grid {
		cell := fmt.Sprintf("%2d", day.Date.Day())
		switch {
		case calendar.SameDay(day.Date, m.calendar.selected):
			cell = selectedDayStyle.Render(cell)
		case calendar.SameDay(day.Date, today):
			cell = todayStyle.Render(cell)
		case !day.InMonth:
			cell = outMonthStyle.Render(cell)
		case calendar.IsPastDate(day.Date):
			cell = pastDayStyle.Render(cell)
		}

		marker := " "
		if calendar.HasAppointments(appointments, day.Date) {
			marker = "•"
		}

		b.WriteString(cell + marker + " ")
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Termine am " + m.calendar.selected.Format("02.01.2006")))
	b.WriteString("\n")

	day := svc.DayAppointments(m.calendar.selected)
	if len(day) == 0 {
		b.WriteString(helpStyle.Render("  keine Termine"))
		b.WriteString("\n")
	}
	for i, a := range day {
		cursor := "  "
		if m.calendar.focusList && i == m.calendar.listIdx {
			cursor = "> "
		}
		b.WriteString(cursor + appointmentLine(a, m.contactName(a.ContactID)) + "\n")
	}

	if m.calendar.status != "" {
		b.WriteString("\n" + m.calendar.status + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("n neu  e bearbeiten  d löschen  c Kontakte  r aktualisieren  tab Liste  [/] Monat  t heute  q beenden"))
	return b.String()
}
