// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-contact-planner/internal/service"
	"github.com/MKhiriev/go-contact-planner/models"
)

type screen int

const (
	screenCalendar screen = iota
	screenAppointmentForm
	screenContactPicker
	screenContacts
	screenContactForm
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	currentScreen screen

	calendar    calendarModel
	form        apptFormModel
	picker      pickerModel
	contacts    contactsModel
	contactForm contactFormModel

	err          error
	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
}

func newAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenCalendar,
		calendar:      newCalendarModel(services.ScheduleService.SelectedDate()),
		contacts:      newContactsModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdRefresh()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case refreshDoneMsg:
		m.calendar.loading = false
		if msg.err != nil {
			m.showErrorf("Server nicht erreichbar, es werden lokale Daten angezeigt.")
		}
		return m, nil
	case appointmentSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrValidationFailed) {
				// messages are in the session, the form renders them
				return m, nil
			}
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.calendar.selected = m.services.ScheduleService.SelectedDate()
		m.calendar.visibleMonth = startOfMonthOf(m.calendar.selected)
		m.calendar.status = "Gespeichert!"
		m.currentScreen = screenCalendar
		return m, cmdClearStatus()
	case appointmentDeletedMsg:
		m.showConfirm = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.calendar.status = "Termin entfernt."
		m.currentScreen = screenCalendar
		return m, cmdClearStatus()
	case contactSavedMsg:
		m.contactForm.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if !msg.errs.Empty() {
			m.contactForm.errors = msg.errs
			return m, nil
		}
		if m.contactForm.inline {
			m.currentScreen = screenAppointmentForm
			m.form = newApptFormModel(m.services.ScheduleService, m.contactName)
			return m, nil
		}
		m.contacts.status = "Gespeichert!"
		m.currentScreen = screenContacts
		return m, cmdClearStatus()
	case copiedMsg:
		m.contacts.status = "Kopiert!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.calendar.status = ""
		m.contacts.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenCalendar:
		return m.updateCalendar(msg)
	case screenAppointmentForm:
		return m.updateAppointmentForm(msg)
	case screenContactPicker:
		return m.updateContactPicker(msg)
	case screenContacts:
		return m.updateContacts(msg)
	case screenContactForm:
		return m.updateContactForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenCalendar:
		body = m.viewCalendar()
	case screenAppointmentForm:
		body = m.viewAppointmentForm()
	case screenContactPicker:
		body = m.viewContactPicker()
	case screenContacts:
		body = m.viewContacts()
	case screenContactForm:
		body = m.viewContactForm()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		return m, m.cmdDelete()
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		if m.confirm.cancelEditor {
			m.services.ScheduleService.Cancel()
		}
	}
	return m, nil
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// openDeleteConfirm prepares the confirmation overlay for the appointment
// currently held by the editor session. The wording depends on whether an
// e-mail notification was ever persisted for it.
func (m *appModel) openDeleteConfirm(cancelEditorOnNo bool) {
	session := m.services.ScheduleService.Session()
	m.confirm = confirmModel{
		archive:      session.Disposition() == service.DeleteArchive,
		cancelEditor: cancelEditorOnNo,
	}
	m.showConfirm = true
}

// contactName resolves a contact's display name from the snapshot.
func (m appModel) contactName(id int64) string {
	contact, ok := m.services.ScheduleService.ContactByID(id)
	if !ok {
		return ""
	}
	return contact.Name
}

func startOfMonthOf(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// ── commands ──

func (m appModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ScheduleService
	return func() tea.Msg {
		return refreshDoneMsg{err: svc.Refresh(ctx)}
	}
}

func (m appModel) cmdSave() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ScheduleService
	return func() tea.Msg {
		return appointmentSavedMsg{err: svc.Save(ctx)}
	}
}

func (m appModel) cmdDelete() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ScheduleService
	return func() tea.Msg {
		return appointmentDeletedMsg{err: svc.Delete(ctx)}
	}
}

func (m appModel) cmdCreateContact(draft models.ContactDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ScheduleService
	return func() tea.Msg {
		contact, errs, err := svc.CreateContactInline(ctx, draft)
		return contactSavedMsg{contact: contact, errs: errs, err: err}
	}
}

func (m appModel) cmdUpdateContact(id int64, draft models.ContactDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ScheduleService
	return func() tea.Msg {
		contact, errs, err := svc.UpdateContact(ctx, id, draft)
		return contactSavedMsg{contact: contact, errs: errs, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return refreshDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
