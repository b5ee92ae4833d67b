// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-contact-planner/internal/service"
)

// contactsModel is the contact book: search, edit, and the entry point for
// planning an appointment with a nominated contact.
type contactsModel struct {
	searchInput textinput.Model
	searching   bool
	idx         int
	status      string
}

func newContactsModel() contactsModel {
	searchInput := textinput.New()
	searchInput.Width = 30
	searchInput.Placeholder = "Name oder E-Mail"
	return contactsModel{searchInput: searchInput}
}

func (m appModel) updateContacts(msg tea.Msg) (tea.Model, tea.Cmd) {
	svc := m.services.ScheduleService

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	matches := svc.SearchContacts(m.contacts.searchInput.Value())

	if m.contacts.searching {
		switch {
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
			m.contacts.searching = false
			m.contacts.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.contacts.searchInput, cmd = m.contacts.searchInput.Update(msg)
		m.contacts.idx = 0
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.quit), key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenCalendar
		return m, nil
	case key.Matches(keyMsg, keys.search):
		m.contacts.searching = true
		m.contacts.searchInput.Focus()
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.contacts.idx > 0 {
			m.contacts.idx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.contacts.idx < len(matches)-1 {
			m.contacts.idx++
		}
		return m, nil
	case key.Matches(keyMsg, keys.newItem):
		m.contactForm = newContactFormModel(nil, false)
		m.currentScreen = screenContactForm
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		if m.contacts.idx >= len(matches) {
			return m, nil
		}
		contact := matches[m.contacts.idx]
		m.contactForm = newContactFormModel(&contact, false)
		m.currentScreen = screenContactForm
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.contacts.idx >= len(matches) {
			return m, nil
		}
		// nominate the contact for scheduling; the service decides
		// whether an editor opens and clears the nomination either way
		svc.PreselectContact(matches[m.contacts.idx].ID)
		if svc.Session().Mode == service.ModeCreate {
			m.form = newApptFormModel(svc, m.contactName)
			m.currentScreen = screenAppointmentForm
		}
		return m, nil
	case key.Matches(keyMsg, keys.copyMail):
		if m.contacts.idx >= len(matches) {
			return m, nil
		}
		return m, cmdCopyToClipboard(matches[m.contacts.idx].Email)
	case key.Matches(keyMsg, keys.copyPhone):
		if m.contacts.idx >= len(matches) {
			return m, nil
		}
		return m, cmdCopyToClipboard(matches[m.contacts.idx].Phone)
	}

	return m, nil
}

func (m appModel) viewContacts() string {
	matches := m.services.ScheduleService.SearchContacts(m.contacts.searchInput.Value())

	var b strings.Builder
	b.WriteString(titleStyle.Render("Kontakte"))
	b.WriteString("\n\n")
	b.WriteString("Suche: [" + m.contacts.searchInput.View() + "]\n\n")

	if len(matches) == 0 {
		b.WriteString(helpStyle.Render("  keine Kontakte"))
		b.WriteString("\n")
	}
	for i, contact := range matches {
		cursor := "  "
		if i == m.contacts.idx {
			cursor = "> "
		}
		line := fitText(contact.Name, 28) + "  " + helpStyle.Render(fitText(contact.Email, 28))
		b.WriteString(cursor + line + "\n")
	}

	if m.contacts.status != "" {
		b.WriteString("\n" + m.contacts.status + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter Termin planen  n neu  e bearbeiten  / suchen  m E-Mail kopieren  p Telefon kopieren  esc zurück"))
	return b.String()
}
