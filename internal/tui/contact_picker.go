// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-contact-planner/models"
)

// pickerModel selects a contact for the appointment draft. Typing narrows
// the list by name or e-mail.
type pickerModel struct {
	searchInput textinput.Model
	contacts    []models.Contact
	idx         int
}

func newPickerModel(contacts []models.Contact) pickerModel {
	searchInput := textinput.New()
	searchInput.Width = 30
	searchInput.Placeholder = "suchen..."
	searchInput.Focus()

	return pickerModel{
		searchInput: searchInput,
		contacts:    contacts,
	}
}

func (m appModel) updateContactPicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	svc := m.services.ScheduleService

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		matches := svc.SearchContacts(m.picker.searchInput.Value())

		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenAppointmentForm
			return m, nil
		case key.Matches(keyMsg, keys.up):
			if m.picker.idx > 0 {
				m.picker.idx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.down):
			if m.picker.idx < len(matches)-1 {
				m.picker.idx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.picker.idx < len(matches) {
				m.form.contactID = matches[m.picker.idx].ID
				m.form.contactName = matches[m.picker.idx].Name
				svc.SetDraft(m.form.draft())
			}
			m.currentScreen = screenAppointmentForm
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.picker.searchInput, cmd = m.picker.searchInput.Update(msg)
	m.picker.idx = 0
	return m, cmd
}

func (m appModel) viewContactPicker() string {
	matches := m.services.ScheduleService.SearchContacts(m.picker.searchInput.Value())

	var b strings.Builder
	b.WriteString(titleStyle.Render("Kontakt auswählen"))
	b.WriteString("\n\n")
	b.WriteString("Suche: [" + m.picker.searchInput.View() + "]\n\n")

	if len(matches) == 0 {
		b.WriteString(helpStyle.Render("  keine Kontakte gefunden"))
		b.WriteString("\n")
	}
	for i, contact := range matches {
		cursor := "  "
		if i == m.picker.idx {
			cursor = "> "
		}
		b.WriteString(cursor + fitText(contact.Name, 30) + "  " + helpStyle.Render(contact.Email) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter auswählen  esc zurück"))
	return b.String()
}
