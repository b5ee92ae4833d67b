// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-contact-planner/internal/validators"
	"github.com/MKhiriev/go-contact-planner/models"
)

var contactFormLabels = [...]string{"Name", "E-Mail", "Telefon", "Adresse", "Notiz"}

var contactFormFields = [...]string{
	validators.FieldName,
	validators.FieldEmail,
	validators.FieldPhone,
	"address",
	validators.FieldNote,
}

// contactFormModel creates or edits a contact. In inline mode it was
// opened from the appointment editor and returns there after saving.
type contactFormModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	editingID  int64
	inline     bool
	errors     models.FieldErrors
	submitting bool
}

func newContactFormModel(contact *models.Contact, inline bool) contactFormModel {
	inputs := make([]textinput.Model, len(contactFormLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Focus()

	m := contactFormModel{inputs: inputs, inline: inline}
	if contact == nil {
		return m
	}

	m.editing = true
	m.editingID = contact.ID
	draft := models.DraftFromContact(*contact)
	m.inputs[0].SetValue(draft.Name)
	m.inputs[1].SetValue(draft.Email)
	m.inputs[2].SetValue(draft.Phone)
	m.inputs[3].SetValue(draft.Address)
	m.inputs[4].SetValue(draft.Note)
	return m
}

func (f contactFormModel) draft() models.ContactDraft {
	return models.ContactDraft{
		Name:    f.inputs[0].Value(),
		Email:   f.inputs[1].Value(),
		Phone:   f.inputs[2].Value(),
		Address: f.inputs[3].Value(),
		Note:    f.inputs[4].Value(),
	}
}

func (m appModel) updateContactForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.contactForm.inline {
				m.currentScreen = screenAppointmentForm
			} else {
				m.currentScreen = screenContacts
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.contactForm.focus = (m.contactForm.focus + 1) % len(m.contactForm.inputs)
			m.contactForm.syncFocus()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.contactForm.focus = (m.contactForm.focus + len(m.contactForm.inputs) - 1) % len(m.contactForm.inputs)
			m.contactForm.syncFocus()
			return m, nil
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.save):
			if m.contactForm.submitting {
				return m, nil
			}
			m.contactForm.submitting = true
			if m.contactForm.editing {
				return m, m.cmdUpdateContact(m.contactForm.editingID, m.contactForm.draft())
			}
			return m, m.cmdCreateContact(m.contactForm.draft())
		}
	}

	var cmd tea.Cmd
	m.contactForm.inputs[m.contactForm.focus], cmd = m.contactForm.inputs[m.contactForm.focus].Update(msg)
	return m, cmd
}

func (f *contactFormModel) syncFocus() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.inputs[f.focus].Focus()
}

func (m appModel) viewContactForm() string {
	f := m.contactForm

	title := "Neuer Kontakt"
	if f.editing {
		title = "Kontakt bearbeiten"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i, label := range contactFormLabels {
		b.WriteString(formRow(f.focus == i, label, "["+f.inputs[i].View()+"]"))
		b.WriteString(fieldError(f.errors, contactFormFields[i]))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc abbrechen  tab nächstes Feld  enter speichern"))
	return b.String()
}
