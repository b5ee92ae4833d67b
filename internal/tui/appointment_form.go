// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-contact-planner/internal/service"
	"github.com/MKhiriev/go-contact-planner/internal/validators"
	"github.com/MKhiriev/go-contact-planner/models"
)

const (
	formFieldDate = iota
	formFieldTime
	formFieldContact
	formFieldType
	formFieldNote
	formFieldSendEmail
	formFieldCount
)

var typeOptions = []models.AppointmentType{
	models.TypeChat,
	models.TypeEmail,
	models.TypePhone,
	models.TypeLiveCall,
}

// apptFormModel mirrors the editor session's draft for rendering. The
// session stays authoritative: every change is pushed back via SetDraft
// before validation or persistence.
type apptFormModel struct {
	dateInput textinput.Model
	timeInput textinput.Model
	noteInput textinput.Model

	contactID   int64
	contactName string
	typeIdx     int
	sendEmail   bool

	editing     bool
	emailLocked bool
	focus       int
	submitting  bool
}

func newApptFormModel(svc service.ClientScheduleService, resolveName func(int64) string) apptFormModel {
	session := svc.Session()
	draft := session.Draft

	dateInput := textinput.New()
	dateInput.Width = 12
	dateInput.Placeholder = "JJJJ-MM-TT"
	dateInput.SetValue(draft.Date)
	dateInput.Focus()

	timeInput := textinput.New()
	timeInput.Width = 7
	timeInput.Placeholder = "HH:MM"
	timeInput.SetValue(draft.Time)

	noteInput := textinput.New()
	noteInput.Width = 40
	noteInput.SetValue(draft.Note)

	typeIdx := 0
	for i, t := range typeOptions {
		if t == draft.Type {
			typeIdx = i
			break
		}
	}

	return apptFormModel{
		dateInput:   dateInput,
		timeInput:   timeInput,
		noteInput:   noteInput,
		contactID:   draft.ContactID,
		contactName: resolveName(draft.ContactID),
		typeIdx:     typeIdx,
		sendEmail:   draft.SendEmail == models.SendEmailYes,
		editing:     session.Mode == service.ModeEdit,
		emailLocked: session.EmailLocked,
	}
}

// draft assembles the current form state for the session.
func (f apptFormModel) draft() models.AppointmentDraft {
	sendEmail := models.SendEmailNo
	if f.sendEmail {
		sendEmail = models.SendEmailYes
	}
	return models.AppointmentDraft{
		Date:      strings.TrimSpace(f.dateInput.Value()),
		Time:      strings.TrimSpace(f.timeInput.Value()),
		ContactID: f.contactID,
		Type:      typeOptions[f.typeIdx],
		Note:      f.noteInput.Value(),
		SendEmail: sendEmail,
	}
}

func (m appModel) updateAppointmentForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	svc := m.services.ScheduleService

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			svc.Cancel()
			m.currentScreen = screenCalendar
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.focus = (m.form.focus + 1) % formFieldCount
			m.form.syncFocus()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focus = (m.form.focus + formFieldCount - 1) % formFieldCount
			m.form.syncFocus()
			return m, nil
		case key.Matches(keyMsg, keys.save):
			return m.submitAppointmentForm()
		case key.Matches(keyMsg, keys.newInline):
			m.contactForm = newContactFormModel(nil, true)
			svc.SetDraft(m.form.draft())
			m.currentScreen = screenContactForm
			return m, nil
		case key.Matches(keyMsg, keys.delete):
			if m.form.editing && !m.form.anyInputFocused() {
				m.openDeleteConfirm(false)
				return m, nil
			}
		}

		switch m.form.focus {
		case formFieldContact:
			if key.Matches(keyMsg, keys.enter) {
				svc.SetDraft(m.form.draft())
				m.picker = newPickerModel(svc.Contacts())
				m.currentScreen = screenContactPicker
				return m, nil
			}
		case formFieldType:
			if key.Matches(keyMsg, keys.left) && m.form.typeIdx > 0 {
				m.form.typeIdx--
			}
			if key.Matches(keyMsg, keys.right) && m.form.typeIdx < len(typeOptions)-1 {
				m.form.typeIdx++
			}
			return m, nil
		case formFieldSendEmail:
			if key.Matches(keyMsg, keys.left) || key.Matches(keyMsg, keys.right) {
				m.form.sendEmail = !m.form.sendEmail
			}
			if key.Matches(keyMsg, keys.enter) {
				return m.submitAppointmentForm()
			}
			return m, nil
		}

		if key.Matches(keyMsg, keys.enter) && m.form.focus != formFieldNote {
			return m.submitAppointmentForm()
		}
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case formFieldDate:
		m.form.dateInput, cmd = m.form.dateInput.Update(msg)
	case formFieldTime:
		m.form.timeInput, cmd = m.form.timeInput.Update(msg)
	case formFieldNote:
		m.form.noteInput, cmd = m.form.noteInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) submitAppointmentForm() (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}
	m.form.submitting = true
	m.services.ScheduleService.SetDraft(m.form.draft())
	return m, m.cmdSave()
}

func (f *apptFormModel) syncFocus() {
	f.dateInput.Blur()
	f.timeInput.Blur()
	f.noteInput.Blur()
	switch f.focus {
	case formFieldDate:
		f.dateInput.Focus()
	case formFieldTime:
		f.timeInput.Focus()
	case formFieldNote:
		f.noteInput.Focus()
	}
}

func (f apptFormModel) anyInputFocused() bool {
	return f.focus == formFieldDate || f.focus == formFieldTime || f.focus == formFieldNote
}

func (m appModel) viewAppointmentForm() string {
	f := m.form
	session := m.services.ScheduleService.Session()
	errs := session.Errors

	title := "Neuer Termin"
	if f.editing {
		title = "Termin bearbeiten"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(formRow(f.focus == formFieldDate, "Datum", "["+f.dateInput.View()+"]"))
	b.WriteString(fieldError(errs, validators.FieldDate))

	b.WriteString(formRow(f.focus == formFieldTime, "Uhrzeit", "["+f.timeInput.View()+"]"))
	b.WriteString(fieldError(errs, validators.FieldTime))

	contactName := f.contactName
	if f.contactID != 0 {
		contactName = m.contactName(f.contactID)
	}
	if contactName == "" {
		contactName = "— auswählen (enter)"
	}
	b.WriteString(formRow(f.focus == formFieldContact, "Kontakt", contactName))
	b.WriteString(fieldError(errs, validators.FieldContactID))

	b.WriteString(formRow(f.focus == formFieldType, "Art", "< "+typeLabel(typeOptions[f.typeIdx])+" >"))

	b.WriteString(formRow(f.focus == formFieldNote, "Notiz", "["+f.noteInput.View()+"]"))

	sendEmailLabel := "nein"
	if f.sendEmail {
		sendEmailLabel = "ja"
	}
	if f.emailLocked {
		sendEmailLabel += "  " + helpStyle.Render("(Benachrichtigung bereits geplant)")
	}
	b.WriteString(formRow(f.focus == formFieldSendEmail, "E-Mail senden", "< "+sendEmailLabel+" >"))

	b.WriteString("\n")
	help := "esc abbrechen  tab nächstes Feld  ctrl+s speichern  ctrl+n neuer Kontakt"
	if f.editing {
		help += "  d löschen"
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func formRow(focused bool, label, value string) string {
	cursor := "  "
	if focused {
		cursor = "> "
	}
	const labelWidth = 14
	padded := label + strings.Repeat(" ", max(0, labelWidth-len([]rune(label))))
	return cursor + padded + value + "\n"
}

func fieldError(errs models.FieldErrors, field string) string {
	msg := errs.Get(field)
	if msg == "" {
		return ""
	}
	return "    " + errorStyle.Render(msg) + "\n"
}
