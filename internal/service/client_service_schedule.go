// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-contact-planner/internal/adapter"
	"github.com/MKhiriev/go-contact-planner/internal/calendar"
	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/MKhiriev/go-contact-planner/internal/store"
	"github.com/MKhiriev/go-contact-planner/internal/validators"
	"github.com/MKhiriev/go-contact-planner/models"
)

type clientScheduleService struct {
	backend adapter.BackendAdapter
	cache   store.SnapshotCache
	logger  *logger.Logger

	onClearPreselection func()

	mu           sync.Mutex
	contacts     []models.Contact
	appointments []models.Appointment
	session      EditorSession
	selectedDate time.Time
	inFlight     bool
}

// NewClientScheduleService constructs the scheduling service. The initial
// day selection is today.
func NewClientScheduleService(backend adapter.BackendAdapter, cache store.SnapshotCache, onClearPreselection func(), log *logger.Logger) ClientScheduleService {
	if onClearPreselection == nil {
		onClearPreselection = func() {}
	}
	return &clientScheduleService{
		backend:             backend,
		cache:               cache,
		logger:              log,
		onClearPreselection: onClearPreselection,
		session:             EditorSession{Errors: models.FieldErrors{}},
		selectedDate:        calendar.StartOfDay(time.Now()),
	}
}

func (s *clientScheduleService) Refresh(ctx context.Context) error {
	contacts, cErr := s.backend.ListContacts(ctx)
	appointments, aErr := s.backend.ListAppointments(ctx)

	if cErr != nil || aErr != nil {
		if s.restoreFromCache() {
			s.logger.Warn().AnErr("contacts", cErr).AnErr("appointments", aErr).
				Msg("backend unreachable, serving cached snapshot")
			return nil
		}
		if cErr != nil {
			return fmt.Errorf("refresh contacts: %w", cErr)
		}
		return fmt.Errorf("refresh appointments: %w", aErr)
	}

	s.mu.Lock()
	s.contacts = contacts
	s.appointments = appointments
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Store(contacts, appointments); err != nil {
			s.logger.Warn().Err(err).Msg("snapshot cache write failed")
		}
	}
	return nil
}

func (s *clientScheduleService) restoreFromCache() bool {
	if s.cache == nil {
		return false
	}
	contacts, appointments, err := s.cache.Load()
	if err != nil {
		return false
	}

	s.mu.Lock()
	s.contacts = contacts
	s.appointments = appointments
	s.mu.Unlock()
	return true
}

func (s *clientScheduleService) Contacts() []models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contacts
}

func (s *clientScheduleService) Appointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appointments
}

func (s *clientScheduleService) ContactByID(id int64) (models.Contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contact{}, false
}

func (s *clientScheduleService) Session() EditorSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *clientScheduleService) SelectedDate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDate
}

func (s *clientScheduleService) SelectDate(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = calendar.StartOfDay(date)
}

func (s *clientScheduleService) DayAppointments(date time.Time) []models.Appointment {
	day := calendar.AppointmentsOn(s.Appointments(), date)
	sort.SliceStable(day, func(i, j int) bool {
		return day[i].Datetime < day[j].Datetime
	})
	return day
}

func (s *clientScheduleService) OpenForDate(date time.Time) error {
	if calendar.IsPastDate(date) {
		return ErrPastDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.OpenForDate(date)
	return nil
}

func (s *clientScheduleService) OpenForEdit(a models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.OpenForEdit(a)
}

func (s *clientScheduleService) PreselectContact(id int64) {
	// The clear notification fires exactly once per preselection event,
	// whether or not an editor opens.
	defer s.onClearPreselection()

	if _, ok := s.ContactByID(id); !ok {
		s.logger.Debug().Int64("contact_id", id).Msg("preselected contact vanished, discarding")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.OpenForContact(id)
}

func (s *clientScheduleService) SetDraft(d models.AppointmentDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.Mode == ModeNone {
		return
	}
	s.session.Draft = d
}

func (s *clientScheduleService) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.session.Mode == ModeNone {
		s.mu.Unlock()
		return ErrNoEditor
	}
	if s.inFlight {
		s.mu.Unlock()
		return ErrCallInFlight
	}

	if errs := s.session.Submit(); !errs.Empty() {
		s.mu.Unlock()
		return ErrValidationFailed
	}

	record, err := s.session.Record()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	mode := s.session.Mode
	editingID := s.session.EditingID
	s.inFlight = true
	s.mu.Unlock()

	var saved models.Appointment
	if mode == ModeEdit {
		saved, err = s.backend.UpdateAppointment(ctx, editingID, record)
	} else {
		saved, err = s.backend.CreateAppointment(ctx, record)
	}

	s.mu.Lock()
	s.inFlight = false
	if err != nil {
		// The session keeps its pre-call mode and draft so nothing the
		// user typed is lost; the caller surfaces the failure.
		s.mu.Unlock()
		return fmt.Errorf("persist appointment: %w", err)
	}

	if at, perr := time.Parse(time.RFC3339, saved.Datetime); perr == nil {
		s.selectedDate = calendar.StartOfDay(at.Local())
	}
	s.session.Reset()
	s.mu.Unlock()

	if err = s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("snapshot refresh after save failed")
	}
	return nil
}

func (s *clientScheduleService) Delete(ctx context.Context) error {
	s.mu.Lock()
	if s.session.Mode != ModeEdit {
		s.mu.Unlock()
		return ErrNoEditor
	}
	if s.inFlight {
		s.mu.Unlock()
		return ErrCallInFlight
	}
	id := s.session.EditingID
	s.inFlight = true
	s.mu.Unlock()

	err := s.backend.DeleteAppointment(ctx, id)

	s.mu.Lock()
	s.inFlight = false
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("delete appointment %d: %w", id, err)
	}
	s.session.Reset()
	s.mu.Unlock()

	if err = s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("snapshot refresh after delete failed")
	}
	return nil
}

func (s *clientScheduleService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Reset()
}

func (s *clientScheduleService) CreateContactInline(ctx context.Context, draft models.ContactDraft) (models.Contact, models.FieldErrors, error) {
	if errs := validators.ValidateContact(draft); !errs.Empty() {
		return models.Contact{}, errs, nil
	}

	record := draft.Record()
	record.LastContactAt = time.Now().Format(time.RFC3339)

	created, err := s.backend.CreateContact(ctx, record)
	if err != nil {
		return models.Contact{}, nil, fmt.Errorf("create contact: %w", err)
	}

	s.mu.Lock()
	if s.session.Mode != ModeNone {
		s.session.Draft.ContactID = created.ID
	}
	s.mu.Unlock()

	if err = s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("snapshot refresh after contact creation failed")
	}
	return created, nil, nil
}

func (s *clientScheduleService) UpdateContact(ctx context.Context, id int64, draft models.ContactDraft) (models.Contact, models.FieldErrors, error) {
	if errs := validators.ValidateContact(draft); !errs.Empty() {
		return models.Contact{}, errs, nil
	}

	updated, err := s.backend.UpdateContact(ctx, id, draft.Record())
	if err != nil {
		return models.Contact{}, nil, fmt.Errorf("update contact %d: %w", id, err)
	}

	if err = s.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("snapshot refresh after contact update failed")
	}
	return updated, nil, nil
}

func (s *clientScheduleService) SearchContacts(query string) []models.Contact {
	contacts := s.Contacts()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return contacts
	}

	var out []models.Contact
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Email), query) {
			out = append(out, c)
		}
	}
	return out
}
