// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/MKhiriev/go-contact-planner/internal/store"
	"github.com/MKhiriev/go-contact-planner/internal/validators"
	"github.com/MKhiriev/go-contact-planner/models"
)

type contactService struct {
	contacts store.ContactRepository
	logger   *logger.Logger
}

// NewContactService constructs the backend contact service.
func NewContactService(contacts store.ContactRepository, log *logger.Logger) ContactService {
	return &contactService{contacts: contacts, logger: log}
}

func (s *contactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.contacts.List(ctx)
}

func (s *contactService) Create(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if err := checkContactRecord(contact); err != nil {
		return models.Contact{}, err
	}
	return s.contacts.Create(ctx, contact)
}

func (s *contactService) Update(ctx context.Context, id int64, contact models.Contact) (models.Contact, error) {
	if err := checkContactRecord(contact); err != nil {
		return models.Contact{}, err
	}
	return s.contacts.Update(ctx, id, contact)
}

// checkContactRecord applies the form rules to an inbound record. The
// backend does not trust client-side validation.
func checkContactRecord(contact models.Contact) error {
	errs := validators.ValidateContact(models.ContactDraft{
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Address: contact.Address,
		Note:    contact.Note,
	})
	if !errs.Empty() {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, errs)
	}
	return nil
}
