// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-contact-planner/internal/app"
	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/MKhiriev/go-contact-planner/models"
)

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contacts, err := h.services.ContactService.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listContacts").Msg(app.MsgListContactsFailed)
		writeDetail(w, r, statusFromError(err), app.MsgListContactsFailed)
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	writeJSON(w, r, http.StatusOK, contacts)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Str("func", "*Handler.createContact").Msg(app.MsgInvalidJSON)
		writeDetail(w, r, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	created, err := h.services.ContactService.Create(r.Context(), contact)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createContact").Msg("error creating contact")
		writeDetail(w, r, statusFromError(err), err.Error())
		return
	}

	writeJSON(w, r, http.StatusCreated, created)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		writeDetail(w, r, http.StatusNotFound, app.MsgNotFound)
		return
	}

	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		log.Err(err).Str("func", "*Handler.updateContact").Msg(app.MsgInvalidJSON)
		writeDetail(w, r, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	updated, err := h.services.ContactService.Update(r.Context(), id, contact)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateContact").Int64("id", id).Msg("error updating contact")
		writeDetail(w, r, statusFromError(err), err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, updated)
}
