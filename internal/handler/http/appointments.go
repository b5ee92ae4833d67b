// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-contact-planner/internal/app"
	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/MKhiriev/go-contact-planner/internal/store"
	"github.com/MKhiriev/go-contact-planner/models"
)

func (h *Handler) listAppointments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, err := appointmentFilterFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAppointments").Msg("bad query params")
		writeDetail(w, r, http.StatusBadRequest, err.Error())
		return
	}

	appointments, err := h.services.AppointmentService.List(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAppointments").Msg(app.MsgListAppointmentsFailed)
		writeDetail(w, r, statusFromError(err), app.MsgListAppointmentsFailed)
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}

	writeJSON(w, r, http.StatusOK, appointments)
}

func (h *Handler) createAppointment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var appointment models.Appointment
	if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
		log.Err(err).Str("func", "*Handler.createAppointment").Msg(app.MsgInvalidJSON)
		writeDetail(w, r, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	created, err := h.services.AppointmentService.Create(r.Context(), appointment)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createAppointment").Msg("error creating appointment")
		writeDetail(w, r, statusFromError(err), err.Error())
		return
	}

	writeJSON(w, r, http.StatusCreated, created)
}

func (h *Handler) updateAppointment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		writeDetail(w, r, http.StatusNotFound, app.MsgNotFound)
		return
	}

	var appointment models.Appointment
	if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
		log.Err(err).Str("func", "*Handler.updateAppointment").Msg(app.MsgInvalidJSON)
		writeDetail(w, r, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	updated, err := h.services.AppointmentService.Update(r.Context(), id, appointment)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateAppointment").Int64("id", id).Msg("error updating appointment")
		writeDetail(w, r, statusFromError(err), err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, updated)
}

func (h *Handler) deleteAppointment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromURL(r)
	if err != nil {
		writeDetail(w, r, http.StatusNotFound, app.MsgNotFound)
		return
	}

	if err := h.services.AppointmentService.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteAppointment").Int64("id", id).Msg("error deleting appointment")
		writeDetail(w, r, statusFromError(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func idFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// appointmentFilterFromQuery reads the optional contact, from, and to query
// parameters. Timestamps are RFC 3339; from is inclusive, to exclusive.
func appointmentFilterFromQuery(r *http.Request) (store.AppointmentFilter, error) {
	var filter store.AppointmentFilter

	if raw := r.URL.Query().Get("contact"); raw != "" {
		contactID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return store.AppointmentFilter{}, err
		}
		filter.ContactID = contactID
	}
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return store.AppointmentFilter{}, err
		}
		filter.From = from
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return store.AppointmentFilter{}, err
		}
		filter.To = to
	}

	return filter, nil
}
