// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withTenant)

	router.Route("/appointments", func(r chi.Router) {
		r.Get("/", h.listAppointments)
		r.Post("/", h.createAppointment)
		r.Put("/{id}/", h.updateAppointment)
		r.Delete("/{id}/", h.deleteAppointment)

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", h.listContacts)
			r.Post("/", h.createContact)
			r.Put("/{id}/", h.updateContact)
		})
	})

	return router
}
