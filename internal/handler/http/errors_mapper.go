// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-planner/internal/service"
	"github.com/MKhiriev/go-contact-planner/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidRecord:      http.StatusBadRequest,
	service.ErrUnknownContact:     http.StatusBadRequest,
	service.ErrUnknownAppointment: http.StatusNotFound,

	store.ErrNoRows:         http.StatusNotFound,
	store.ErrConstraint:     http.StatusBadRequest,
	store.ErrExecutingQuery: http.StatusInternalServerError,
	store.ErrScanningRow:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
