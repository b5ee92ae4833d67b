// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/MKhiriev/go-contact-planner/internal/service"
)

type Handler struct {
	services *service.Services

	// tenant is the only slug accepted in the X-Tenant request header.
	tenant string

	logger *logger.Logger
}

func NewHandler(services *service.Services, tenant string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		tenant:   tenant,
		logger:   logger,
	}
}
