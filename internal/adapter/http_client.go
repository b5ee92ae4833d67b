// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/MKhiriev/go-contact-planner/models"
	"github.com/go-resty/resty/v2"
)

const tenantHeader = "X-Tenant"

// HTTPClientConfig configures the REST implementation of
// [BackendAdapter]. Tenant is an explicit injected value, never ambient
// state; it is stamped onto every outbound request.
type HTTPClientConfig struct {
	BaseURL string
	Tenant  string
	Timeout time.Duration
}

type httpBackendAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs a [BackendAdapter] speaking the
// backend's JSON protocol. Sensible defaults are applied for an empty base
// URL or a non-positive timeout.
func NewHTTPBackendAdapter(cfg HTTPClientConfig, log *logger.Logger) BackendAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://127.0.0.1:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader(tenantHeader, cfg.Tenant)

	cli.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("backend call")
		return nil
	})

	return &httpBackendAdapter{client: cli, logger: log}
}

func (h *httpBackendAdapter) ListContacts(ctx context.Context) ([]models.Contact, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/appointments/contacts/")
	if err != nil {
		return nil, fmt.Errorf("list contacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var contacts []models.Contact
	if err = json.Unmarshal(resp.Body(), &contacts); err != nil {
		return nil, fmt.Errorf("decode contacts response: %w", err)
	}
	return contacts, nil
}

func (h *httpBackendAdapter) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/appointments/")
	if err != nil {
		return nil, fmt.Errorf("list appointments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var appointments []models.Appointment
	if err = json.Unmarshal(resp.Body(), &appointments); err != nil {
		return nil, fmt.Errorf("decode appointments response: %w", err)
	}
	return appointments, nil
}

func (h *httpBackendAdapter) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(contact).
		Post("/appointments/contacts/")
	if err != nil {
		return models.Contact{}, fmt.Errorf("create contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	var created models.Contact
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Contact{}, fmt.Errorf("decode created contact: %w", err)
	}
	return created, nil
}

func (h *httpBackendAdapter) UpdateContact(ctx context.Context, id int64, contact models.Contact) (models.Contact, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(contact).
		Put(fmt.Sprintf("/appointments/contacts/%d/", id))
	if err != nil {
		return models.Contact{}, fmt.Errorf("update contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Contact{}, err
	}

	var updated models.Contact
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Contact{}, fmt.Errorf("decode updated contact: %w", err)
	}
	return updated, nil
}

func (h *httpBackendAdapter) CreateAppointment(ctx context.Context, appointment models.Appointment) (models.Appointment, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(appointment).
		Post("/appointments/")
	if err != nil {
		return models.Appointment{}, fmt.Errorf("create appointment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Appointment{}, err
	}

	var created models.Appointment
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Appointment{}, fmt.Errorf("decode created appointment: %w", err)
	}
	return created, nil
}

func (h *httpBackendAdapter) UpdateAppointment(ctx context.Context, id int64, appointment models.Appointment) (models.Appointment, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(appointment).
		Put(fmt.Sprintf("/appointments/%d/", id))
	if err != nil {
		return models.Appointment{}, fmt.Errorf("update appointment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Appointment{}, err
	}

	var updated models.Appointment
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Appointment{}, fmt.Errorf("decode updated appointment: %w", err)
	}
	return updated, nil
}

func (h *httpBackendAdapter) DeleteAppointment(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/appointments/%d/", id))
	if err != nil {
		return fmt.Errorf("delete appointment request: %w", err)
	}

	return mapHTTPError(resp)
}

// mapHTTPError converts a non-2xx response into a sentinel error carrying
// the backend's detail message. The body is expected to be a DRF-style
// {"detail": "..."} envelope; when it is not, the status text serves as
// the message.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := extractDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(status)
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrTenantRejected, detail)
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrUnavailable, status, detail)
	default:
		return fmt.Errorf("http %d: %s", status, detail)
	}
}

func extractDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload models.DetailResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}
	return strings.TrimSpace(payload.Detail)
}
