// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-planner/internal/app"
	"github.com/MKhiriev/go-contact-planner/internal/logger"
)

const tenantHeader = "X-Tenant"

// withTenant rejects requests whose X-Tenant header does not name the
// configured tenant. The rejection body keeps the {"detail": ...} envelope.
func (h *Handler) withTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenant := r.Header.Get(tenantHeader)
		if tenant != h.tenant {
			logger.FromRequest(r).Warn().
				Str("tenant", tenant).
				Msg("request rejected: unknown tenant")
			writeDetail(w, r, http.StatusForbidden, app.MsgTenantRejected)
			return
		}

		next.ServeHTTP(w, r)
	})
}
