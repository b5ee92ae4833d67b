// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/MKhiriev/go-contact-planner/internal/service"
)

// refreshWorker re-fetches the backend snapshots on a fixed interval so
// the calendar keeps up with changes made elsewhere. Failures are logged
// and retried on the next tick; the service falls back to the cache on
// its own.
type refreshWorker struct {
	ctx      context.Context
	schedule service.ClientScheduleService
	interval time.Duration
	logger   *logger.Logger
}

func newRefreshWorker(ctx context.Context, schedule service.ClientScheduleService, interval time.Duration, log *logger.Logger) *refreshWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &refreshWorker{
		ctx:      ctx,
		schedule: schedule,
		interval: interval,
		logger:   log,
	}
}

func (w *refreshWorker) Run() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				if err := w.schedule.Refresh(w.ctx); err != nil {
					w.logger.Err(err).Msg("background snapshot refresh failed")
				}
			}
		}
	}()
}
