// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-planner/internal/adapter"
	"github.com/MKhiriev/go-contact-planner/internal/config"
	"github.com/MKhiriev/go-contact-planner/internal/logger"
	"github.com/MKhiriev/go-contact-planner/internal/service"
	"github.com/MKhiriev/go-contact-planner/internal/store"
	"github.com/MKhiriev/go-contact-planner/internal/tui"
	"github.com/MKhiriev/go-contact-planner/internal/workers"
)

type App struct {
	services *service.ClientServices
	cache    store.SnapshotCache
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	cache, err := store.NewSnapshotCache(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("create snapshot cache: %w", err)
	}

	backend := adapter.NewHTTPBackendAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Backend.Address,
		Tenant:  cfg.Tenant,
		Timeout: cfg.Backend.RequestTimeout,
	}, log)

	// A consumed contact nomination is only logged here: the terminal UI
	// has no address bar to clean up, but the workflow still reports it.
	svcs := service.NewClientServices(backend, cache, func() {
		log.Debug().Msg("contact preselection cleared")
	}, log)

	ui, err := tui.New(svcs, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{services: svcs, cache: cache, tui: ui, logger: log}, nil
}

func (a *App) Run() error {
	defer func() {
		if err := a.cache.Close(); err != nil {
			a.logger.Err(err).Msg("error closing snapshot cache")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	background := workers.New(
		newRefreshWorker(ctx, a.services.ScheduleService, 5*time.Minute, a.logger),
	)
	background.Run()

	return a.tui.Run(ctx)
}
