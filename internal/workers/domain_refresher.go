// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package workers

import (
	"context"
	"time"

	"github.com/avetrov/agencydesk/internal/logger"
)

// DomainRefresher is the slice of the domain service the worker drives.
type DomainRefresher interface {
	RefreshDomains(ctx context.Context) error
}

// DomainRefreshWorker sweeps tracked domains on a fixed interval. One sweep
// runs immediately on start so a fresh deployment does not wait a full
// interval for its first expiry data.
type DomainRefreshWorker struct {
	domains  DomainRefresher
	interval time.Duration
	logger   *logger.Logger
}

// NewDomainRefreshWorker constructs the worker. A zero or negative interval
// disables it; Run then returns immediately.
func NewDomainRefreshWorker(domains DomainRefresher, interval time.Duration, logger *logger.Logger) *DomainRefreshWorker {
	return &DomainRefreshWorker{
		domains:  domains,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled, sweeping once per interval. Sweep
// failures are logged and the ticker keeps going.
func (w *DomainRefreshWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("domain refresh worker disabled")
		return
	}

	ctx = w.logger.WithContext(ctx)
	w.logger.Info().Dur("interval", w.interval).Msg("domain refresh worker started")

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("domain refresh worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *DomainRefreshWorker) sweep(ctx context.Context) {
	if err := w.domains.RefreshDomains(ctx); err != nil {
		w.logger.Err(err).Msg("domain refresh sweep failed")
	}
}
