// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/models"
)

// domainService is the concrete implementation of DomainService.
type domainService struct {
	domains store.DomainRepository
	prober  ExpiryProber
	logger  *logger.Logger
}

// NewDomainService constructs a DomainService. prober may be nil, in which
// case RefreshDomains is a no-op; manual expiry dates still work.
func NewDomainService(domains store.DomainRepository, prober ExpiryProber, logger *logger.Logger) DomainService {
	return &domainService{
		domains: domains,
		prober:  prober,
		logger:  logger,
	}
}

// CreateDomain starts tracking a domain. Names are normalised to lowercase
// without a trailing dot.
func (d *domainService) CreateDomain(ctx context.Context, domain models.Domain) (models.Domain, error) {
	domain.Name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(domain.Name)), ".")
	if domain.Name == "" || !strings.Contains(domain.Name, ".") {
		return models.Domain{}, ErrInvalidDataProvided
	}

	created, err := d.domains.CreateDomain(ctx, domain)
	if err != nil {
		return models.Domain{}, fmt.Errorf("domain creation ended with error: %w", err)
	}

	return created, nil
}

// ListDomains returns all tracked domains, soonest expiry first.
func (d *domainService) ListDomains(ctx context.Context) ([]models.Domain, error) {
	domains, err := d.domains.ListDomains(ctx)
	if err != nil {
		return nil, fmt.Errorf("domain list ended with error: %w", err)
	}

	return domains, nil
}

// DeleteDomain stops tracking a domain.
func (d *domainService) DeleteDomain(ctx context.Context, domainID int64) error {
	if err := d.domains.DeleteDomain(ctx, domainID); err != nil {
		return fmt.Errorf("domain delete ended with error: %w", err)
	}

	return nil
}

// RefreshDomains probes every tracked domain over RDAP and records the
// expiry and registrar it finds. One failing domain does not stop the
// sweep; an unregistered answer still stamps checked_at so the worker does
// not hammer the registry.
func (d *domainService) RefreshDomains(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if d.prober == nil {
		return nil
	}

	domains, err := d.domains.ListDomains(ctx)
	if err != nil {
		return fmt.Errorf("domain list ended with error: %w", err)
	}

	now := time.Now()
	for _, domain := range domains {
		probe, probeErr := d.prober.Probe(ctx, domain.Name)
		if probeErr != nil {
			if errors.Is(probeErr, ErrDomainNotRegistered) {
				log.Warn().Str("domain", domain.Name).Msg("domain is not registered")
				if updateErr := d.domains.UpdateDomainExpiry(ctx, domain.ID, domain.Registrar, nil, now); updateErr != nil {
					log.Err(updateErr).Str("domain", domain.Name).Msg("failed to record probe result")
				}
				continue
			}

			log.Err(probeErr).Str("domain", domain.Name).Msg("domain expiry probe failed")
			continue
		}

		registrar := probe.Registrar
		if registrar == "" {
			registrar = domain.Registrar
		}
		if err = d.domains.UpdateDomainExpiry(ctx, domain.ID, registrar, probe.ExpiresAt, now); err != nil {
			log.Err(err).Str("domain", domain.Name).Msg("failed to record probe result")
		}
	}

	return nil
}
