// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrDomainNotRegistered is returned by a probe when the registry answers
// 404 for the queried name.
var ErrDomainNotRegistered = errors.New("domain is not registered")

// DomainProbe is one RDAP lookup result.
type DomainProbe struct {
	Registrar string
	ExpiresAt *time.Time
}

// ExpiryProber looks up a domain's registration data.
type ExpiryProber interface {
	Probe(ctx context.Context, domainName string) (DomainProbe, error)
}

// rdapProber queries the RDAP bootstrap service for domain registration
// data. https://rdap.org redirects to the registry responsible for the TLD.
type rdapProber struct {
	client *resty.Client
}

// rdapResponse is the subset of the RDAP domain object the prober reads.
type rdapResponse struct {
	Events []struct {
		Action string    `json:"eventAction"`
		Date   time.Time `json:"eventDate"`
	} `json:"events"`
	Entities []struct {
		Roles      []string `json:"roles"`
		VCardArray []any    `json:"vcardArray"`
	} `json:"entities"`
}

// NewRDAPProber constructs an ExpiryProber over the given RDAP base URL,
// defaulting to the public bootstrap service.
func NewRDAPProber(baseURL string, timeout time.Duration) ExpiryProber {
	if baseURL == "" {
		baseURL = "https://rdap.org"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/rdap+json")

	return &rdapProber{client: client}
}

// Probe fetches the RDAP domain object and extracts the expiration event
// and the registrar entity name.
func (p *rdapProber) Probe(ctx context.Context, domainName string) (DomainProbe, error) {
	var body rdapResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/domain/" + domainName)
	if err != nil {
		return DomainProbe{}, fmt.Errorf("rdap request failed: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return DomainProbe{}, ErrDomainNotRegistered
	default:
		return DomainProbe{}, fmt.Errorf("rdap request failed: unexpected status %d", resp.StatusCode())
	}

	probe := DomainProbe{}
	for _, event := range body.Events {
		if event.Action == "expiration" {
			expires := event.Date
			probe.ExpiresAt = &expires
			break
		}
	}
	probe.Registrar = extractRegistrar(body)

	return probe, nil
}

// extractRegistrar pulls the registrar entity's display name out of its
// jCard. The jCard format nests ["fn", {}, "text", "<name>"] entries inside
// ["vcard", [...]]; anything malformed reads as no registrar.
func extractRegistrar(body rdapResponse) string {
	for _, entity := range body.Entities {
		registrar := false
		for _, role := range entity.Roles {
			if role == "registrar" {
				registrar = true
				break
			}
		}
		if !registrar || len(entity.VCardArray) < 2 {
			continue
		}

		properties, ok := entity.VCardArray[1].([]any)
		if !ok {
			continue
		}
		for _, raw := range properties {
			property, ok := raw.([]any)
			if !ok || len(property) < 4 {
				continue
			}
			if name, _ := property[0].(string); name != "fn" {
				continue
			}
			if value, ok := property[3].(string); ok {
				return value
			}
		}
	}

	return ""
}
