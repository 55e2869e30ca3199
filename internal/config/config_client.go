// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the agencydesk server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientCache contains local metadata cache settings for the TUI client.
type ClientCache struct {
	// Path is the SQLite file backing the credential metadata cache.
	// Empty disables caching.
	Path string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Cache contains the local metadata cache settings.
	Cache ClientCache
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		buildClient()
	if err != nil {
		return nil, fmt.Errorf("error building client config: %w", err)
	}

	return cfg, nil
}

// buildClient merges the collected sources like build, but maps the result
// into the client view and applies client validation rules. The server-side
// validation is skipped: the client has no listen address or token keys.
func (b *configBuilder) buildClient() (*ClientConfig, error) {
	merged, err := b.merge()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    merged.Adapter.HTTPAddress,
			RequestTimeout: merged.Adapter.RequestTimeout,
		},
		Cache: ClientCache{
			Path: merged.Storage.Cache.Path,
		},
	}

	return clientCfg, clientCfg.validate()
}
