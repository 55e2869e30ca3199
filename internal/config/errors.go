// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or issuer).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
