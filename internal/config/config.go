// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for agencydesk.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the vault cipher key, token
	// parameters, PIN lockout tuning, and WebAuthn relying-party identity.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the TUI client's connection to the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// VaultCipherKey is the process-wide secret keying the vault cipher.
	// Its absence is a configuration error raised lazily on the first
	// encrypt/decrypt call, not at startup.
	// Env: APP_VAULT_CIPHER_KEY
	VaultCipherKey string `env:"VAULT_CIPHER_KEY"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT remains valid after issuance
	// (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PINFailureThreshold is the number of consecutive PIN mismatches inside
	// PINFailureWindow that triggers a lockout. Zero disables the lockout.
	// Env: APP_PIN_FAILURE_THRESHOLD
	PINFailureThreshold int `env:"PIN_FAILURE_THRESHOLD"`

	// PINFailureWindow is the sliding window over which PIN failures are
	// counted (e.g. "5m").
	// Env: APP_PIN_FAILURE_WINDOW
	PINFailureWindow time.Duration `env:"PIN_FAILURE_WINDOW"`

	// PINLockoutBase is the first lockout duration; consecutive lockouts
	// double it (e.g. "30s").
	// Env: APP_PIN_LOCKOUT_BASE
	PINLockoutBase time.Duration `env:"PIN_LOCKOUT_BASE"`

	// WebAuthnRPID is the relying-party identifier for platform
	// authenticator ceremonies (e.g. "desk.example.com").
	// Env: APP_WEBAUTHN_RP_ID
	WebAuthnRPID string `env:"WEBAUTHN_RP_ID"`

	// WebAuthnRPOrigin is the origin expected in ceremony responses
	// (e.g. "https://desk.example.com").
	// Env: APP_WEBAUTHN_RP_ORIGIN
	WebAuthnRPOrigin string `env:"WEBAUTHN_RP_ORIGIN"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the TUI client's local metadata cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string, opened through the pgx
	// stdlib driver.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds file-system settings for the client's local credential
// metadata cache. Only names and types are cached, never secret values.
type Cache struct {
	// Path is the SQLite file backing the cache. Empty disables caching.
	// Env: STORAGE_CACHE_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings for the client-side HTTP adapter.
type Adapter struct {
	// HTTPAddress is the base URL of the agencydesk server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// DomainRefreshInterval is how often the domain expiry worker re-probes
	// registrations via RDAP. Zero disables the worker.
	// Env: WORKERS_DOMAIN_REFRESH_INTERVAL
	DomainRefreshInterval time.Duration `env:"DOMAIN_REFRESH_INTERVAL"`

	// RDAPBaseURL is the RDAP bootstrap endpoint queried by the domain
	// worker (default https://rdap.org).
	// Env: WORKERS_RDAP_BASE_URL
	RDAPBaseURL string `env:"RDAP_BASE_URL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
