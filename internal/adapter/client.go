// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/avetrov/agencydesk/internal/config"
	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/models"
)

// VaultClient is the terminal application's gateway to the server API. It is
// safe for concurrent use; the captured bearer token is guarded by a mutex.
type VaultClient struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewVaultClient builds the client over the configured base address.
func NewVaultClient(cfg config.ClientAdapter, logger *logger.Logger) *VaultClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.HTTPAddress, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &VaultClient{
		client: client,
		logger: logger,
	}
}

// Register creates an account and captures the session token from the
// response.
func (c *VaultClient) Register(ctx context.Context, login, password string) error {
	resp, err := c.request(ctx).
		SetBody(models.User{Login: login, Password: password}).
		Post("/api/user/register")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}
	if err = statusError(resp); err != nil {
		return err
	}

	c.captureToken(resp)
	return nil
}

// Login authenticates and captures the session token from the response.
func (c *VaultClient) Login(ctx context.Context, login, password string) error {
	resp, err := c.request(ctx).
		SetBody(models.User{Login: login, Password: password}).
		Post("/api/user/login")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}
	if err = statusError(resp); err != nil {
		return err
	}

	c.captureToken(resp)
	return nil
}

// ListCredentials fetches credential metadata, optionally narrowed by a
// search substring. Values stay server-side.
func (c *VaultClient) ListCredentials(ctx context.Context, search string) ([]models.Credential, error) {
	var credentials []models.Credential
	req := c.request(ctx).SetResult(&credentials)
	if search != "" {
		req.SetQueryParam("search", search)
	}

	resp, err := req.Get("/api/vault/credentials")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}
	if err = statusError(resp); err != nil {
		return nil, err
	}

	return credentials, nil
}

// RevealCredential fetches one record's decrypted value.
func (c *VaultClient) RevealCredential(ctx context.Context, credentialID int64) (models.RevealedCredential, error) {
	var revealed models.RevealedCredential
	resp, err := c.request(ctx).
		SetResult(&revealed).
		Post("/api/vault/credentials/" + strconv.FormatInt(credentialID, 10) + "/reveal")
	if err != nil {
		return models.RevealedCredential{}, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}
	if err = statusError(resp); err != nil {
		return models.RevealedCredential{}, err
	}

	return revealed, nil
}

// Reset drops the captured bearer token. Used on logout so the next flow
// starts unauthenticated.
func (c *VaultClient) Reset() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// DeleteCredential removes one record from the vault.
func (c *VaultClient) DeleteCredential(ctx context.Context, credentialID int64) error {
	resp, err := c.request(ctx).
		Delete("/api/vault/credentials/" + strconv.FormatInt(credentialID, 10))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return statusError(resp)
}

// VaultSettings fetches the full protection settings, verifier material
// included, for local PIN checking.
func (c *VaultClient) VaultSettings(ctx context.Context) (*models.VaultSettings, error) {
	var settings models.VaultSettings
	resp, err := c.request(ctx).
		SetResult(&settings).
		Get("/api/vault/settings/verifier")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}
	if err = statusError(resp); err != nil {
		return nil, err
	}

	if !settings.PINEnabled {
		return nil, nil
	}
	return &settings, nil
}

// SetPIN runs the double-entry PIN set flow on the server and returns the
// refreshed settings.
func (c *VaultClient) SetPIN(ctx context.Context, pin, confirmation string) (*models.VaultSettings, error) {
	resp, err := c.request(ctx).
		SetBody(map[string]string{"pin": pin, "confirmation": confirmation}).
		Put("/api/vault/settings/pin")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}
	if err = statusError(resp); err != nil {
		return nil, err
	}

	return c.VaultSettings(ctx)
}

// DisableProtection removes the vault protection settings.
func (c *VaultClient) DisableProtection(ctx context.Context) error {
	resp, err := c.request(ctx).Delete("/api/vault/settings")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return statusError(resp)
}

// RecordUnlockFailure reports a failed local unlock attempt for the audit
// trail. Failures here are logged and swallowed: a dropped report must not
// block the lock screen.
func (c *VaultClient) RecordUnlockFailure(ctx context.Context, attempts int) {
	resp, err := c.request(ctx).
		SetBody(map[string]int{"attempts": attempts}).
		Post("/api/vault/unlock-failures")
	if err != nil {
		c.logger.Warn().Err(err).Msg("unlock failure report not delivered")
		return
	}
	if err = statusError(resp); err != nil {
		c.logger.Warn().Err(err).Msg("unlock failure report rejected")
	}
}

func (c *VaultClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)

	c.mu.RLock()
	if c.token != "" {
		req.SetHeader("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	return req
}

func (c *VaultClient) captureToken(resp *resty.Response) {
	header := resp.Header().Get("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
	if token == "" {
		return
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func statusError(resp *resty.Response) error {
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, strings.TrimSpace(string(resp.Body())))
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, strings.TrimSpace(string(resp.Body())))
	default:
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode(), resp.Request.URL)
	}
}

// BaseURL reports the configured server address, for display.
func (c *VaultClient) BaseURL() string {
	parsed, err := url.Parse(c.client.BaseURL)
	if err != nil {
		return c.client.BaseURL
	}
	return parsed.Host
}
