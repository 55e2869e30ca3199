// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package service

import (
	"context"
	"fmt"

	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/models"
)

// clientService is the concrete implementation of ClientService.
type clientService struct {
	clients store.ClientRepository
	logger  *logger.Logger
}

// NewClientService constructs a ClientService.
func NewClientService(clients store.ClientRepository, logger *logger.Logger) ClientService {
	return &clientService{
		clients: clients,
		logger:  logger,
	}
}

// CreateClient persists a new agency client. An empty status defaults to
// active.
func (c *clientService) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	if client.Company == "" {
		return models.Client{}, ErrInvalidDataProvided
	}
	if client.Status == "" {
		client.Status = models.ClientStatusActive
	}
	if !client.Status.Valid() {
		return models.Client{}, ErrInvalidDataProvided
	}

	created, err := c.clients.CreateClient(ctx, client)
	if err != nil {
		return models.Client{}, fmt.Errorf("client creation ended with error: %w", err)
	}

	return created, nil
}

// GetClient returns one agency client.
func (c *clientService) GetClient(ctx context.Context, clientID int64) (models.Client, error) {
	client, err := c.clients.GetClient(ctx, clientID)
	if err != nil {
		return models.Client{}, fmt.Errorf("client lookup ended with error: %w", err)
	}

	return client, nil
}

// ListClients returns clients, optionally narrowed by status.
func (c *clientService) ListClients(ctx context.Context, status models.ClientStatus) ([]models.Client, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidDataProvided
	}

	clients, err := c.clients.ListClients(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("client list ended with error: %w", err)
	}

	return clients, nil
}

// UpdateClient rewrites an agency client.
func (c *clientService) UpdateClient(ctx context.Context, client models.Client) (models.Client, error) {
	if client.Company == "" || !client.Status.Valid() {
		return models.Client{}, ErrInvalidDataProvided
	}

	updated, err := c.clients.UpdateClient(ctx, client)
	if err != nil {
		return models.Client{}, fmt.Errorf("client update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteClient removes an agency client. Credentials, domains and projects
// linked to it stay behind unscoped.
func (c *clientService) DeleteClient(ctx context.Context, clientID int64) error {
	if err := c.clients.DeleteClient(ctx, clientID); err != nil {
		return fmt.Errorf("client delete ended with error: %w", err)
	}

	return nil
}
