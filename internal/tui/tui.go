// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

// Package tui implements the terminal client: a Bubble Tea application that
// authenticates against the dashboard API, gates the credential vault behind
// the configured PIN, and renders the credential list and detail screens.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avetrov/agencydesk/internal/adapter"
	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/internal/vault"
)

// TUI owns the two interactive flows of the client: authentication and the
// vault main loop. Both run a full-screen Bubble Tea program and return when
// the user quits, logs out, or the flow completes.
type TUI struct {
	client *adapter.VaultClient
	cache  store.ClientCache
	logger *logger.Logger
}

// New wires the TUI over the server adapter and the local metadata cache.
func New(client *adapter.VaultClient, cache store.ClientCache, log *logger.Logger) *TUI {
	return &TUI{client: client, cache: cache, logger: log}
}

// LoginFlow runs the welcome/login/register screens until the adapter holds
// a valid token. Returns ErrUserQuit when the user leaves without signing in.
func (t *TUI) LoginFlow(ctx context.Context) error {
	model := newLoginAppModel(ctx, t.client, t.logger)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}

	return result.err
}

// MainLoop runs the vault screens for an authenticated user. session and
// gate carry the protection state derived from the user's security settings;
// a locked session puts the PIN screen in front of the credential list.
func (t *TUI) MainLoop(ctx context.Context, session *vault.Session, gate *vault.PINGate) (logout bool, err error) {
	model := newMainAppModel(ctx, t.client, t.cache, t.logger, session, gate)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.err != nil {
		return false, result.err
	}

	return result.logout, nil
}
