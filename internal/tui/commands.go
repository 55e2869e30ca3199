// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) cmdLogin(login, password string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		if err := client.Login(ctx, login, password); err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{}
	}
}

// cmdRegister signs the new user in as a side effect: the server answers
// the register call with a bearer token and the adapter captures it.
func (m appModel) cmdRegister(login, password string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		if err := client.Register(ctx, login, password); err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{}
	}
}

func (m appModel) cmdTryBiometrics() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		unlocked, err := session.UnlockWithBiometrics(ctx)
		return biometricTriedMsg{unlocked: unlocked, err: err}
	}
}

// cmdLoadList fetches the credential list from the server, refreshing the
// local metadata cache on success and falling back to it when the server is
// unreachable.
func (m appModel) cmdLoadList() tea.Cmd {
	ctx, client, cache, log := m.ctx, m.client, m.cache, m.logger
	return func() tea.Msg {
		items, err := client.ListCredentials(ctx, "")
		if err != nil {
			if cache != nil {
				if cached, cacheErr := cache.ListCredentials(ctx); cacheErr == nil {
					return listLoadedMsg{items: cached, offline: true}
				}
			}
			return listLoadedMsg{err: err}
		}

		if cache != nil {
			if cacheErr := cache.ReplaceCredentials(ctx, items); cacheErr != nil {
				log.Warn().Err(cacheErr).Msg("credential cache refresh failed")
			}
		}

		return listLoadedMsg{items: items}
	}
}

func (m appModel) cmdReveal(credentialID int64) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		item, err := client.RevealCredential(ctx, credentialID)
		return revealDoneMsg{item: item, err: err}
	}
}

func (m appModel) cmdDeleteCredential(credentialID int64) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		return credentialDeletedMsg{err: client.DeleteCredential(ctx, credentialID)}
	}
}

func (m appModel) cmdSetPIN(pin, confirmation string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		settings, err := client.SetPIN(ctx, pin, confirmation)
		return pinSavedMsg{settings: settings, err: err}
	}
}

func (m appModel) cmdDisableProtection() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		return protectionDisabledMsg{err: client.DisableProtection(ctx)}
	}
}

// cmdReportUnlockFailure tells the server about a failed PIN attempt so the
// audit trail records it. Fire-and-forget: the lock screen never waits on it.
func (m appModel) cmdReportUnlockFailure(attempts int) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		client.RecordUnlockFailure(ctx, attempts)
		return nil
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return authFailedMsg{err: fmt.Errorf("копирование в буфер обмена: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdPINFlash() tea.Cmd {
	return tea.Tick(600*time.Millisecond, func(time.Time) tea.Msg {
		return pinFlashDoneMsg{}
	})
}

func cmdLockoutTick() tea.Cmd {
	return tea.Tick(time.Second, func(now time.Time) tea.Msg {
		return lockoutTickMsg{now: now}
	})
}
