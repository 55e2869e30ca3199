// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avetrov/agencydesk/internal/adapter"
	"github.com/avetrov/agencydesk/internal/crypto"
	"github.com/avetrov/agencydesk/internal/logger"
	"github.com/avetrov/agencydesk/internal/store"
	"github.com/avetrov/agencydesk/internal/vault"
	"github.com/avetrov/agencydesk/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenLock
	screenList
	screenDetail
	screenSettings
	screenPINForm
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

// appModel is the TUI router: it keeps the active screen, routes messages
// to the per-screen update methods, and overlays errors and confirmations
// on top of whatever screen is showing.
type appModel struct {
	ctx    context.Context
	client *adapter.VaultClient
	cache  store.ClientCache
	logger *logger.Logger

	session *vault.Session
	gate    *vault.PINGate

	mode          appMode
	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	lock     lockModel
	list     listModel
	detail   detailModel
	settings settingsModel
	pinForm  pinFormModel

	err            error
	showError      bool
	errorOverlay   errorOverlayModel
	showConfirm    bool
	confirm        confirmModel
	pendingDelete  int64
	pendingDisable bool
	logout         bool
}

func newLoginAppModel(ctx context.Context, client *adapter.VaultClient, log *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		client:        client,
		logger:        log,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
	}
}

func newMainAppModel(ctx context.Context, client *adapter.VaultClient, cache store.ClientCache, log *logger.Logger, session *vault.Session, gate *vault.PINGate) appModel {
	m := appModel{
		ctx:           ctx,
		client:        client,
		cache:         cache,
		logger:        log,
		session:       session,
		gate:          gate,
		mode:          modeMain,
		currentScreen: screenList,
		list:          newListModel(),
	}
	if session.Locked() {
		m.currentScreen = screenLock
		m.lock = newLockModel(gate.Length())
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeLogin {
		return textinput.Blink
	}
	if m.currentScreen == screenLock {
		return m.cmdTryBiometrics()
	}
	return m.cmdLoadList()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDisable {
					m.pendingDisable = false
					return m, m.cmdDisableProtection()
				}
				if m.pendingDelete != 0 {
					id := m.pendingDelete
					m.pendingDelete = 0
					return m, m.cmdDeleteCredential(id)
				}
				return m, nil
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
				m.pendingDisable = false
			}
			return m, nil
		}
	case authDoneMsg:
		return m, tea.Quit
	case authFailedMsg:
		m.setSubmitting(false)
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	case biometricTriedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if msg.unlocked {
			m.currentScreen = screenList
			m.list.loading = true
			return m, m.cmdLoadList()
		}
		return m, nil
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.items = msg.items
		m.list.offline = msg.offline
		if m.list.idx >= len(m.list.items) {
			m.list.idx = len(m.list.items) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case revealDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.detail = detailModel{item: msg.item}
		m.currentScreen = screenDetail
		return m, nil
	case credentialDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadList()
	case pinSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.replaceGate(msg.settings)
		m.settings.status = "PIN-код сохранён"
		m.currentScreen = screenSettings
		return m, nil
	case protectionDisabledMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.replaceGate(nil)
		m.session.Initialize(nil)
		m.settings.status = "Защита отключена"
		m.currentScreen = screenSettings
		return m, nil
	case pinFlashDoneMsg:
		m.lock.flash = ""
		return m, nil
	case lockoutTickMsg:
		if until, locked := m.gate.LockedUntil(msg.now); locked {
			m.lock.lockedUntil = until
			m.lock.remaining = until.Sub(msg.now)
			return m, cmdLockoutTick()
		}
		m.lock.remaining = 0
		return m, nil
	case copiedMsg:
		m.detail.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenLock:
		return m.updateLock(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenPINForm:
		return m.updatePINForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenLock:
		body = m.lock.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenSettings:
		body = m.settings.View()
	case screenPINForm:
		body = m.pinForm.View()
	}

	if m.showConfirm {
		if m.pendingDisable {
			body += "\n\n" + disableConfirmModel{}.View()
		} else {
			body += "\n\n" + m.confirm.View()
		}
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.pinForm.submitting = v
}

// replaceGate swaps the PIN gate after the protection settings change, with
// a fresh lockout tracker. The session lock state is untouched: the user
// just proved control of the vault by changing its settings.
func (m *appModel) replaceGate(settings *models.VaultSettings) {
	m.gate = vault.NewPINGate(crypto.NewPINHasher(), vault.NewLockoutTracker(vault.DefaultLockoutPolicy), settings)
	m.settings = settingsModel{}
	if settings != nil && settings.PINEnabled {
		m.settings.pinEnabled = true
		m.settings.pinLength = settings.PINLength
	}
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.focus = focusNext(m.login.inputs, m.login.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focus = focusNext(m.login.inputs, m.login.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			login := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if login == "" || pass == "" {
				m.showErrorf("Логин и пароль обязательны")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(login, pass)
		}
		if keyMsg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = focusNext(m.register.inputs, m.register.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = focusNext(m.register.inputs, m.register.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			login := strings.TrimSpace(m.register.inputs[0].Value())
			pass := m.register.inputs[1].Value()
			repeat := m.register.inputs[2].Value()
			if login == "" || pass == "" {
				m.showErrorf("Логин и пароль обязательны")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Пароли не совпадают")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(login, pass)
		}
		if keyMsg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateLock(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case keyMsg.String() == "ctrl+c":
		return m, tea.Quit
	}

	now := time.Now()
	if m.lock.lockedOut(now) {
		return m, nil
	}

	s := keyMsg.String()
	switch {
	case s == "backspace":
		if len(m.lock.entered) > 0 {
			m.lock.entered = m.lock.entered[:len(m.lock.entered)-1]
		}
	case len(s) == 1 && s[0] >= '0' && s[0] <= '9' && m.lock.flash == "":
		m.lock.entered += s
		if len(m.lock.entered) == m.lock.length {
			return m.submitPIN(now)
		}
	}

	return m, nil
}

// submitPIN checks the accumulated entry against the gate the moment it
// reaches the configured length. No explicit confirm step exists on this
// screen.
func (m appModel) submitPIN(now time.Time) (tea.Model, tea.Cmd) {
	pin := m.lock.entered
	m.lock.entered = ""

	unlocked, err := m.gate.Submit(now, pin)
	if err != nil {
		if errors.Is(err, vault.ErrLockedOut) {
			if until, locked := m.gate.LockedUntil(now); locked {
				m.lock.lockedUntil = until
				m.lock.remaining = until.Sub(now)
				return m, cmdLockoutTick()
			}
		}
		m.showErrorf(humanizeError(err))
		return m, nil
	}

	if !unlocked {
		m.lock.failures++
		m.lock.flash = "Неверный PIN-код"
		cmds := []tea.Cmd{cmdPINFlash(), m.cmdReportUnlockFailure(m.lock.failures)}
		if until, locked := m.gate.LockedUntil(now); locked {
			m.lock.lockedUntil = until
			m.lock.remaining = until.Sub(now)
			cmds = append(cmds, cmdLockoutTick())
		}
		return m, tea.Batch(cmds...)
	}

	m.lock.failures = 0
	m.session.Unlock()
	m.currentScreen = screenList
	m.list.loading = true
	return m, m.cmdLoadList()
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		if m.list.offline {
			m.showErrorf("Значения недоступны в автономном режиме")
			return m, nil
		}
		return m, m.cmdReveal(item.ID)
	case key.Matches(keyMsg, keys.refresh):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		return m, m.cmdLoadList()
	case key.Matches(keyMsg, keys.delete):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = item.Name
		m.pendingDelete = item.ID
	case key.Matches(keyMsg, keys.settings):
		m.settings.idx = 0
		m.settings.status = ""
		m.currentScreen = screenSettings
	case key.Matches(keyMsg, keys.lock):
		if m.gate.Length() == 0 {
			m.showErrorf("PIN-код не настроен")
			return m, nil
		}
		m.session.Lock()
		m.lock = newLockModel(m.gate.Length())
		m.currentScreen = screenLock
		return m, m.cmdTryBiometrics()
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.up):
		if m.detail.fieldIdx > 0 {
			m.detail.fieldIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.detail.fieldIdx < len(m.detail.item.Value.Fields)-1 {
			m.detail.fieldIdx++
		}
	case key.Matches(keyMsg, keys.copy):
		text, ok := m.detail.copyValue()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(text)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.up):
		if m.settings.idx > 0 {
			m.settings.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.settings.idx < len(m.settings.menuItems())-1 {
			m.settings.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.settings.pinEnabled && m.settings.idx == 1 {
			m.showConfirm = true
			m.pendingDisable = true
			return m, nil
		}
		m.pinForm = newPINFormModel()
		m.currentScreen = screenPINForm
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updatePINForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenSettings
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.pinForm.focus = focusNext(m.pinForm.inputs, m.pinForm.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.pinForm.focus = focusNext(m.pinForm.inputs, m.pinForm.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			entry := m.pinForm.inputs[0].Value()
			confirm := m.pinForm.inputs[1].Value()
			if err := vault.ValidatePIN(entry); err != nil {
				m.showErrorf("PIN-код должен состоять из 4, 5 или 6 цифр")
				return m, nil
			}
			if entry != confirm {
				m.showErrorf("PIN-коды не совпадают")
				return m, nil
			}
			m.pinForm.submitting = true
			return m, m.cmdSetPIN(entry, confirm)
		}
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.pinForm.inputs[m.pinForm.focus], cmd = m.pinForm.inputs[m.pinForm.focus].Update(msg)
	return m, cmd
}

func focusNext(inputs []textinput.Model, focus, step int) int {
	inputs[focus].Blur()
	next := (focus + step + len(inputs)) % len(inputs)
	inputs[next].Focus()
	return next
}
