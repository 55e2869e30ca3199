package tui

import (
	"time"

	"github.com/avetrov/agencydesk/models"
)

type authDoneMsg struct{}

type authFailedMsg struct {
	err error
}

type biometricTriedMsg struct {
	unlocked bool
	err      error
}

type pinFlashDoneMsg struct{}

type lockoutTickMsg struct {
	now time.Time
}

type listLoadedMsg struct {
	items   []models.Credential
	offline bool
	err     error
}

type revealDoneMsg struct {
	item models.RevealedCredential
	err  error
}

type credentialDeletedMsg struct {
	err error
}

type pinSavedMsg struct {
	settings *models.VaultSettings
	err      error
}

type protectionDisabledMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
