// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package tui

import (
	"fmt"
	"strings"
)

// settingsModel is the vault protection menu. Its items depend on the
// current state: an unprotected vault offers only the set-PIN action, a
// protected one offers change and disable.
type settingsModel struct {
	pinEnabled bool
	pinLength  int
	idx        int
	status     string
}

func (m settingsModel) menuItems() []string {
	if m.pinEnabled {
		return []string{"Изменить PIN-код", "Отключить защиту"}
	}
	return []string{"Установить PIN-код"}
}

func (m settingsModel) View() string {
	var b strings.Builder

	if m.pinEnabled {
		b.WriteString(fmt.Sprintf("Защита PIN-кодом: включена (%d цифр)\n\n", m.pinLength))
	} else {
		b.WriteString("Защита PIN-кодом: выключена\n\n")
	}

	for i, item := range m.menuItems() {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}

	return renderPage("НАСТРОЙКИ ЗАЩИТЫ", strings.TrimRight(b.String(), "\n"),
		"enter: выбрать │ ↑/↓: навигация │ esc: назад")
}
