// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package tui

import (
	"fmt"
	"strings"
	"time"
)

// lockModel is the PIN entry screen that gates the credential vault.
// Digits accumulate into a masked row and the entry submits on its own as
// soon as it reaches the configured PIN length; a wrong PIN flashes an error
// and clears the row. Repeated failures surface the gate's lockout deadline
// as a countdown.
type lockModel struct {
	entered     string
	length      int
	flash       string
	failures    int
	lockedUntil time.Time
	remaining   time.Duration
}

func newLockModel(length int) lockModel {
	return lockModel{length: length}
}

func (m lockModel) lockedOut(now time.Time) bool {
	return now.Before(m.lockedUntil)
}

func (m lockModel) View() string {
	var b strings.Builder

	b.WriteString("Хранилище заблокировано\n\n")
	b.WriteString("Введите PIN-код:\n\n")

	cells := make([]string, 0, m.length)
	for i := 0; i < m.length; i++ {
		if i < len(m.entered) {
			cells = append(cells, "●")
		} else {
			cells = append(cells, "○")
		}
	}
	b.WriteString(strings.Join(cells, " "))
	b.WriteString("\n")

	if m.flash != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.flash))
		b.WriteString("\n")
	}
	if m.remaining > 0 {
		b.WriteString(fmt.Sprintf("\nПовторите через %s\n", m.remaining.Round(time.Second)))
	}

	return renderPage("PIN-КОД", b.String(), "0-9: ввод │ backspace: стереть │ ctrl+l: сменить пользователя")
}
