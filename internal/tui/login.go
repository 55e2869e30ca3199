// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// loginModel renders two text inputs (login and password) and submits them
// as an async sign-in command. The password input uses masked echo.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "логин"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "пароль"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{loginInput, passwordInput}}
}

func (m loginModel) View() string {
	out := "Логин:\n" + m.inputs[0].View() + "\n\n"
	out += "Пароль:\n" + m.inputs[1].View() + "\n"
	if m.submitting {
		out += "\nВход..."
	}
	return renderPage("ВХОД", out, "enter: войти │ tab: след. поле │ esc: назад")
}
