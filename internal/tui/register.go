package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
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

	repeatInput := textinput.New()
	repeatInput.Placeholder = "повторите пароль"
	repeatInput.CharLimit = 256
	repeatInput.Width = 40
	repeatInput.EchoMode = textinput.EchoPassword
	repeatInput.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{loginInput, passwordInput, repeatInput}}
}

func (m registerModel) View() string {
	out := "Логин:\n" + m.inputs[0].View() + "\n\n"
	out += "Пароль:\n" + m.inputs[1].View() + "\n\n"
	out += "Повтор пароля:\n" + m.inputs[2].View() + "\n"
	if m.submitting {
		out += "\nРегистрация..."
	}
	return renderPage("РЕГИСТРАЦИЯ", out, "enter: зарегистрироваться │ tab: след. поле │ esc: назад")
}
