package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/avetrov/agencydesk/models"
)

// pinFormModel is the double-entry PIN set form: the new PIN must be typed
// twice and both entries must match before anything is sent to the server.
type pinFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newPINFormModel() pinFormModel {
	entry := textinput.New()
	entry.Placeholder = "новый PIN-код"
	entry.CharLimit = models.MaxPINLength
	entry.Width = 20
	entry.EchoMode = textinput.EchoPassword
	entry.EchoCharacter = '●'
	entry.Validate = digitsOnly
	entry.Focus()

	confirm := textinput.New()
	confirm.Placeholder = "повторите PIN-код"
	confirm.CharLimit = models.MaxPINLength
	confirm.Width = 20
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '●'
	confirm.Validate = digitsOnly

	return pinFormModel{inputs: []textinput.Model{entry, confirm}}
}

func digitsOnly(v string) error {
	for _, r := range v {
		if r < '0' || r > '9' {
			return errNotADigit
		}
	}
	return nil
}

func (m pinFormModel) View() string {
	out := "PIN-код (от 4 до 6 цифр):\n" + m.inputs[0].View() + "\n\n"
	out += "Повтор PIN-кода:\n" + m.inputs[1].View() + "\n"
	if m.submitting {
		out += "\nСохранение..."
	}
	return renderPage("НОВЫЙ PIN-КОД", out, "enter: сохранить │ tab: след. поле │ esc: отмена")
}
