package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render("Удалить «" + m.message + "»?\n\ny: да   n: нет")
}

type disableConfirmModel struct{}

func (m disableConfirmModel) View() string {
	return overlayBoxStyle.Render("Отключить защиту хранилища?\nPIN-код будет удалён.\n\ny: да   n: нет")
}
