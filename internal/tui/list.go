package tui

import (
	"fmt"
	"strings"

	"github.com/avetrov/agencydesk/models"
)

type listModel struct {
	items   []models.Credential
	idx     int
	loading bool
	offline bool
}

func newListModel() listModel {
	return listModel{loading: true}
}

func (m listModel) current() (models.Credential, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Credential{}, false
	}
	return m.items[m.idx], true
}

func credentialTypeName(t models.CredentialType) string {
	switch t {
	case models.CredentialTypeAPIKey:
		return "API-ключ"
	case models.CredentialTypePassword:
		return "Пароль"
	case models.CredentialTypeSSHKey:
		return "SSH-ключ"
	case models.CredentialTypeToken:
		return "Токен"
	case models.CredentialTypeOther:
		return "Другое"
	default:
		return "Неизвестно"
	}
}

func (m listModel) View() string {
	var b strings.Builder

	if m.offline {
		b.WriteString("Автономный режим: показаны сохранённые данные\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.items) == 0:
		b.WriteString("Нет записей\n")
	default:
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			client := valueOrDash(item.ClientName)
			b.WriteString(fmt.Sprintf("%s%-30s %-12s %s\n",
				cursor, fitText(item.Name, 30), credentialTypeName(item.Type), fitText(client, 20)))
		}
	}

	return renderPage("ХРАНИЛИЩЕ ДОСТУПОВ", strings.TrimRight(b.String(), "\n"),
		"enter: открыть │ r: обновить │ d: удалить │ s: настройки │ L: заблокировать │ ctrl+l: выйти из аккаунта")
}
