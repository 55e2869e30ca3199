package tui

import (
	"fmt"
	"strings"

	"github.com/avetrov/agencydesk/models"
)

type detailModel struct {
	item     models.RevealedCredential
	fieldIdx int
	status   string
}

// copyValue picks what "c" puts on the clipboard: the opaque value for
// single secrets, the highlighted field's value for multi-field ones.
func (m detailModel) copyValue() (string, bool) {
	switch m.item.Value.Kind {
	case models.SecretKindFields:
		if m.fieldIdx < 0 || m.fieldIdx >= len(m.item.Value.Fields) {
			return "", false
		}
		v := m.item.Value.Fields[m.fieldIdx].Value
		return v, v != ""
	default:
		return m.item.Value.Single, m.item.Value.Single != ""
	}
}

func (m detailModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  [%s]\n", m.item.Name, credentialTypeName(m.item.Type)))
	b.WriteString(fmt.Sprintf("Клиент: %s\n\n", valueOrDash(m.item.ClientName)))

	switch m.item.Value.Kind {
	case models.SecretKindFields:
		for i, field := range m.item.Value.Fields {
			cursor := "  "
			if i == m.fieldIdx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-20s %s\n", cursor, field.Key+":", field.Value))
		}
	default:
		b.WriteString(m.item.Value.Single)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("ЗАПИСЬ", strings.TrimRight(b.String(), "\n"),
		"c: копировать │ ↑/↓: выбор поля │ esc: назад")
}
