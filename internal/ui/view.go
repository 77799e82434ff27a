package ui

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/payqr/core/template"
)

// View renders the form: one row per merged field, fixed fields read-only,
// amount fields with their currency prefix, then status and key help.
func (m Model) View() string {
	var b strings.Builder

	doc := m.sess.Document()
	title := fmt.Sprintf(" %s ", doc.Name)
	if m.sess.Dirty() {
		title = fmt.Sprintf(" %s ● modified ", doc.Name)
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")

	for i := range m.rows {
		r := &m.rows[i]
		label := labelStyle.Render(fmt.Sprintf("%s (%s)", r.field.Label, r.field.Key))
		b.WriteString(label)

		switch {
		case r.field.Fixed:
			b.WriteString(fixedValueStyle.Render(r.field.Default))
		case r.field.Type == template.TypeAmount:
			b.WriteString(fixedValueStyle.Render(r.currency + " "))
			b.WriteString(r.input.View())
		default:
			b.WriteString(r.input.View())
		}
		b.WriteString("\n")
	}

	if m.prompting {
		b.WriteString("\n")
		b.WriteString(statusStyle("editing a protected template; enter a new name:"))
		b.WriteString("\n")
		b.WriteString(m.prompt.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errorStyle(m.err.Error()))
	case m.status != "":
		b.WriteString(statusStyle(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle("tab/↑↓ move · ctrl+g generate · ctrl+s save · esc quit"))
	b.WriteString("\n")

	return b.String()
}
