package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrymomot/payqr/core/session"
	"github.com/dmitrymomot/payqr/core/template"
	"github.com/dmitrymomot/payqr/pkg/qrcode"
)

func fieldsOf(rows []row) []template.FieldSpec {
	fields := make([]template.FieldSpec, len(rows))
	for i, r := range rows {
		fields[i] = r.field
	}
	return fields
}

// Update handles key events: navigation between editable rows, the save-as
// prompt for protected templates, and the generate/save actions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	if m.prompting {
		return m.updatePrompt(keyMsg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down", "enter":
		m.focusRow(m.nextEditable(1))
		return m, nil

	case "shift+tab", "up":
		m.focusRow(m.nextEditable(-1))
		return m, nil

	case "ctrl+g":
		m.generate()
		return m, nil

	case "ctrl+s":
		m.save("")
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards the message to the focused input and records the
// edit on the session so dirty tracking reflects the form state.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus < 0 || m.focus >= len(m.rows) {
		return m, nil
	}

	r := &m.rows[m.focus]
	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)

	value := r.input.Value()
	if r.field.Type == template.TypeAmount && value != "" {
		value = r.currency + value
	}
	// Fixed fields never reach here; SetField rejects them anyway.
	_ = m.sess.SetField(r.field.Key, value)

	return m, cmd
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompting = false
		m.focusRow(m.firstEditable())
		return m, nil

	case "enter":
		name := m.prompt.Value()
		m.prompting = false
		m.focusRow(m.firstEditable())
		m.save(name)
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// generate builds the payload from the current form values and writes the QR
// image. Edits are auto-saved afterwards, prompting for a new name when the
// session guards a protected template.
func (m *Model) generate() {
	m.status, m.err = "", nil

	out, err := m.builder.Build(fieldsOf(m.rows), m.values())
	if err != nil {
		m.err = err
		return
	}

	matrix, err := qrcode.Encode(out, m.level)
	if err != nil {
		m.err = err
		return
	}
	img, err := qrcode.Render(matrix, m.size)
	if err != nil {
		m.err = err
		return
	}
	if err := qrcode.WriteFile(img, m.outPath); err != nil {
		m.err = err
		return
	}

	m.status = fmt.Sprintf("QR saved to %s", m.outPath)
	if m.sess.Dirty() {
		m.save("")
	}
}

// save persists session edits. A protected template switches the form into
// the save-as prompt instead of failing outright.
func (m *Model) save(id string) {
	if !m.sess.Dirty() {
		return
	}

	if err := m.sess.Save(id); err != nil {
		if errors.Is(err, session.ErrIdentifierRequired) {
			m.prompting = true
			m.prompt.SetValue("")
			m.prompt.Focus()
			m.focus = -1
			return
		}
		m.err = err
		return
	}

	m.status = fmt.Sprintf("template %q saved", m.sess.Document().Name)
}
