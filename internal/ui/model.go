// Package ui renders the interactive payment form: a terminal view bound to
// the merged field sequence of a template, with generation and save actions.
//
// The form is descriptor-driven: it consumes the ordered FieldSpec list the
// core exposes and maps fixed fields to read-only rows, required fields to
// validated inputs and amount-typed fields to a compound currency+value
// control. All template and payload semantics stay in the core packages; the
// form only collects values and reports outcomes.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrymomot/payqr/core/payload"
	"github.com/dmitrymomot/payqr/core/session"
	"github.com/dmitrymomot/payqr/core/template"
	"github.com/dmitrymomot/payqr/pkg/qrcode"
)

// row binds one merged field to its form control. Fixed fields have no
// input and render read-only; amount fields keep the currency prefix apart
// from the editable numeric input.
type row struct {
	field    template.FieldSpec
	currency string // amount rows only
	input    textinput.Model
}

// Model is the Bubble Tea model for the payment form.
type Model struct {
	sess    *session.Session
	cfg     *template.GlobalConfig
	builder *payload.Builder

	rows  []row
	focus int // index into editable rows, -1 when prompting

	// Save-as prompt shown when edits to a protected template need a new name.
	prompting bool
	prompt    textinput.Model

	outPath string
	size    int
	level   qrcode.Level

	status string
	err    error
}

// NewModel builds the form for an editing session. The merged field order
// defines the row order; outPath, size and level configure generation.
func NewModel(sess *session.Session, cfg *template.GlobalConfig, outPath string, size int, level qrcode.Level) Model {
	merged := payload.Merge(sess.Document(), cfg)

	rows := make([]row, 0, len(merged))
	for _, f := range merged {
		r := row{field: f}
		if !f.Fixed {
			value := f.Default
			if f.Type == template.TypeAmount {
				if code, amount, err := payload.SplitAmount(value); err == nil {
					r.currency, value = code, amount
				}
			}
			in := textinput.New()
			in.SetValue(value)
			in.CharLimit = 140
			in.Prompt = ""
			r.input = in
		}
		rows = append(rows, r)
	}

	prompt := textinput.New()
	prompt.Placeholder = "new template name"
	prompt.CharLimit = 60
	prompt.Prompt = "> "

	m := Model{
		sess:    sess,
		cfg:     cfg,
		builder: payload.FromConfig(cfg),
		rows:    rows,
		prompt:  prompt,
		outPath: outPath,
		size:    size,
		level:   level,
	}
	m.focusRow(m.firstEditable())
	return m
}

// Init starts cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Err returns the last form error, if any. Exposed for the CLI exit code.
func (m Model) Err() error {
	return m.err
}

func (m *Model) firstEditable() int {
	for i := range m.rows {
		if !m.rows[i].field.Fixed {
			return i
		}
	}
	return -1
}

func (m *Model) focusRow(idx int) {
	for i := range m.rows {
		if m.rows[i].field.Fixed {
			continue
		}
		if i == idx {
			m.rows[i].input.Focus()
		} else {
			m.rows[i].input.Blur()
		}
	}
	m.focus = idx
}

// nextEditable returns the next non-fixed row index in direction dir,
// wrapping around.
func (m *Model) nextEditable(dir int) int {
	if m.focus < 0 {
		return m.firstEditable()
	}
	n := len(m.rows)
	for step := 1; step <= n; step++ {
		i := (m.focus + dir*step + 2*n) % n
		if !m.rows[i].field.Fixed {
			return i
		}
	}
	return -1
}

// values collects the current form values keyed by field key, recombining
// amount rows into currency+amount form.
func (m *Model) values() map[string]string {
	out := make(map[string]string, len(m.rows))
	for i := range m.rows {
		r := &m.rows[i]
		if r.field.Fixed {
			out[r.field.Key] = r.field.Default
			continue
		}
		value := strings.TrimSpace(r.input.Value())
		if r.field.Type == template.TypeAmount && value != "" {
			value = r.currency + value
		}
		out[r.field.Key] = value
	}
	return out
}
