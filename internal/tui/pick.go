package tui

import (
	"strings"

	"datefield-cli/internal/dateinput"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Outcome is what a finished single-date picker reports.
type Outcome struct {
	Result   dateinput.Result
	Canceled bool
}

type pickModel struct {
	form
	editor  *dateinput.Editor
	label   string
	outcome Outcome
}

func newPickModel(e *dateinput.Editor, label string) pickModel {
	text := func() string {
		if v := e.Value(); v.IsValid() {
			return FormatResult(v, e.Granularity())
		}
		return ""
	}
	return pickModel{
		form:   newForm(e, e.Group().Release, text),
		editor: e,
		label:  label,
	}
}

func (m pickModel) Init() tea.Cmd { return nil }

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil
	case tea.KeyMsg:
		switch m.handleKey(msg) {
		case actionCancel:
			m.outcome = Outcome{Result: m.editor.Value(), Canceled: true}
			return m, tea.Quit
		case actionSubmit:
			v := m.editor.Value()
			if v.Kind == dateinput.Invalid {
				m.status = "complete or clear the " + granularityNoun(m.editor.Granularity()) + " first"
				return m, nil
			}
			m.outcome = Outcome{Result: v}
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m pickModel) View() string {
	v := m.editor.Value()
	field := renderField(m.label, m.editor, m.styles, m.fieldWidth(), m.editor.Focused(), v.Kind == dateinput.Invalid && m.status != "")

	status := renderStatus(v, m.editor.Granularity(), m.styles)
	if m.status != "" {
		status = m.styles.invalid.Render(m.status)
	}
	footer := lipgloss.JoinHorizontal(lipgloss.Center, renderButton("Done", m.onDone, m.styles), "  ", status)

	return strings.Join([]string{field, footer, m.help.View(m.keys)}, "\n") + "\n"
}
