package tui

import (
	"strings"

	"datefield-cli/internal/dateinput"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RangeOutcome is what a finished range picker reports.
type RangeOutcome struct {
	Result   dateinput.RangeResult
	Canceled bool
}

// rangeFocus is shared with the range's focus callback, which fires while
// the model is being copied through Update.
type rangeFocus struct {
	within bool
}

type rangeModel struct {
	form
	rng     *dateinput.Range
	focus   *rangeFocus
	fromLbl string
	toLbl   string
	outcome RangeOutcome
}

func newRangeModel(r *dateinput.Range, focus *rangeFocus, fromLabel, toLabel string) rangeModel {
	text := func() string {
		v := r.Value()
		if !v.From.IsValid() || !v.To.IsValid() {
			return ""
		}
		g := r.From.Granularity()
		return FormatResult(v.From, g) + "/" + FormatResult(v.To, g)
	}
	return rangeModel{
		form:    newForm(r, r.Release, text),
		rng:     r,
		focus:   focus,
		fromLbl: fromLabel,
		toLbl:   toLabel,
	}
}

func (m rangeModel) Init() tea.Cmd { return nil }

func (m rangeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil
	case tea.KeyMsg:
		switch m.handleKey(msg) {
		case actionCancel:
			m.outcome = RangeOutcome{Result: m.rng.Value(), Canceled: true}
			return m, tea.Quit
		case actionSubmit:
			v := m.rng.Value()
			if v.From.Kind == dateinput.Invalid || v.To.Kind == dateinput.Invalid {
				m.status = "complete or clear both ends first"
				return m, nil
			}
			if !v.Ordered() {
				m.status = "start is after end"
				return m, nil
			}
			m.outcome = RangeOutcome{Result: v}
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m rangeModel) View() string {
	v := m.rng.Value()
	g := m.rng.From.Granularity()
	invalid := !v.Ordered()
	w := m.fieldWidth()

	from := renderField(m.fromLbl, m.rng.From, m.styles, w, m.rng.From.Focused(), invalid)
	to := renderField(m.toLbl, m.rng.To, m.styles, w, m.rng.To.Focused(), invalid)
	fields := lipgloss.JoinHorizontal(lipgloss.Bottom, from, "  ", to)
	if m.focus != nil && m.focus.within {
		fields = lipgloss.NewStyle().BorderLeft(true).BorderStyle(lipgloss.ThickBorder()).BorderForeground(colorAccent).Render(fields)
	} else {
		fields = lipgloss.NewStyle().PaddingLeft(1).Render(fields)
	}

	status := renderStatus(v.From, g, m.styles) + styleMuted().Render(" "+glyphRangeArrow()+" ") + renderStatus(v.To, g, m.styles)
	switch {
	case m.status != "":
		status = m.styles.invalid.Render(m.status)
	case invalid:
		status = m.styles.invalid.Render("start is after end")
	}
	footer := lipgloss.JoinHorizontal(lipgloss.Center, renderButton("Done", m.onDone, m.styles), "  ", status)

	return strings.Join([]string{fields, footer, m.help.View(m.keys)}, "\n") + "\n"
}
