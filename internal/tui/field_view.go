package tui

import (
	"strings"

	"datefield-cli/internal/dateinput"

	"github.com/charmbracelet/lipgloss"
)

const defaultFieldWidth = 28

func renderSegments(views []dateinput.SegmentView, st fieldStyles, disabled bool) string {
	var b strings.Builder
	for _, v := range views {
		if v.Separator != "" {
			b.WriteString(st.separator.Render(v.Separator))
		}
		switch {
		case disabled:
			b.WriteString(st.disabled.Render(v.Text))
		case v.Focused:
			b.WriteString(st.focused.Render(v.Text))
		case v.Placeholder:
			b.WriteString(st.placeholder.Render(v.Text))
		default:
			b.WriteString(st.segment.Render(v.Text))
		}
	}
	return b.String()
}

// renderField draws a label above a bordered segment row. The border tracks
// focus-within; invalid wins over focus so validation stays visible.
func renderField(label string, e *dateinput.Editor, st fieldStyles, width int, focused, invalid bool) string {
	if width <= 0 {
		width = defaultFieldWidth
	}
	row := renderFieldLine(width, renderSegments(e.Segments(), st, e.Disabled()))

	box := st.box
	switch {
	case invalid:
		box = st.boxInvalid
	case focused:
		box = st.boxFocused
	}

	parts := []string{}
	if strings.TrimSpace(label) != "" {
		parts = append(parts, st.label.Render(label))
	}
	parts = append(parts, box.Render(row))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// describeResult renders a one-line summary of a composed value.
func describeResult(r dateinput.Result, g dateinput.Granularity) string {
	switch r.Kind {
	case dateinput.Valid:
		return FormatResult(r, g)
	case dateinput.Invalid:
		return "invalid " + granularityNoun(g)
	default:
		return "empty"
	}
}

// FormatResult formats a Valid result for its granularity; other kinds
// render as their marker.
func FormatResult(r dateinput.Result, g dateinput.Granularity) string {
	if !r.IsValid() {
		return r.String()
	}
	switch g {
	case dateinput.GranularityTime:
		return r.Time.Format("15:04")
	case dateinput.GranularityDateTime:
		return r.Time.Format("2006-01-02 15:04")
	default:
		return r.Time.Format("2006-01-02")
	}
}

func granularityNoun(g dateinput.Granularity) string {
	switch g {
	case dateinput.GranularityTime:
		return "time"
	case dateinput.GranularityDateTime:
		return "date/time"
	default:
		return "date"
	}
}

func renderStatus(r dateinput.Result, g dateinput.Granularity, st fieldStyles) string {
	txt := describeResult(r, g)
	switch r.Kind {
	case dateinput.Valid:
		return st.valid.Render(txt)
	case dateinput.Invalid:
		return st.invalid.Render(txt)
	default:
		return styleMuted().Render(txt)
	}
}

func renderButton(label string, focused bool, st fieldStyles) string {
	if focused {
		return st.buttonFocus.Render(label)
	}
	return st.button.Render(label)
}
