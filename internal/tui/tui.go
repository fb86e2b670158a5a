package tui

import (
	"fmt"
	"io"
	"os"

	"datefield-cli/internal/dateinput"

	tea "github.com/charmbracelet/bubbletea"
)

// Options controls how a picker program runs.
type Options struct {
	Label     string
	FromLabel string
	ToLabel   string

	// AltScreen runs the picker full-screen.
	AltScreen bool
	// Theme is the configured light/dark/auto preference.
	Theme string

	// Input and Output default to stdin and stderr so stdout stays free for
	// the picked value.
	Input  io.Reader
	Output io.Writer
}

func (o Options) programOptions() []tea.ProgramOption {
	out := o.Output
	if out == nil {
		out = os.Stderr
	}
	opts := []tea.ProgramOption{tea.WithOutput(out)}
	if o.Input != nil {
		opts = append(opts, tea.WithInput(o.Input))
	}
	if o.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return opts
}

// RunPick runs an interactive single-value picker built from cfg.
func RunPick(cfg dateinput.Config, o Options) (Outcome, error) {
	applyColorProfilePreference()
	applyThemePreference(o.Theme)
	applyGlyphPreference()

	e, err := dateinput.New(cfg)
	if err != nil {
		return Outcome{}, err
	}
	defer e.Close()

	label := o.Label
	if label == "" {
		label = "Pick a " + granularityNoun(e.Granularity())
	}
	final, err := tea.NewProgram(newPickModel(e, label), o.programOptions()...).Run()
	if err != nil {
		return Outcome{}, err
	}
	m, ok := final.(pickModel)
	if !ok {
		return Outcome{}, fmt.Errorf("unexpected model %T", final)
	}
	return m.outcome, nil
}

// RunRange runs an interactive From/To picker built from cfg.
func RunRange(cfg dateinput.RangeConfig, o Options) (RangeOutcome, error) {
	applyColorProfilePreference()
	applyThemePreference(o.Theme)
	applyGlyphPreference()

	focus := &rangeFocus{}
	onFocus := cfg.OnFocusChange
	cfg.OnFocusChange = func(within bool) {
		focus.within = within
		if onFocus != nil {
			onFocus(within)
		}
	}

	r, err := dateinput.NewRange(cfg)
	if err != nil {
		return RangeOutcome{}, err
	}
	defer r.Close()

	fromLbl, toLbl := o.FromLabel, o.ToLabel
	if fromLbl == "" {
		fromLbl = "From"
	}
	if toLbl == "" {
		toLbl = "To"
	}
	final, err := tea.NewProgram(newRangeModel(r, focus, fromLbl, toLbl), o.programOptions()...).Run()
	if err != nil {
		return RangeOutcome{}, err
	}
	m, ok := final.(rangeModel)
	if !ok {
		return RangeOutcome{}, fmt.Errorf("unexpected model %T", final)
	}
	return m.outcome, nil
}
