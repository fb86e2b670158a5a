package tui

import (
	"strings"
	"testing"
	"time"

	"datefield-cli/internal/dateinput"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKeys(s string) []tea.KeyMsg {
	out := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

func send(t *testing.T, m tea.Model, msgs ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func newTestPick(t *testing.T, cfg dateinput.Config) pickModel {
	t.Helper()
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	e, err := dateinput.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(e.Close)
	return newPickModel(e, "Due")
}

func TestPick_TypeThenSubmit(t *testing.T) {
	m := newTestPick(t, dateinput.Config{Locale: "en-US"})

	out, _ := send(t, m, runeKeys("12252024")...)
	out, cmd := send(t, out, tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Fatalf("expected quit on enter with a valid date")
	}
	pm := out.(pickModel)
	if pm.outcome.Canceled {
		t.Fatalf("expected submitted outcome")
	}
	want := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	if !pm.outcome.Result.IsValid() || !pm.outcome.Result.Time.Equal(want) {
		t.Fatalf("expected %v; got %v", want, pm.outcome.Result)
	}
}

func TestPick_SubmitInvalidKeepsRunning(t *testing.T) {
	m := newTestPick(t, dateinput.Config{Locale: "en-US"})

	out, _ := send(t, m, runeKeys("12")...)
	out, cmd := send(t, out, tea.KeyMsg{Type: tea.KeyEnter})
	if isQuit(cmd) {
		t.Fatalf("expected enter to be refused for a partial date")
	}
	pm := out.(pickModel)
	if pm.status == "" {
		t.Fatalf("expected a status message")
	}
	if !strings.Contains(pm.View(), pm.status) {
		t.Fatalf("expected status in view")
	}
}

func TestPick_SubmitEmptyIsAllowed(t *testing.T) {
	m := newTestPick(t, dateinput.Config{Locale: "en-US"})
	out, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Fatalf("expected quit")
	}
	if !out.(pickModel).outcome.Result.IsEmpty() {
		t.Fatalf("expected empty result")
	}
}

func TestPick_EscCancels(t *testing.T) {
	m := newTestPick(t, dateinput.Config{Locale: "en-US"})
	out, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Fatalf("expected quit")
	}
	if !out.(pickModel).outcome.Canceled {
		t.Fatalf("expected canceled outcome")
	}
}

func TestPick_TabPastLastSegmentFocusesDone(t *testing.T) {
	seed := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	m := newTestPick(t, dateinput.Config{Locale: "en-US", DefaultValue: &seed})

	// All segments are complete, so focus starts on the last one.
	out, _ := send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	pm := out.(pickModel)
	if !pm.onDone {
		t.Fatalf("expected Done to take focus")
	}
	if pm.editor.Focused() {
		t.Fatalf("expected editor to release focus")
	}

	out, _ = send(t, out, tea.KeyMsg{Type: tea.KeyShiftTab})
	pm = out.(pickModel)
	if pm.onDone || !pm.editor.Focused() {
		t.Fatalf("expected focus back in the editor")
	}
}

func TestPick_ClearEmptiesAndRefocuses(t *testing.T) {
	seed := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	m := newTestPick(t, dateinput.Config{Locale: "en-US", DefaultValue: &seed})

	out, _ := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	pm := out.(pickModel)
	if !pm.editor.Value().IsEmpty() {
		t.Fatalf("expected empty after clear; got %v", pm.editor.Value())
	}
	id, ok := pm.editor.FocusedID()
	if !ok || id != dateinput.SegmentMonth {
		t.Fatalf("expected month focused after clear; got %v %v", id, ok)
	}
}

func TestPick_HelpToggle(t *testing.T) {
	m := newTestPick(t, dateinput.Config{Locale: "en-US"})
	out, _ := send(t, m, runeKeys("?")...)
	if !out.(pickModel).help.ShowAll {
		t.Fatalf("expected full help")
	}
	out, _ = send(t, out, runeKeys("?")...)
	if out.(pickModel).help.ShowAll {
		t.Fatalf("expected short help")
	}
}

func TestPick_PasteGoesThroughInputFilter(t *testing.T) {
	m := newTestPick(t, dateinput.Config{Locale: "en-US"})
	out, _ := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("07"), Paste: true})
	pm := out.(pickModel)
	if got := pm.editor.Segment(dateinput.SegmentMonth).Value(); got != "07" {
		t.Fatalf("expected month 07; got %q", got)
	}

	out, _ = send(t, out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1a"), Paste: true})
	pm = out.(pickModel)
	if got := pm.editor.Segment(dateinput.SegmentDay).Value(); got != "" {
		t.Fatalf("expected non-numeric paste to be rejected; got day %q", got)
	}
}

func TestPick_ViewShowsPlaceholdersAndSeparators(t *testing.T) {
	m := newTestPick(t, dateinput.Config{Locale: "en-US"})
	v := m.View()
	for _, want := range []string{"Due", "mm", "dd", "yyyy", "/", "Done"} {
		if !strings.Contains(v, want) {
			t.Fatalf("expected %q in view:\n%s", want, v)
		}
	}
}

func TestFormatResult(t *testing.T) {
	ts := time.Date(2024, 2, 29, 9, 5, 0, 0, time.UTC)
	cases := []struct {
		g    dateinput.Granularity
		r    dateinput.Result
		want string
	}{
		{dateinput.GranularityDate, dateinput.ValidResult(ts), "2024-02-29"},
		{dateinput.GranularityTime, dateinput.ValidResult(ts), "09:05"},
		{dateinput.GranularityDateTime, dateinput.ValidResult(ts), "2024-02-29 09:05"},
		{dateinput.GranularityDate, dateinput.InvalidResult(), dateinput.InvalidResult().String()},
		{dateinput.GranularityDate, dateinput.EmptyResult(), dateinput.EmptyResult().String()},
	}
	for _, tc := range cases {
		if got := FormatResult(tc.r, tc.g); got != tc.want {
			t.Fatalf("FormatResult(%v, %s) = %q; want %q", tc.r, tc.g, got, tc.want)
		}
	}
}

func TestPick_CopyValue(t *testing.T) {
	var copied string
	prev := clipboardWrite
	clipboardWrite = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { clipboardWrite = prev })

	m := newTestPick(t, dateinput.Config{Locale: "en-US"})
	out, _ := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied != "" || out.(pickModel).status != "nothing to copy" {
		t.Fatalf("expected nothing copied for an empty field; got %q / %q", copied, out.(pickModel).status)
	}

	out, _ = send(t, out, runeKeys("12252024")...)
	out, _ = send(t, out, tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied == "" || !strings.Contains(out.(pickModel).status, "copied") {
		t.Fatalf("expected value copied; got %q / %q", copied, out.(pickModel).status)
	}
	if copied != FormatResult(out.(pickModel).editor.Value(), out.(pickModel).editor.Granularity()) {
		t.Fatalf("copied %q", copied)
	}
}
