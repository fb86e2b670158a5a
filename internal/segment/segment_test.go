package segment

import (
	"testing"

	"datefield-cli/internal/focusgroup"
)

type harness struct {
	group   *focusgroup.Group
	prev    *Segment
	seg     *Segment
	next    *Segment
	commits []string
}

// newHarness mounts seg between two siblings so auto-advance and
// backspace-to-previous are observable.
func newHarness(t *testing.T, maxLength, maxValue int, value string) *harness {
	t.Helper()
	h := &harness{group: focusgroup.New()}
	h.prev = New(Config{MaxLength: 2, MaxValue: 99, Group: h.group, Position: focusgroup.Position{Index: 0}})
	h.seg = New(Config{
		Placeholder: "hh",
		MaxLength:   maxLength,
		MaxValue:    maxValue,
		Value:       value,
		OnChange:    func(v string) { h.commits = append(h.commits, v) },
		Group:       h.group,
		Position:    focusgroup.Position{Index: 1},
	})
	h.next = New(Config{MaxLength: 2, MaxValue: 99, Group: h.group, Position: focusgroup.Position{Index: 2}})
	h.seg.Focus()
	return h
}

func (h *harness) typeKeys(keys ...Key) {
	for _, k := range keys {
		if f, ok := h.group.Focused().(*Segment); ok && f == h.seg {
			h.seg.HandleKey(k)
		}
	}
}

func (h *harness) lastCommit() string {
	if len(h.commits) == 0 {
		return "<none>"
	}
	return h.commits[len(h.commits)-1]
}

func TestDigit_OverwriteAutoAdvancesWhenUnambiguous(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 2, 23, "")
	h.typeKeys(Rune('9'))

	if got := h.lastCommit(); got != "9" {
		t.Fatalf("commit: got %q want %q", got, "9")
	}
	if !h.next.Focused() {
		t.Fatalf("expected focus to advance after 9 (9*10 > 23)")
	}
}

func TestDigit_TwoDigitEntryAdvancesOnSecondDigit(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 2, 23, "")
	h.typeKeys(Rune('1'))
	if !h.seg.Focused() {
		t.Fatalf("expected focus to stay after first digit")
	}
	if got := h.lastCommit(); got != "1" {
		t.Fatalf("commit after 1: got %q", got)
	}

	h.typeKeys(Rune('2'))
	if got := h.lastCommit(); got != "12" {
		t.Fatalf("commit after 12: got %q", got)
	}
	if !h.next.Focused() {
		t.Fatalf("expected focus to advance after second digit")
	}
}

func TestDigit_OverflowRestartsWithNewDigit(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 2, 12, "")
	h.typeKeys(Rune('1'), Rune('3'))

	if got := h.lastCommit(); got != "3" {
		t.Fatalf("commit: got %q want %q", got, "3")
	}
	if !h.next.Focused() {
		t.Fatalf("expected focus to advance after out-of-range digit")
	}
}

func TestDigit_SingleDigitAfterBackspaceThatCannotGrowAdvances(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 2, 12, "1")
	// Backspace leaves accumulate mode with an empty buffer.
	h.typeKeys(Key{Type: KeyBackspace})
	if h.seg.Buffer() != "" || h.seg.Overwrite() {
		t.Fatalf("expected empty buffer in accumulate mode, got %q overwrite=%v", h.seg.Buffer(), h.seg.Overwrite())
	}
	h.typeKeys(Rune('5'))
	if got := h.lastCommit(); got != "5" {
		t.Fatalf("commit: got %q want %q", got, "5")
	}
	if !h.next.Focused() {
		t.Fatalf("expected advance since 5*10 > 12")
	}
}

func TestDigit_YearAccumulatesFourDigits(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 4, 9999, "")
	h.typeKeys(Rune('2'), Rune('0'), Rune('2'))
	if !h.seg.Focused() {
		t.Fatalf("expected focus to stay while year is partial")
	}
	if got := h.seg.Display(); got != "0202" {
		t.Fatalf("display: got %q want %q", got, "0202")
	}
	if h.seg.Complete() {
		t.Fatalf("partial year must not be complete")
	}
	h.typeKeys(Rune('5'))
	if got := h.lastCommit(); got != "2025" {
		t.Fatalf("commit: got %q want %q", got, "2025")
	}
	if !h.next.Focused() {
		t.Fatalf("expected advance after four digits")
	}
}

func TestDigit_YearSpillsOverPastMaxLength(t *testing.T) {
	t.Parallel()

	g := focusgroup.New()
	var commits []string
	year := New(Config{MaxLength: 4, MaxValue: 9999, Group: g, OnChange: func(v string) { commits = append(commits, v) }})
	year.Focus()
	for _, r := range "2025" {
		year.HandleKey(Rune(r))
	}
	// Last in group: auto-advance is a no-op, so focus stays and the next
	// digit spills over into a fresh entry.
	year.HandleKey(Rune('7'))
	if got := commits[len(commits)-1]; got != "7" {
		t.Fatalf("commit: got %q want %q", got, "7")
	}
	if year.Buffer() != "7" {
		t.Fatalf("buffer: got %q", year.Buffer())
	}
}

func TestArrowKeys_StepAndClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		key   KeyType
		want  string
	}{
		{name: "up", value: "05", key: KeyUp, want: "06"},
		{name: "down", value: "05", key: KeyDown, want: "04"},
		{name: "up clamps at max", value: "23", key: KeyUp, want: "23"},
		{name: "down clamps at zero", value: "00", key: KeyDown, want: "00"},
		{name: "up from empty", value: "", key: KeyUp, want: "01"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t, 2, 23, tt.value)
			h.typeKeys(Key{Type: tt.key})
			if got := h.lastCommit(); got != tt.want {
				t.Fatalf("commit: got %q want %q", got, tt.want)
			}
			if !h.seg.Focused() {
				t.Fatalf("arrow keys must not move focus")
			}
		})
	}
}

func TestBackspace_EmptyMovesToPreviousWithoutMutation(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 2, 31, "")
	h.prev.SetValue("12")
	h.typeKeys(Key{Type: KeyBackspace})

	if !h.prev.Focused() {
		t.Fatalf("expected focus on previous segment")
	}
	if len(h.commits) != 0 {
		t.Fatalf("expected no commit, got %v", h.commits)
	}
	if h.prev.Buffer() != "12" {
		t.Fatalf("previous buffer mutated: %q", h.prev.Buffer())
	}
}

func TestBackspace_FirstSegmentIsNoop(t *testing.T) {
	t.Parallel()

	g := focusgroup.New()
	day := New(Config{MaxLength: 2, MaxValue: 31, Group: g})
	day.Focus()
	day.HandleKey(Key{Type: KeyBackspace})
	if !day.Focused() {
		t.Fatalf("expected focus to stay on first segment")
	}
	if day.Buffer() != "" {
		t.Fatalf("buffer: got %q", day.Buffer())
	}
}

func TestBackspace_RemovesLastCharacter(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 2, 31, "")
	h.typeKeys(Rune('2'))
	h.typeKeys(Key{Type: KeyBackspace})
	if h.seg.Buffer() != "" {
		t.Fatalf("buffer: got %q", h.seg.Buffer())
	}
	if got := h.lastCommit(); got != "" {
		t.Fatalf("commit: got %q want empty", got)
	}
	if h.seg.Overwrite() {
		t.Fatalf("expected overwrite off after backspace")
	}
}

func TestDelete_EmptiesAndRearmsOverwrite(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 2, 31, "")
	h.typeKeys(Rune('1'), Key{Type: KeyDelete})
	if h.seg.Buffer() != "" || !h.seg.Overwrite() {
		t.Fatalf("got buffer=%q overwrite=%v", h.seg.Buffer(), h.seg.Overwrite())
	}
	if got := h.lastCommit(); got != "" {
		t.Fatalf("commit: got %q want empty", got)
	}
}

func TestLeftRight_NavigateWithoutMutation(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 2, 31, "07")
	h.typeKeys(Key{Type: KeyRight})
	if !h.next.Focused() {
		t.Fatalf("expected right to move focus forward")
	}
	h.seg.Focus()
	h.typeKeys(Key{Type: KeyLeft})
	if !h.prev.Focused() {
		t.Fatalf("expected left to move focus back")
	}
	if len(h.commits) != 0 || h.seg.Buffer() != "07" {
		t.Fatalf("expected no mutation, commits=%v buffer=%q", h.commits, h.seg.Buffer())
	}
}

func TestTab_RearmsOverwriteAndIsNotConsumed(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 2, 31, "")
	h.typeKeys(Rune('1'))
	if h.seg.Overwrite() {
		t.Fatalf("expected accumulate mode after first digit")
	}
	if h.seg.HandleKey(Key{Type: KeyTab}) {
		t.Fatalf("tab must be left to the host")
	}
	if !h.seg.Overwrite() {
		t.Fatalf("expected overwrite re-armed by tab")
	}
	if h.seg.Buffer() != "1" {
		t.Fatalf("tab must not change the buffer, got %q", h.seg.Buffer())
	}
}

func TestOtherKeysSuppressed(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 2, 31, "04")
	if !h.seg.HandleKey(Rune('x')) {
		t.Fatalf("expected non-numeral rune to be swallowed")
	}
	if !h.seg.HandleKey(Key{Type: KeyOther}) {
		t.Fatalf("expected other key to be swallowed")
	}
	if len(h.commits) != 0 || h.seg.Buffer() != "04" {
		t.Fatalf("expected no mutation, commits=%v buffer=%q", h.commits, h.seg.Buffer())
	}
}

func TestDisabledAndReadOnlySuppressEditing(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		cfg  Config
	}{
		{name: "disabled", cfg: Config{MaxLength: 2, MaxValue: 31, Value: "04", Disabled: true}},
		{name: "readonly", cfg: Config{MaxLength: 2, MaxValue: 31, Value: "04", ReadOnly: true}},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			commits := 0
			tc.cfg.OnChange = func(string) { commits++ }
			s := New(tc.cfg)
			s.Focus()
			s.HandleKey(Rune('9'))
			s.HandleKey(Key{Type: KeyUp})
			s.HandleKey(Key{Type: KeyDelete})
			if s.InsertText("12") {
				t.Fatalf("expected insert to be rejected")
			}
			if commits != 0 || s.Buffer() != "04" {
				t.Fatalf("expected no mutation, commits=%d buffer=%q", commits, s.Buffer())
			}
		})
	}
}

func TestInsertText_RejectsNonNumerals(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 2, 31, "")
	for _, in := range []string{"1a", "-1", "١", " 2", ""} {
		if h.seg.InsertText(in) {
			t.Fatalf("InsertText(%q): expected rejection", in)
		}
	}
	if len(h.commits) != 0 {
		t.Fatalf("expected no commits, got %v", h.commits)
	}
	if !h.seg.InsertText("2") {
		t.Fatalf("expected numeral insert to be accepted")
	}
	if got := h.lastCommit(); got != "2" {
		t.Fatalf("commit: got %q", got)
	}
}

func TestFocusBlur_ResetsOverwriteAndRevertsDisplay(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 2, 31, "")
	h.seg.SetValue("05")
	h.typeKeys(Rune('1'))
	h.seg.SetValue("01")
	if h.seg.Buffer() != "1" {
		t.Fatalf("focused buffer must not follow external value, got %q", h.seg.Buffer())
	}

	h.next.Focus()
	if h.seg.Display() != "01" {
		t.Fatalf("expected blur to revert to authoritative value, got %q", h.seg.Display())
	}
	if !h.seg.Overwrite() {
		t.Fatalf("expected overwrite re-armed on blur")
	}

	h.seg.Focus()
	if !h.seg.Overwrite() {
		t.Fatalf("expected overwrite on focus")
	}
}

func TestSetValue_UnfocusedFollows(t *testing.T) {
	t.Parallel()

	s := New(Config{MaxLength: 2, MaxValue: 31, Value: "03"})
	if s.Display() != "03" {
		t.Fatalf("display: got %q", s.Display())
	}
	s.SetValue("17")
	if s.Display() != "17" {
		t.Fatalf("display: got %q", s.Display())
	}
	s.SetValue("")
	if s.Display() != "" {
		t.Fatalf("expected empty placeholder, got %q", s.Display())
	}
}

func TestSetValue_OverlongValueLeavesSegmentEmpty(t *testing.T) {
	t.Parallel()

	s := New(Config{Placeholder: "yyyy", MaxLength: 4, MaxValue: 9999, Value: "12000"})
	if s.Value() != "" || s.Display() != "yyyy" {
		t.Fatalf("expected empty segment, value=%q display=%q", s.Value(), s.Display())
	}
	s.SetValue("2024")
	s.SetValue("20245")
	if s.Value() != "" || !s.Empty() {
		t.Fatalf("expected overlong push to empty the segment, value=%q", s.Value())
	}
}

func TestReset_ClearsRegardlessOfPendingEdit(t *testing.T) {
	t.Parallel()

	h := newHarness(t, 2, 31, "12")
	h.typeKeys(Rune('2'))
	h.seg.Reset(1)
	if h.seg.Buffer() != "" || h.seg.Value() != "" {
		t.Fatalf("expected cleared, buffer=%q value=%q", h.seg.Buffer(), h.seg.Value())
	}
	h.seg.SetValue("09")
	h.seg.Reset(1)
	if h.seg.Value() != "09" {
		t.Fatalf("same reset key must not clear again")
	}
}

func TestDisplay_PlaceholderAndPadding(t *testing.T) {
	t.Parallel()

	day := New(Config{Placeholder: "dd", MaxLength: 2, MaxValue: 31})
	if got := day.Display(); got != "dd" {
		t.Fatalf("display: got %q", got)
	}
	year := New(Config{Placeholder: "yyyy", MaxLength: 4, MaxValue: 9999, Value: "7"})
	if got := year.Display(); got != "0007" {
		t.Fatalf("display: got %q", got)
	}
}

func TestClose_Deregisters(t *testing.T) {
	t.Parallel()

	g := focusgroup.New()
	a := New(Config{MaxLength: 2, MaxValue: 31, Group: g, Position: focusgroup.Position{Index: 0}})
	b := New(Config{MaxLength: 2, MaxValue: 31, Group: g, Position: focusgroup.Position{Index: 1}})
	a.Focus()
	b.Close()
	a.HandleKey(Key{Type: KeyRight})
	if !a.Focused() {
		t.Fatalf("expected navigation towards closed segment to be a no-op")
	}
	if g.Len() != 1 {
		t.Fatalf("expected 1 live handle, got %d", g.Len())
	}
}
