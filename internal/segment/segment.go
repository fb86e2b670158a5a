// Package segment implements one numeric editing cell of a date/time editor.
//
// A Segment holds a bounded digit buffer and an overwrite flag. Digits either
// replace the buffer (overwrite mode) or accumulate into it; once an entry is
// complete or unambiguous the value is committed and focus advances to the
// next segment of its group.
package segment

import (
	"strconv"
	"strings"

	"datefield-cli/internal/focusgroup"
)

// Config describes a segment at mount time.
type Config struct {
	Placeholder string
	// MaxLength is the buffer capacity: 2 for day/month/hour/minute, 4 for year.
	MaxLength int
	MaxValue  int
	// Value is the externally authoritative value.
	Value string
	// OnChange receives every committed buffer.
	OnChange func(string)

	Disabled bool
	ReadOnly bool

	// Group and Position register the segment for navigation. A nil Group
	// makes every navigation request a no-op.
	Group    *focusgroup.Group
	Position focusgroup.Position
}

type Segment struct {
	placeholder string
	maxLength   int
	maxValue    int
	onChange    func(string)
	disabled    bool
	readOnly    bool
	group       *focusgroup.Group

	value     string
	buffer    string
	overwrite bool
	focused   bool
	resetKey  int
	closed    bool
}

func New(cfg Config) *Segment {
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = 2
	}
	s := &Segment{
		placeholder: cfg.Placeholder,
		maxLength:   cfg.MaxLength,
		maxValue:    cfg.MaxValue,
		onChange:    cfg.OnChange,
		disabled:    cfg.Disabled,
		readOnly:    cfg.ReadOnly,
		group:       cfg.Group,
		overwrite:   true,
	}
	s.value = s.sanitize(cfg.Value)
	s.buffer = s.value
	if s.group != nil {
		s.group.Register(s, cfg.Position)
	}
	return s
}

// Close unmounts the segment and deregisters it from its group.
func (s *Segment) Close() {
	if s.closed {
		return
	}
	if s.group != nil {
		s.group.Unregister(s)
	}
	s.closed = true
	s.focused = false
}

func (s *Segment) Alive() bool { return !s.closed }

// Complete reports whether the display holds a complete numeral. A year is
// complete only with all four digits; other segments once non-empty.
func (s *Segment) Complete() bool {
	if s.buffer == "" {
		return false
	}
	if s.maxLength > 2 {
		return len(s.buffer) == s.maxLength
	}
	return true
}

// SetFocused is driven by the group. Both gaining and losing focus re-arm
// overwrite mode; losing focus also discards display-only state.
func (s *Segment) SetFocused(focused bool) {
	if s.closed {
		return
	}
	s.overwrite = true
	s.focused = focused
	if !focused {
		s.buffer = s.value
	}
}

// Focus asks the group to focus this segment.
func (s *Segment) Focus() {
	if s.group != nil {
		s.group.Focus(s)
		return
	}
	s.SetFocused(true)
}

func (s *Segment) Focused() bool { return s.focused }

// Overwrite reports whether the next digit replaces the buffer.
func (s *Segment) Overwrite() bool { return s.overwrite }

// Buffer returns the raw, unpadded digits currently displayed.
func (s *Segment) Buffer() string { return s.buffer }

// Value returns the externally authoritative value.
func (s *Segment) Value() string { return s.value }

func (s *Segment) MaxValue() int { return s.maxValue }

func (s *Segment) MaxLength() int { return s.maxLength }

// Placeholder returns the text shown while the buffer is empty.
func (s *Segment) Placeholder() string { return s.placeholder }

// Display renders the buffer zero-padded to MaxLength, or the placeholder
// when empty.
func (s *Segment) Display() string {
	if s.buffer == "" {
		return s.placeholder
	}
	return pad(s.buffer, s.maxLength)
}

// Empty reports whether Display shows the placeholder.
func (s *Segment) Empty() bool { return s.buffer == "" }

// SetValue pushes the authoritative value. The display buffer follows only
// while the segment is not focused, so an in-progress entry is never clobbered.
func (s *Segment) SetValue(v string) {
	s.value = s.sanitize(v)
	if !s.focused {
		s.buffer = s.value
	}
}

func (s *Segment) SetMaxValue(n int) { s.maxValue = n }

func (s *Segment) SetDisabled(disabled bool) { s.disabled = disabled }

func (s *Segment) SetReadOnly(readOnly bool) { s.readOnly = readOnly }

// Reset clears the buffer whenever key differs from the last seen key,
// regardless of pending edits. Nothing is committed.
func (s *Segment) Reset(key int) {
	if key == s.resetKey {
		return
	}
	s.resetKey = key
	s.value = ""
	s.buffer = ""
	s.overwrite = true
}

// HandleKey runs the key state machine. It reports whether the key was
// consumed; Tab and Shift+Tab are left for the host to move focus.
func (s *Segment) HandleKey(k Key) bool {
	if s.closed {
		return false
	}
	if s.disabled || s.readOnly {
		// Suppress editing; focus traversal still belongs to the host.
		return k.Type != KeyTab && k.Type != KeyShiftTab
	}

	if d, ok := k.Digit(); ok {
		s.typeDigit(d)
		return true
	}

	switch k.Type {
	case KeyUp:
		s.step(1)
	case KeyDown:
		s.step(-1)
	case KeyBackspace:
		s.overwrite = false
		if s.buffer == "" {
			s.navigate(-1)
			return true
		}
		s.buffer = s.buffer[:len(s.buffer)-1]
		s.commit()
	case KeyDelete:
		s.buffer = ""
		s.overwrite = true
		s.commit()
	case KeyLeft:
		s.navigate(-1)
	case KeyRight:
		s.navigate(1)
	case KeyTab, KeyShiftTab:
		s.overwrite = true
		return false
	}
	// Everything else is swallowed; no text is ever inserted directly.
	return true
}

// InsertText is the raw input filter. Text containing anything but ASCII
// numerals is rejected without touching state; accepted text is typed one
// digit at a time. Typing stops once focus advances away from the segment.
func (s *Segment) InsertText(text string) bool {
	if s.disabled || s.readOnly || s.closed || !Numeric(text) {
		return false
	}
	for _, r := range text {
		if s.group != nil && !s.focused {
			break
		}
		s.typeDigit(int(r - '0'))
	}
	return true
}

func (s *Segment) typeDigit(d int) {
	digit := strconv.Itoa(d)

	if s.overwrite {
		s.overwrite = false
		s.buffer = digit
		s.commit()
		if d*10 > s.maxValue {
			s.navigate(1)
		}
		return
	}

	proposed := s.buffer + digit
	if len(proposed) > s.maxLength {
		s.restart(digit)
		return
	}
	n, _ := strconv.Atoi(proposed)

	if s.maxLength == 2 {
		if n > s.maxValue || (len(proposed) == 1 && n*10 > s.maxValue) {
			s.restart(digit)
			return
		}
		s.buffer = proposed
		s.commit()
		if len(proposed) == s.maxLength {
			s.navigate(1)
		}
		return
	}

	if n > s.maxValue {
		s.restart(digit)
		return
	}
	s.buffer = proposed
	s.commit()
	if len(proposed) == s.maxLength {
		s.navigate(1)
	}
}

// restart begins a fresh single-digit entry, commits it and advances.
func (s *Segment) restart(digit string) {
	s.buffer = digit
	s.commit()
	s.navigate(1)
}

func (s *Segment) step(delta int) {
	n, err := strconv.Atoi(s.buffer)
	if err != nil {
		n = 0
	}
	n += delta
	if n < 0 {
		n = 0
	}
	if n > s.maxValue {
		n = s.maxValue
	}
	s.buffer = pad(strconv.Itoa(n), s.maxLength)
	s.commit()
}

func (s *Segment) commit() {
	if s.onChange != nil {
		s.onChange(s.buffer)
	}
}

func (s *Segment) navigate(dir int) {
	if s.group == nil {
		return
	}
	s.group.MoveFocus(s, dir)
}

// sanitize keeps only the leading numerals of v. A value longer than
// MaxLength cannot be shown faithfully, so the segment is left empty.
func (s *Segment) sanitize(v string) string {
	v = strings.TrimSpace(v)
	end := 0
	for end < len(v) && isNumeral(rune(v[end])) {
		end++
	}
	v = v[:end]
	if len(v) > s.maxLength {
		return ""
	}
	return v
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
