package dateinput

import (
	"time"

	"datefield-cli/internal/focusgroup"
	"datefield-cli/internal/segment"
)

// RangeConfig configures a From/To pair sharing one focus domain.
type RangeConfig struct {
	Locale      string
	Granularity Granularity

	From        *time.Time
	To          *time.Time
	DefaultFrom *time.Time
	DefaultTo   *time.Time

	OnValueChange func(RangeResult)
	// OnFocusChange fires once when focus enters (true) or leaves (false)
	// the pair as a whole.
	OnFocusChange func(focused bool)

	Disabled bool
	ReadOnly bool
	Rules    Rules
	Locales  *LocaleTable
	Now      func() time.Time
	Location *time.Location
}

// RangeResult is the composed value of both ends.
type RangeResult struct {
	From Result `json:"from"`
	To   Result `json:"to"`
}

// Ordered is false only when both ends are valid and From is after To.
func (r RangeResult) Ordered() bool {
	if !r.From.IsValid() || !r.To.IsValid() {
		return true
	}
	return !r.From.Time.After(r.To.Time)
}

type Range struct {
	From *Editor
	To   *Editor

	group         *focusgroup.Group
	onValueChange func(RangeResult)
	onFocusChange func(bool)
	focused       bool
	quiet         bool
}

var _ Handle = (*Range)(nil)

func NewRange(cfg RangeConfig) (*Range, error) {
	r := &Range{
		onValueChange: cfg.OnValueChange,
		onFocusChange: cfg.OnFocusChange,
	}
	r.group = focusgroup.New(
		focusgroup.OnEnter(func() { r.setFocused(true) }),
		focusgroup.OnLeave(func() { r.setFocused(false) }),
	)

	base := Config{
		Locale:        cfg.Locale,
		Granularity:   cfg.Granularity,
		OnValueChange: func(Result) { r.emit() },
		Disabled:      cfg.Disabled,
		ReadOnly:      cfg.ReadOnly,
		Group:         r.group,
		Rules:         cfg.Rules,
		Locales:       cfg.Locales,
		Now:           cfg.Now,
		Location:      cfg.Location,
	}

	fromCfg := base
	fromCfg.Value, fromCfg.DefaultValue, fromCfg.Rank = cfg.From, cfg.DefaultFrom, 0
	from, err := New(fromCfg)
	if err != nil {
		return nil, err
	}

	toCfg := base
	toCfg.Value, toCfg.DefaultValue, toCfg.Rank = cfg.To, cfg.DefaultTo, 1
	to, err := New(toCfg)
	if err != nil {
		from.Close()
		return nil, err
	}

	r.From, r.To = from, to
	return r, nil
}

func (r *Range) setFocused(focused bool) {
	r.focused = focused
	if r.onFocusChange != nil {
		r.onFocusChange(focused)
	}
}

func (r *Range) emit() {
	if r.quiet || r.onValueChange == nil {
		return
	}
	r.onValueChange(r.Value())
}

func (r *Range) Value() RangeResult {
	return RangeResult{From: r.From.Value(), To: r.To.Value()}
}

// Focus focuses the first incomplete segment across both editors.
func (r *Range) Focus() {
	r.group.FocusFirstIncomplete()
}

// Clear empties both ends and reports once.
func (r *Range) Clear() {
	r.quiet = true
	r.From.Clear()
	r.To.Clear()
	r.quiet = false
	r.emit()
}

// SetValue pushes external values to both ends.
func (r *Range) SetValue(from, to *time.Time) {
	r.From.SetValue(from)
	r.To.SetValue(to)
}

// Focused reports whether focus is within the pair.
func (r *Range) Focused() bool { return r.focused }

func (r *Range) Group() *focusgroup.Group { return r.group }

func (r *Range) active() *Editor {
	switch {
	case r.From.Focused():
		return r.From
	case r.To.Focused():
		return r.To
	default:
		return nil
	}
}

// HandleKey routes k to whichever end holds focus.
func (r *Range) HandleKey(k segment.Key) bool {
	ed := r.active()
	if ed == nil {
		return false
	}
	return ed.HandleKey(k)
}

// InsertText types numerals across both ends, following focus as it
// advances from From into To.
func (r *Range) InsertText(text string) bool {
	if !segment.Numeric(text) || r.active() == nil {
		return false
	}
	for _, ch := range text {
		ed := r.active()
		if ed == nil {
			break
		}
		ed.InsertText(string(ch))
	}
	return true
}

// Release blurs whichever segment holds focus.
func (r *Range) Release() {
	r.group.Release()
}

func (r *Range) Close() {
	r.From.Close()
	r.To.Close()
}
