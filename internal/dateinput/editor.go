// Package dateinput composes segments into date/time editors.
//
// An Editor owns the semantic day/month/year/hour/minute state, derives its
// segment layout from a locale, keeps the day bound in step with the month
// and year, and reports a composed Result on every committing edit.
package dateinput

import (
	"strconv"
	"time"

	"datefield-cli/internal/focusgroup"
	"datefield-cli/internal/segment"
)

// Handle is the imperative command surface exposed to hosts.
type Handle interface {
	// Focus focuses the first incomplete segment (or the last one).
	Focus()
	// Clear empties every field and reports Empty.
	Clear()
}

type Config struct {
	Locale      string
	Granularity Granularity

	// Value makes the editor controlled: the host pushes later values with
	// SetValue. DefaultValue only seeds the initial state.
	Value        *time.Time
	DefaultValue *time.Time

	OnValueChange func(Result)

	Disabled bool
	ReadOnly bool

	// Group is shared with other editors for cross-editor navigation; when
	// nil the editor creates its own. Rank orders editors within a group.
	Group *focusgroup.Group
	Rank  int

	Rules   Rules
	Locales *LocaleTable

	// Now supplies the date used by time-only editors; defaults to time.Now.
	Now func() time.Time
	// Location of composed values; defaults to the seed value's location,
	// then time.Local.
	Location *time.Location
}

type field struct {
	set bool
	n   int
}

func parseField(v string) field {
	if v == "" {
		return field{}
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return field{}
	}
	return field{set: true, n: n}
}

type slot struct {
	spec      SegmentSpec
	separator string
	seg       *segment.Segment
}

type Editor struct {
	locale      LocaleConfig
	granularity Granularity
	rules       Rules
	controlled  bool
	disabled    bool
	readOnly    bool

	onValueChange func(Result)
	now           func() time.Time
	loc           *time.Location

	group    *focusgroup.Group
	slots    []*slot
	fields   map[SegmentID]field
	resetKey int
	result   Result
}

var _ Handle = (*Editor)(nil)

func New(cfg Config) (*Editor, error) {
	locale, err := cfg.Locales.Lookup(cfg.Locale)
	if err != nil {
		return nil, err
	}
	g, err := ParseGranularity(string(cfg.Granularity))
	if err != nil {
		return nil, err
	}

	seed := cfg.Value
	if seed == nil {
		seed = cfg.DefaultValue
	}

	e := &Editor{
		locale:        locale,
		granularity:   g,
		rules:         cfg.Rules,
		controlled:    cfg.Value != nil,
		disabled:      cfg.Disabled,
		readOnly:      cfg.ReadOnly,
		onValueChange: cfg.OnValueChange,
		now:           cfg.Now,
		loc:           cfg.Location,
		group:         cfg.Group,
		fields:        fieldsFrom(seed),
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.loc == nil {
		if seed != nil {
			e.loc = seed.Location()
		} else {
			e.loc = time.Local
		}
	}
	if e.group == nil {
		e.group = focusgroup.New()
	}
	e.clampDay()

	specs := Layout(locale, g)
	for i, spec := range specs {
		sl := &slot{spec: spec, separator: separatorBefore(specs, i, locale)}
		id := spec.ID
		sl.seg = segment.New(segment.Config{
			Placeholder: spec.Placeholder,
			MaxLength:   id.maxLength(),
			MaxValue:    e.maxValue(id),
			Value:       e.formatField(id),
			OnChange:    func(v string) { e.setSegmentValue(id, v) },
			Disabled:    cfg.Disabled,
			ReadOnly:    cfg.ReadOnly,
			Group:       e.group,
			Position:    focusgroup.Position{Rank: cfg.Rank, Index: i},
		})
		e.slots = append(e.slots, sl)
	}
	e.result = e.compose()
	return e, nil
}

// Layout returns the segments for a locale and granularity: date segments in
// locale order, then hour and minute.
func Layout(locale LocaleConfig, g Granularity) []SegmentSpec {
	var out []SegmentSpec
	if g.hasDate() {
		out = append(out, locale.Segments...)
	}
	if g.hasTime() {
		out = append(out, hourSpec, minuteSpec)
	}
	return out
}

// separatorBefore returns the glyph rendered before specs[i]: the locale
// separator between date segments and ":" before hour and minute. An hour
// followed by another date segment takes ", " instead; Layout never
// produces that order, so only hand-built specs reach it.
func separatorBefore(specs []SegmentSpec, i int, locale LocaleConfig) string {
	if i == 0 {
		return ""
	}
	prev, cur := specs[i-1].ID, specs[i].ID
	switch {
	case cur == SegmentHour:
		for _, next := range specs[i+1:] {
			if next.ID.isDate() {
				return ", "
			}
		}
		return ":"
	case cur == SegmentMinute:
		return ":"
	case prev.isDate() && cur.isDate():
		return locale.separator()
	default:
		return ", "
	}
}

func fieldsFrom(t *time.Time) map[SegmentID]field {
	if t == nil {
		return map[SegmentID]field{}
	}
	return map[SegmentID]field{
		SegmentDay:    {set: true, n: t.Day()},
		SegmentMonth:  {set: true, n: int(t.Month())},
		SegmentYear:   {set: true, n: t.Year()},
		SegmentHour:   {set: true, n: t.Hour()},
		SegmentMinute: {set: true, n: t.Minute()},
	}
}

func (e *Editor) formatField(id SegmentID) string {
	f := e.fields[id]
	if !f.set {
		return ""
	}
	s := strconv.Itoa(f.n)
	for len(s) < id.maxLength() {
		s = "0" + s
	}
	return s
}

func (e *Editor) maxValue(id SegmentID) int {
	switch id {
	case SegmentDay:
		return e.dayMax()
	case SegmentMonth:
		return 12
	case SegmentYear:
		return 9999
	case SegmentHour:
		return 23
	case SegmentMinute:
		return 59
	default:
		return 99
	}
}

// dayMax is 31 until both month and a four-digit year are known, so a
// partially typed year never clamps the day.
func (e *Editor) dayMax() int {
	mo, y := e.fields[SegmentMonth], e.fields[SegmentYear]
	if !mo.set || !y.set || mo.n < 1 || mo.n > 12 || y.n < 1000 {
		return 31
	}
	return daysInMonth(y.n, time.Month(mo.n))
}

// clampDay updates the day bound and clamps a present day down to it.
func (e *Editor) clampDay() {
	bound := e.dayMax()
	if sl := e.slot(SegmentDay); sl != nil {
		sl.seg.SetMaxValue(bound)
	}
	if d := e.fields[SegmentDay]; d.set && d.n > bound {
		e.fields[SegmentDay] = field{set: true, n: bound}
	}
}

func (e *Editor) slot(id SegmentID) *slot {
	for _, sl := range e.slots {
		if sl.spec.ID == id {
			return sl
		}
	}
	return nil
}

func (e *Editor) setSegmentValue(id SegmentID, v string) {
	e.fields[id] = parseField(e.rules.apply(id, v))
	if id == SegmentMonth || id == SegmentYear {
		e.clampDay()
	}
	e.syncSegments()
	e.emit()
}

// syncSegments pushes the semantic state down; focused segments keep their
// own buffer until blur.
func (e *Editor) syncSegments() {
	for _, sl := range e.slots {
		sl.seg.SetValue(e.formatField(sl.spec.ID))
	}
}

func (e *Editor) emit() {
	e.result = e.compose()
	if e.onValueChange != nil {
		e.onValueChange(e.result)
	}
}

// compose derives the Result: Empty when no active segment has a value,
// Invalid when some are missing or the combination is not a real date/time.
func (e *Editor) compose() Result {
	present := 0
	for _, sl := range e.slots {
		if e.fields[sl.spec.ID].set {
			present++
		}
	}
	if present == 0 {
		return EmptyResult()
	}
	if present < len(e.slots) {
		return InvalidResult()
	}

	y, mo, d, ok := e.datePart()
	if !ok {
		return InvalidResult()
	}
	h, mi, ok := e.timePart()
	if !ok {
		return InvalidResult()
	}
	return ValidResult(time.Date(y, time.Month(mo), d, h, mi, 0, 0, e.loc))
}

func (e *Editor) datePart() (y, mo, d int, ok bool) {
	fy, fm, fd := e.fields[SegmentYear], e.fields[SegmentMonth], e.fields[SegmentDay]
	if fy.set && fm.set && fd.set && validDate(fy.n, fm.n, fd.n) {
		return fy.n, fm.n, fd.n, true
	}
	if e.granularity.hasDate() {
		return 0, 0, 0, false
	}
	now := e.now().In(e.loc)
	return now.Year(), int(now.Month()), now.Day(), true
}

func (e *Editor) timePart() (h, mi int, ok bool) {
	fh, fm := e.fields[SegmentHour], e.fields[SegmentMinute]
	if fh.set && fm.set && validTime(fh.n, fm.n) {
		return fh.n, fm.n, true
	}
	if e.granularity.hasTime() {
		return 0, 0, false
	}
	return 0, 0, true
}

// validDate requires a four-digit year.
func validDate(y, mo, d int) bool {
	if y < 1000 || y > 9999 || mo < 1 || mo > 12 {
		return false
	}
	return d >= 1 && d <= daysInMonth(y, time.Month(mo))
}

func validTime(h, mi int) bool {
	return h >= 0 && h <= 23 && mi >= 0 && mi <= 59
}

// Value returns the current composed value.
func (e *Editor) Value() Result { return e.result }

// Focus focuses the editor's first incomplete segment, or its last segment
// when all are complete. Segments of other editors sharing the group are
// never chosen.
func (e *Editor) Focus() {
	own := make([]focusgroup.Handle, 0, len(e.slots))
	for _, sl := range e.slots {
		own = append(own, sl.seg)
	}
	e.group.FocusFirstIncompleteIn(own)
}

// Clear empties every field, force-clears every segment buffer and reports
// Empty.
func (e *Editor) Clear() {
	e.fields = map[SegmentID]field{}
	e.resetKey++
	for _, sl := range e.slots {
		sl.seg.Reset(e.resetKey)
	}
	e.clampDay()
	e.emit()
}

// SetValue applies an external value. Every field re-derives from v; a
// focused segment keeps its in-progress buffer while its siblings sync.
// Nothing is emitted.
func (e *Editor) SetValue(v *time.Time) {
	e.fields = fieldsFrom(v)
	e.clampDay()
	e.syncSegments()
	e.result = e.compose()
}

// Controlled reports whether the editor was built with a Value.
func (e *Editor) Controlled() bool { return e.controlled }

func (e *Editor) Granularity() Granularity { return e.granularity }

func (e *Editor) Locale() LocaleConfig { return e.locale }

func (e *Editor) Group() *focusgroup.Group { return e.group }

// Segment returns the live segment for id, or nil when the layout lacks it.
func (e *Editor) Segment(id SegmentID) *segment.Segment {
	if sl := e.slot(id); sl != nil {
		return sl.seg
	}
	return nil
}

// FocusSegment focuses the segment for id.
func (e *Editor) FocusSegment(id SegmentID) bool {
	sl := e.slot(id)
	if sl == nil {
		return false
	}
	return e.group.Focus(sl.seg)
}

// Focused reports whether one of this editor's segments holds focus.
func (e *Editor) Focused() bool {
	return e.focusedSlot() != nil
}

func (e *Editor) focusedSlot() *slot {
	for _, sl := range e.slots {
		if sl.seg.Focused() {
			return sl
		}
	}
	return nil
}

// FocusedID returns the id of the focused segment, if any.
func (e *Editor) FocusedID() (SegmentID, bool) {
	if sl := e.focusedSlot(); sl != nil {
		return sl.spec.ID, true
	}
	return "", false
}

// HandleKey routes k to the focused segment. Tab and Shift+Tab move focus
// within the group; it reports false when nothing consumed the key (e.g. Tab
// on the last segment) so the host can move focus elsewhere.
func (e *Editor) HandleKey(k segment.Key) bool {
	sl := e.focusedSlot()
	if sl == nil {
		return false
	}
	if sl.seg.HandleKey(k) {
		return true
	}
	switch k.Type {
	case segment.KeyTab:
		return e.group.MoveFocus(sl.seg, 1)
	case segment.KeyShiftTab:
		return e.group.MoveFocus(sl.seg, -1)
	}
	return false
}

// InsertText filters raw text input: anything but ASCII numerals is dropped
// whole; numerals are typed into whichever segment holds focus as it advances.
func (e *Editor) InsertText(text string) bool {
	if !segment.Numeric(text) || e.focusedSlot() == nil {
		return false
	}
	for _, r := range text {
		sl := e.focusedSlot()
		if sl == nil {
			break
		}
		sl.seg.InsertText(string(r))
	}
	return true
}

func (e *Editor) SetDisabled(disabled bool) {
	e.disabled = disabled
	for _, sl := range e.slots {
		sl.seg.SetDisabled(disabled)
	}
}

func (e *Editor) SetReadOnly(readOnly bool) {
	e.readOnly = readOnly
	for _, sl := range e.slots {
		sl.seg.SetReadOnly(readOnly)
	}
}

func (e *Editor) Disabled() bool { return e.disabled }
func (e *Editor) ReadOnly() bool { return e.readOnly }

// SegmentView is a render-ready snapshot of one segment.
type SegmentView struct {
	ID          SegmentID
	Label       string
	Separator   string
	Text        string
	Placeholder bool
	Focused     bool
}

// Segments returns the layout in display order.
func (e *Editor) Segments() []SegmentView {
	out := make([]SegmentView, 0, len(e.slots))
	for _, sl := range e.slots {
		out = append(out, SegmentView{
			ID:          sl.spec.ID,
			Label:       sl.spec.Label,
			Separator:   sl.separator,
			Text:        sl.seg.Display(),
			Placeholder: sl.seg.Empty(),
			Focused:     sl.seg.Focused(),
		})
	}
	return out
}

// Close unmounts every segment.
func (e *Editor) Close() {
	for _, sl := range e.slots {
		sl.seg.Close()
	}
}
