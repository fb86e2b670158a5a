// Package focusgroup coordinates keyboard focus across sibling segments.
//
// A Group is the focus authority for every handle registered with it. Editors
// register their segments with an explicit Position at construction, so
// navigation order never depends on registration order. Several editors may
// share one Group (e.g. the two ends of a date range) and are then traversed
// as one sequence.
package focusgroup

import (
	"cmp"
	"slices"
)

// Handle is a focusable member of a group.
type Handle interface {
	// Alive reports whether the handle is still mounted.
	Alive() bool
	// Complete reports whether the handle shows a complete numeral.
	Complete() bool
	// SetFocused is called by the group when the handle gains or loses focus.
	SetFocused(focused bool)
}

// Position orders handles: first by Rank (one rank per editor), then by Index
// within that editor.
type Position struct {
	Rank  int
	Index int
}

func comparePositions(a, b Position) int {
	if c := cmp.Compare(a.Rank, b.Rank); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}

type entry struct {
	h   Handle
	pos Position
}

// Group is a registry of live handles plus the currently focused one.
// It is not safe for concurrent use; all calls happen on the host's event turn.
type Group struct {
	entries []entry
	focused Handle

	onEnter func()
	onLeave func()
}

type Option func(*Group)

// OnEnter registers a callback fired once when focus enters the group.
func OnEnter(fn func()) Option {
	return func(g *Group) { g.onEnter = fn }
}

// OnLeave registers a callback fired once when focus leaves the group.
func OnLeave(fn func()) Option {
	return func(g *Group) { g.onLeave = fn }
}

func New(opts ...Option) *Group {
	g := &Group{}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Register adds h at pos. Registering an already known handle moves it.
func (g *Group) Register(h Handle, pos Position) {
	if h == nil {
		return
	}
	for i := range g.entries {
		if g.entries[i].h == h {
			g.entries[i].pos = pos
			return
		}
	}
	g.entries = append(g.entries, entry{h: h, pos: pos})
}

// Unregister removes h. If h held focus, focus leaves the group.
func (g *Group) Unregister(h Handle) {
	g.entries = slices.DeleteFunc(g.entries, func(e entry) bool { return e.h == h })
	if g.focused == h {
		g.focused = nil
		g.fireLeave()
	}
}

// Len returns the number of live handles.
func (g *Group) Len() int {
	return len(g.live())
}

// Focused returns the focused handle, or nil when focus is outside the group.
func (g *Group) Focused() Handle {
	if g.focused != nil && !g.focused.Alive() {
		g.focused = nil
		g.fireLeave()
	}
	return g.focused
}

// Contains reports whether h is a live member of the group.
func (g *Group) Contains(h Handle) bool {
	return slices.Index(g.live(), h) >= 0
}

// Focus moves focus to h. Stale or foreign handles are ignored.
func (g *Group) Focus(h Handle) bool {
	if h == nil || !g.Contains(h) {
		return false
	}
	prev := g.Focused()
	if prev == h {
		return true
	}
	g.focused = h
	if prev != nil {
		prev.SetFocused(false)
	}
	h.SetFocused(true)
	if prev == nil && g.onEnter != nil {
		g.onEnter()
	}
	return true
}

// Release blurs the focused handle; focus leaves the group.
func (g *Group) Release() {
	prev := g.Focused()
	if prev == nil {
		return
	}
	g.focused = nil
	prev.SetFocused(false)
	g.fireLeave()
}

// MoveFocus focuses the neighbor of current at offset dir. Requests past
// either end, or from a handle that is not a live member, are no-ops.
func (g *Group) MoveFocus(current Handle, dir int) bool {
	seq := g.live()
	i := slices.Index(seq, current)
	if i < 0 {
		return false
	}
	j := i + dir
	if j < 0 || j >= len(seq) {
		return false
	}
	return g.Focus(seq[j])
}

// FocusFirstIncomplete focuses the first handle that is not Complete, or the
// last handle when all are complete.
func (g *Group) FocusFirstIncomplete() bool {
	return g.focusFirstIncomplete(g.live())
}

// FocusFirstIncompleteIn is FocusFirstIncomplete limited to the live members
// of subset, still walked in navigation order. Foreign handles are ignored.
func (g *Group) FocusFirstIncompleteIn(subset []Handle) bool {
	seq := slices.DeleteFunc(g.live(), func(h Handle) bool {
		return !slices.Contains(subset, h)
	})
	return g.focusFirstIncomplete(seq)
}

func (g *Group) focusFirstIncomplete(seq []Handle) bool {
	if len(seq) == 0 {
		return false
	}
	for _, h := range seq {
		if !h.Complete() {
			return g.Focus(h)
		}
	}
	return g.Focus(seq[len(seq)-1])
}

// Handles returns live handles in navigation order.
func (g *Group) Handles() []Handle {
	return g.live()
}

// live prunes dead handles and returns the rest sorted by position.
func (g *Group) live() []Handle {
	g.entries = slices.DeleteFunc(g.entries, func(e entry) bool { return !e.h.Alive() })
	sorted := slices.Clone(g.entries)
	slices.SortStableFunc(sorted, func(a, b entry) int { return comparePositions(a.pos, b.pos) })
	out := make([]Handle, 0, len(sorted))
	for _, e := range sorted {
		out = append(out, e.h)
	}
	return out
}

func (g *Group) fireLeave() {
	if g.onLeave != nil {
		g.onLeave()
	}
}
