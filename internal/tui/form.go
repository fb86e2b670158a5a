package tui

import (
	"datefield-cli/internal/dateinput"
	"datefield-cli/internal/segment"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldEditor is what a form drives: a single editor or a range.
type fieldEditor interface {
	dateinput.Handle
	HandleKey(segment.Key) bool
	InsertText(string) bool
	Focused() bool
}

type formAction int

const (
	actionNone formAction = iota
	actionSubmit
	actionCancel
)

// form owns the focus split between the editor and the trailing "Done"
// control, plus the shared key map and help.
type form struct {
	ed      fieldEditor
	release func()
	// text is what Copy puts on the clipboard; "" means nothing to copy.
	text    func() string
	keys    keyMap
	help    help.Model
	styles  fieldStyles
	width   int
	onDone  bool
	status  string
}

func newForm(ed fieldEditor, release func(), text func() string) form {
	f := form{
		ed:      ed,
		release: release,
		text:    text,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  defaultFieldStyles(),
	}
	ed.Focus()
	return f
}

func (f *form) handleKey(msg tea.KeyMsg) formAction {
	switch {
	case key.Matches(msg, f.keys.Cancel):
		return actionCancel
	case key.Matches(msg, f.keys.Submit):
		return actionSubmit
	case key.Matches(msg, f.keys.Clear):
		f.ed.Clear()
		f.onDone = false
		f.status = ""
		f.ed.Focus()
		return actionNone
	case key.Matches(msg, f.keys.Help):
		f.help.ShowAll = !f.help.ShowAll
		return actionNone
	case key.Matches(msg, f.keys.Copy):
		f.copyValue()
		return actionNone
	}

	in := translateKey(msg)
	f.status = ""

	if f.onDone {
		switch in.key.Type {
		case segment.KeyTab, segment.KeyShiftTab:
			f.onDone = false
			f.ed.Focus()
		case segment.KeyRune:
			if _, ok := in.key.Digit(); ok {
				f.onDone = false
				f.ed.Focus()
				f.ed.HandleKey(in.key)
			}
		}
		return actionNone
	}

	if !f.ed.Focused() {
		f.ed.Focus()
	}
	if in.text != "" {
		f.ed.InsertText(in.text)
		return actionNone
	}
	if !f.ed.HandleKey(in.key) && in.key.Type == segment.KeyTab {
		// Tab past the last segment leaves the editor for the Done control.
		f.release()
		f.onDone = true
	}
	return actionNone
}

func (f *form) resize(msg tea.WindowSizeMsg) {
	f.width = msg.Width
	f.help.Width = msg.Width
}

func (f *form) fieldWidth() int {
	w := defaultFieldWidth
	if f.width > 0 && f.width-4 < w {
		w = f.width - 4
	}
	return w
}

func (f *form) copyValue() {
	txt := ""
	if f.text != nil {
		txt = f.text()
	}
	if txt == "" {
		f.status = "nothing to copy"
		return
	}
	if err := clipboardWrite(txt); err != nil {
		f.status = "copy failed: " + err.Error()
		return
	}
	f.status = "copied " + txt
}
