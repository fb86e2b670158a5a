package tui

import (
	"datefield-cli/internal/segment"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Clear  key.Binding
	Copy   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Move   key.Binding
	Step   key.Binding
	Help   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Move:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp(glyphMoveKeys(), "move")),
		Step:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp(glyphStepKeys(), "step")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Clear, k.Cancel, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Move, k.Step},
		{k.Submit, k.Clear, k.Copy, k.Cancel, k.Help},
	}
}

// segmentInput is a key event translated for the editor: either a single key
// or a chunk of pasted text for the raw input filter.
type segmentInput struct {
	key  segment.Key
	text string
}

func translateKey(msg tea.KeyMsg) segmentInput {
	switch msg.Type {
	case tea.KeyUp:
		return segmentInput{key: segment.Key{Type: segment.KeyUp}}
	case tea.KeyDown:
		return segmentInput{key: segment.Key{Type: segment.KeyDown}}
	case tea.KeyLeft:
		return segmentInput{key: segment.Key{Type: segment.KeyLeft}}
	case tea.KeyRight:
		return segmentInput{key: segment.Key{Type: segment.KeyRight}}
	case tea.KeyBackspace:
		return segmentInput{key: segment.Key{Type: segment.KeyBackspace}}
	case tea.KeyDelete:
		return segmentInput{key: segment.Key{Type: segment.KeyDelete}}
	case tea.KeyTab:
		return segmentInput{key: segment.Key{Type: segment.KeyTab}}
	case tea.KeyShiftTab:
		return segmentInput{key: segment.Key{Type: segment.KeyShiftTab}}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Paste {
			return segmentInput{key: segment.Rune(msg.Runes[0])}
		}
		return segmentInput{key: segment.Key{Type: segment.KeyOther}, text: string(msg.Runes)}
	}
	return segmentInput{key: segment.Key{Type: segment.KeyOther}}
}

// ParseKeyToken maps a scripted key token ("tab", "up", "7", "1234") to
// editor input. Multi-digit tokens are delivered as pasted text; any other
// multi-character token is unknown.
func ParseKeyToken(tok string) (segment.Key, string, bool) {
	switch tok {
	case "up":
		return segment.Key{Type: segment.KeyUp}, "", true
	case "down":
		return segment.Key{Type: segment.KeyDown}, "", true
	case "left":
		return segment.Key{Type: segment.KeyLeft}, "", true
	case "right":
		return segment.Key{Type: segment.KeyRight}, "", true
	case "backspace", "bs":
		return segment.Key{Type: segment.KeyBackspace}, "", true
	case "delete", "del":
		return segment.Key{Type: segment.KeyDelete}, "", true
	case "tab":
		return segment.Key{Type: segment.KeyTab}, "", true
	case "shift+tab", "btab":
		return segment.Key{Type: segment.KeyShiftTab}, "", true
	}
	r := []rune(tok)
	if len(r) == 1 {
		return segment.Rune(r[0]), "", true
	}
	if len(r) > 1 && segment.Numeric(tok) {
		return segment.Key{Type: segment.KeyOther}, tok, true
	}
	return segment.Key{}, "", false
}
