package segment

// KeyType identifies a key the segment state machine understands.
type KeyType int

const (
	// KeyRune carries a printable character in Key.Rune.
	KeyRune KeyType = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBackspace
	KeyDelete
	KeyTab
	KeyShiftTab
	// KeyOther is any key without segment semantics.
	KeyOther
)

// Key is a host-independent key event.
type Key struct {
	Type KeyType
	Rune rune
}

// Rune returns a KeyRune event for r.
func Rune(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// Digit reports the numeric value of a numeral key.
func (k Key) Digit() (int, bool) {
	if k.Type != KeyRune || !isNumeral(k.Rune) {
		return 0, false
	}
	return int(k.Rune - '0'), true
}

func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyTab:
		return "tab"
	case KeyShiftTab:
		return "shift+tab"
	default:
		return "other"
	}
}

// isNumeral accepts ASCII digits only; other numeral scripts are rejected.
func isNumeral(r rune) bool {
	return r >= '0' && r <= '9'
}

// Numeric reports whether text is non-empty and made only of ASCII numerals.
func Numeric(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !isNumeral(r) {
			return false
		}
	}
	return true
}
