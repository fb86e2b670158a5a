package tui

import (
	"os"
	"strings"
	"sync"
)

// Some terminal fonts render arrows poorly; DATEFIELD_TUI_GLYPHS=ascii swaps
// them for plain text in key help and range status lines.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DATEFIELD_TUI_GLYPHS"))) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	defer glyphsMu.RUnlock()
	return currentGlyphs
}

func glyphRangeArrow() string {
	if glyphs() == glyphSetASCII {
		return "->"
	}
	return "→"
}

func glyphMoveKeys() string {
	if glyphs() == glyphSetASCII {
		return "left/right"
	}
	return "←/→"
}

func glyphStepKeys() string {
	if glyphs() == glyphSetASCII {
		return "up/down"
	}
	return "↑/↓"
}
