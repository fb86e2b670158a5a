package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderFieldLine pads a rendered segment row to bodyW on the input
// background and never lets it exceed bodyW.
func renderFieldLine(bodyW int, row string) string {
	if bodyW < 10 {
		bodyW = 10
	}

	// A segment row is always one visual line; stray newlines would wrap the box.
	row = strings.ReplaceAll(row, "\n", " ")
	row = strings.ReplaceAll(row, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+row+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Terminate ANSI styling to prevent bleed.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}
