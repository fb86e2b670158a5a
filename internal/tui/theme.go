package tui

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds.
// We use lipgloss.AdaptiveColor where possible and only apply "faint" styling
// on dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted    lipgloss.TerminalColor = ac("240", "243")
	colorChromeFg lipgloss.TerminalColor = ac("240", "245")

	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")
	colorInputBg   lipgloss.TerminalColor = ac("254", "234")

	colorAccent   lipgloss.TerminalColor = ac("27", "62") // blue
	colorAccentFg lipgloss.TerminalColor = ac("255", "235")

	colorBorder         lipgloss.TerminalColor = ac("250", "243")
	colorFocusedBorder  lipgloss.TerminalColor = ac("232", "255")
	colorValidFg        lipgloss.TerminalColor = ac("28", "114")
	colorErrorFg        lipgloss.TerminalColor = ac("160", "203")
	colorPlaceholderFg  lipgloss.TerminalColor = ac("245", "241")
	colorSelectedSegBg  lipgloss.TerminalColor = colorAccent
	colorSelectedSegFg  lipgloss.TerminalColor = colorAccentFg
	colorDisabledSegFg  lipgloss.TerminalColor = ac("248", "239")
	colorSeparatorFg    lipgloss.TerminalColor = colorChromeFg
	colorButtonBg       lipgloss.TerminalColor = ac("252", "237")
	colorButtonActiveBg lipgloss.TerminalColor = colorAccent
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// fieldStyles groups the styles used to render one editor.
type fieldStyles struct {
	label       lipgloss.Style
	segment     lipgloss.Style
	focused     lipgloss.Style
	placeholder lipgloss.Style
	disabled    lipgloss.Style
	separator   lipgloss.Style
	box         lipgloss.Style
	boxFocused  lipgloss.Style
	boxInvalid  lipgloss.Style
	valid       lipgloss.Style
	invalid     lipgloss.Style
	button      lipgloss.Style
	buttonFocus lipgloss.Style
}

func defaultFieldStyles() fieldStyles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)
	return fieldStyles{
		label:       lipgloss.NewStyle().Foreground(colorSurfaceFg).Bold(true),
		segment:     lipgloss.NewStyle().Foreground(colorSurfaceFg),
		focused:     lipgloss.NewStyle().Background(colorSelectedSegBg).Foreground(colorSelectedSegFg).Bold(true),
		placeholder: faintIfDark(lipgloss.NewStyle().Foreground(colorPlaceholderFg)),
		disabled:    faintIfDark(lipgloss.NewStyle().Foreground(colorDisabledSegFg)),
		separator:   lipgloss.NewStyle().Foreground(colorSeparatorFg),
		box:         box,
		boxFocused:  box.BorderForeground(colorFocusedBorder),
		boxInvalid:  box.BorderForeground(colorErrorFg),
		valid:       lipgloss.NewStyle().Foreground(colorValidFg),
		invalid:     lipgloss.NewStyle().Foreground(colorErrorFg),
		button:      lipgloss.NewStyle().Background(colorButtonBg).Foreground(colorSurfaceFg).Padding(0, 1),
		buttonFocus: lipgloss.NewStyle().Background(colorButtonActiveBg).Foreground(colorAccentFg).Bold(true).Padding(0, 1),
	}
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// Note: termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is useful for
// non-interactive CLI output but can accidentally disable colors in a TUI. For the TUI,
// we only honor NO_COLOR and otherwise follow the terminal's capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// If TERM/COLORTERM indicate stronger support than the detector reports, trust the env.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) DATEFIELD_TUI_THEME=light|dark|auto (or the configured profile)
// 2) COLORFGBG heuristic (common in terminals; format like "15;0" = fg;bg)
// 3) macOS appearance
func applyThemePreference(profile string) {
	v := strings.TrimSpace(os.Getenv("DATEFIELD_TUI_THEME"))
	if v == "" {
		v = strings.TrimSpace(profile)
	}
	switch strings.ToLower(v) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	// COLORFGBG is often "fg;bg" (sometimes more segments). Use last segment as bg.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
			return
		}
	}

	if runtime.GOOS == "darwin" {
		if dark, ok := macOSHasDarkAppearance(); ok {
			lipgloss.SetHasDarkBackground(dark)
			return
		}
	}
}

func macOSHasDarkAppearance() (dark bool, ok bool) {
	// `defaults read -g AppleInterfaceStyle` prints "Dark" in dark mode and returns exit status 1
	// in light mode (key missing).
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}
