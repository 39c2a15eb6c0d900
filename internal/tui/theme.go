package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette.
//
// The picker keeps the two brand colors for chips and buttons regardless of the
// terminal background: chips carry their own background, so only the surrounding
// text adapts to light/dark terminals.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	// White at 17% over black.
	colorChipBg lipgloss.TerminalColor = lipgloss.Color("#2B2B2B")
	colorAccent lipgloss.TerminalColor = lipgloss.Color("#FF5317")
	colorChipFg lipgloss.TerminalColor = lipgloss.Color("#FFFFFF")

	// Header label: white at 48% on dark terminals.
	colorHeaderFg lipgloss.TerminalColor = ac("240", "#7A7A7A")
	colorMuted    lipgloss.TerminalColor = ac("244", "243")
)

func styleChip(selected, pressed, focused bool) lipgloss.Style {
	st := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorChipFg).
		Background(colorChipBg).
		Bold(true)
	if selected || pressed {
		st = st.Background(colorAccent)
	}
	if focused {
		st = st.Underline(true)
	}
	return st
}

// styleChipTransition is the "fading in" look of a chip that just changed state.
func styleChipTransition(selected bool) lipgloss.Style {
	return styleChip(selected, false, false).Faint(true)
}

func styleButton(pressed, focused bool) lipgloss.Style {
	st := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(colorChipFg).
		Background(colorChipBg).
		Bold(true)
	if pressed {
		st = st.Background(colorAccent)
	}
	if focused {
		st = st.Underline(true)
	}
	return st
}

func styleHeader() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorHeaderFg)
}

func styleMuted() lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(colorMuted)
	if lipgloss.HasDarkBackground() {
		st = st.Faint(true)
	}
	return st
}

// applyColorProfilePreference sets Lip Gloss's color profile for the picker.
//
// termenv.EnvColorProfile honors CLICOLOR/CLICOLOR_FORCE, which can disable colors in a
// TUI by accident, so only NO_COLOR is honored here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when they claim more than the detector found.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && profile == termenv.ANSI {
		profile = termenv.ANSI256
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection.
//
// Priority:
// 1) LIKES_TUI_THEME=light|dark|auto
// 2) config tui.theme
// 3) COLORFGBG heuristic ("fg;bg")
func applyThemePreference(configured string) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("LIKES_TUI_THEME")))
	if v == "" {
		v = strings.ToLower(strings.TrimSpace(configured))
	}
	switch v {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}

// markdownStyle follows the resolved background so help text stays readable.
func markdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
