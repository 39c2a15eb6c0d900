package tui

import (
	"os"
	"strings"
	"sync"
)

// Chip icons. Some terminal fonts render the check mark poorly, so an ASCII set is
// available through LIKES_TUI_GLYPHS or config tui.glyphs.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func parseGlyphSet(v string) (glyphSet, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "unicode", "utf8":
		return glyphSetUnicode, true
	case "ascii":
		return glyphSetASCII, true
	}
	return glyphSetUnicode, false
}

// applyGlyphPreference applies the env var, then the configured value. Unknown or empty
// values keep the current set.
func applyGlyphPreference(configured string) {
	if gs, ok := parseGlyphSet(os.Getenv("LIKES_TUI_GLYPHS")); ok {
		setGlyphs(gs)
		return
	}
	if gs, ok := parseGlyphSet(configured); ok {
		setGlyphs(gs)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphPlus() string {
	return "+"
}

func glyphDone() string {
	if glyphs() == glyphSetASCII {
		return "v"
	}
	return "✓"
}
