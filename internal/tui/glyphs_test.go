package tui

import "testing"

func TestGlyphs_FromEnvAndConfig(t *testing.T) {
	t.Setenv("LIKES_TUI_GLYPHS", "")
	setGlyphs(glyphSetUnicode)
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs by default; got %v", got)
	}

	applyGlyphPreference("ascii")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected config to select ascii; got %v", got)
	}
	if glyphDone() != "v" {
		t.Fatalf("expected ascii done glyph")
	}

	t.Setenv("LIKES_TUI_GLYPHS", "unicode")
	applyGlyphPreference("ascii")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected env to win over config; got %v", got)
	}
	if glyphDone() != "✓" {
		t.Fatalf("expected unicode done glyph")
	}

	// Unknown values are ignored (keep current).
	setGlyphs(glyphSetASCII)
	t.Setenv("LIKES_TUI_GLYPHS", "bogus")
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected unknown to be ignored; got %v", got)
	}
	setGlyphs(glyphSetUnicode)
}
