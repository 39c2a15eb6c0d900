package docs

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	rendererMu sync.Mutex
	// Cached by style + wrap width. WithAutoStyle would query the terminal, which can
	// block inside a running TUI, so callers pass an explicit style.
	renderers = map[string]*glamour.TermRenderer{}
)

// Render renders markdown for a terminal. style is "dark" or "light"; width <= 0 uses 80.
// On renderer failure the raw markdown is returned.
func Render(md string, width int, style string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	if width < 20 {
		width = 20
	}
	if style != "light" {
		style = "dark"
	}

	key := style + ":" + strconv.Itoa(width)
	rendererMu.Lock()
	defer rendererMu.Unlock()

	r := renderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		renderers[key] = rr
		r = rr
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
