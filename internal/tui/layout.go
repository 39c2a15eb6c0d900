package tui

import (
	"strings"

	"likes-cli/internal/layout"

	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and height
// lines tall; height <= 0 keeps the line count.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i, ln := range lines {
		w := xansi.StringWidth(ln)
		if w > width {
			switch {
			case width == 0:
				ln = ""
			case width == 1:
				ln = xansi.Truncate(ln, 1, "")
			default:
				ln = xansi.Truncate(ln, width, "…")
			}
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}

// measure returns the cell size of a rendered block.
func measure(s string) layout.Size {
	lines := strings.Split(s, "\n")
	w := 0
	for _, ln := range lines {
		w = max(w, xansi.StringWidth(ln))
	}
	return layout.Size{Width: w, Height: len(lines)}
}

// paintFrames draws each block at its frame. Gaps and line spacing become spaces and
// blank rows.
func paintFrames(frames []layout.Frame, blocks []string) string {
	if len(frames) == 0 {
		return ""
	}
	bounds := layout.Bounds(frames)
	out := make([]string, 0, bounds.Height)

	for _, row := range layout.Rows(frames) {
		top := frames[row[0]].Y
		h := 0
		for _, i := range row {
			h = max(h, frames[i].MaxY()-top)
		}
		for len(out) < top {
			out = append(out, "")
		}
		for dy := 0; dy < h; dy++ {
			var sb strings.Builder
			x := 0
			for _, i := range row {
				f := frames[i]
				if f.X > x {
					sb.WriteString(strings.Repeat(" ", f.X-x))
					x = f.X
				}
				lines := strings.Split(blocks[i], "\n")
				ln := ""
				if rel := top + dy - f.Y; rel >= 0 && rel < len(lines) {
					ln = lines[rel]
				}
				sb.WriteString(ln)
				if pad := f.Width - xansi.StringWidth(ln); pad > 0 {
					sb.WriteString(strings.Repeat(" ", pad))
				}
				x = f.MaxX()
			}
			out = append(out, sb.String())
		}
	}
	return strings.Join(out, "\n")
}
