package tui

import (
	"strings"

	"likes-cli/internal/docs"
	"likes-cli/internal/layout"
)

// screen is one rendered frame of the picker plus the geometry needed for mouse hits.
type screen struct {
	view string

	// Grid origin in screen cells; frames are relative to it.
	gridX  int
	gridY  int
	frames []layout.Frame

	later   layout.Frame
	proceed layout.Frame
}

func (m *model) View() string {
	if m.done {
		return ""
	}
	return m.screen().view
}

func (m *model) containerWidth() int {
	return max(m.width-2*sideMargin, 1)
}

func (m *model) chipLabel(i int) string {
	icon := glyphPlus()
	if m.chips[i].Selected() {
		icon = glyphDone()
	}
	return m.chips[i].Title + " " + icon
}

func (m *model) renderChip(i int) string {
	c := m.chips[i]
	if _, ok := m.transitions[i]; ok {
		return styleChipTransition(c.Selected()).Render(m.chipLabel(i))
	}
	focused := m.focus == focusGrid && m.cursor == i
	return styleChip(c.Selected(), c.Pressed(), focused).Render(m.chipLabel(i))
}

// layoutGrid renders every chip and places it with the wrap layout.
func (m *model) layoutGrid() ([]string, []layout.Frame) {
	blocks := make([]string, len(m.chips))
	sizes := make([]layout.Size, len(m.chips))
	for i := range m.chips {
		blocks[i] = m.renderChip(i)
		sizes[i] = measure(blocks[i])
	}
	frames := layout.Wrap(sizes, m.containerWidth(), layout.Config{Gap: chipGap, LineSpacing: chipLineGap})
	return blocks, frames
}

// renderHeader returns the header block and the "later" button frame relative to it.
func (m *model) renderHeader(width int) (string, layout.Frame) {
	btn := styleButton(m.later.Pressed(), m.focus == focusLater).Render(laterTitle)
	bs := measure(btn)
	labelW := max(width-bs.Width-headerSpacing, 10)
	label := styleHeader().Width(labelW).Render(headerText)

	labelLines := strings.Split(label, "\n")
	btnLines := strings.Split(btn, "\n")
	lines := make([]string, max(len(labelLines), len(btnLines)))
	for i := range lines {
		l := ""
		if i < len(labelLines) {
			l = labelLines[i]
		}
		if i < len(btnLines) {
			l = normalizePane(l, labelW, 1) + strings.Repeat(" ", headerSpacing) + btnLines[i]
		}
		lines[i] = l
	}
	return strings.Join(lines, "\n"), layout.Frame{X: labelW + headerSpacing, Y: 0, Width: bs.Width, Height: bs.Height}
}

// renderProceed returns the centered call-to-action block. While hidden it keeps its
// height so the grid does not jump when the button appears.
func (m *model) renderProceed(width int) (string, layout.Frame) {
	btn := styleButton(m.proceed.Pressed(), m.focus == focusProceed).Padding(1, 6).Render(proceedTitle)
	bs := measure(btn)
	if !m.proceedVisible {
		return strings.Repeat("\n", bs.Height-1), layout.Frame{}
	}
	left := max((width-bs.Width)/2, 0)
	lines := strings.Split(btn, "\n")
	for i := range lines {
		lines[i] = strings.Repeat(" ", left) + lines[i]
	}
	return strings.Join(lines, "\n"), layout.Frame{X: left, Width: bs.Width, Height: bs.Height}
}

func (m *model) screen() screen {
	width := m.containerWidth()
	var sc screen

	header, laterF := m.renderHeader(width)

	var body string
	if m.showHelp {
		md, _ := docs.Get("picker")
		body = docs.Render(md, width, markdownStyle())
	} else {
		var blocks []string
		blocks, sc.frames = m.layoutGrid()
		body = paintFrames(sc.frames, blocks)
	}

	footer, proceedF := m.renderProceed(width)
	helpLine := styleMuted().Render(m.help.View(m.keys))

	top := []layout.Part{layout.Gap(1), layout.Block(header), layout.Gap(1)}
	mid := append(append([]layout.Part{}, top...), layout.Block(body), layout.Gap(1))
	parts := append(append([]layout.Part{}, mid...), layout.Block(footer), layout.Gap(1), layout.Block(helpLine))

	sc.gridX = sideMargin
	sc.gridY = layout.StackHeight(top...)
	sc.later = laterF
	sc.later.X += sideMargin
	sc.later.Y += 1
	if proceedF.Width > 0 {
		sc.proceed = proceedF
		sc.proceed.X += sideMargin
		sc.proceed.Y = layout.StackHeight(mid...)
	}

	lines := strings.Split(layout.Stack(parts...), "\n")
	margin := strings.Repeat(" ", sideMargin)
	for i := range lines {
		lines[i] = margin + lines[i]
	}
	sc.view = normalizePane(strings.Join(lines, "\n"), m.width, m.height)
	return sc
}

// hit returns what the cell (x, y) lands on, or nil.
func (sc screen) hit(x, y int) *pressTarget {
	if sc.later.Contains(x, y) {
		return &pressTarget{area: focusLater}
	}
	if sc.proceed.Contains(x, y) {
		return &pressTarget{area: focusProceed}
	}
	if i := layout.HitTest(sc.frames, x-sc.gridX, y-sc.gridY); i >= 0 {
		return &pressTarget{area: focusGrid, index: i}
	}
	return nil
}
