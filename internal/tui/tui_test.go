package tui

import (
	"reflect"
	"strings"
	"testing"

	"likes-cli/internal/categories"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	lipgloss.SetHasDarkBackground(true)
	goleak.VerifyTestMain(m)
}

func newTestModel(t *testing.T) *model {
	t.Helper()
	m, err := newModel(categories.DefaultTitles(), "sess-test", nil)
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	return m
}

func keyPress(m *model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func click(m *model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

func plainView(m *model) string {
	return xansi.Strip(m.View())
}

func TestPicker_ProceedAppearsOnlyWithSelection(t *testing.T) {
	m := newTestModel(t)

	if strings.Contains(plainView(m), proceedTitle) {
		t.Fatalf("expected proceed button hidden initially")
	}

	keyPress(m, "space")
	if !m.proceedVisible || !strings.Contains(plainView(m), proceedTitle) {
		t.Fatalf("expected proceed button after first selection")
	}

	keyPress(m, "right")
	keyPress(m, "space")
	keyPress(m, "left")
	keyPress(m, "space")
	if !m.proceedVisible {
		t.Fatalf("expected proceed to stay visible while one chip is selected")
	}
	if got := m.list.Selected(); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("expected only chip 1 selected; got %v", got)
	}

	keyPress(m, "right")
	keyPress(m, "space")
	if m.proceedVisible || strings.Contains(plainView(m), proceedTitle) {
		t.Fatalf("expected proceed hidden after last deselection")
	}
}

func TestPicker_ChipIconFollowsSelection(t *testing.T) {
	setGlyphs(glyphSetUnicode)
	m := newTestModel(t)

	if !strings.Contains(plainView(m), "Юмор +") {
		t.Fatalf("expected unselected icon; view:\n%s", plainView(m))
	}
	keyPress(m, "space")
	if !strings.Contains(plainView(m), "Юмор ✓") {
		t.Fatalf("expected selected icon; view:\n%s", plainView(m))
	}
}

func TestPicker_ProceedFinishesWithSelection(t *testing.T) {
	m := newTestModel(t)

	keyPress(m, "right")
	keyPress(m, "right")
	keyPress(m, "space") // Кино
	keyPress(m, "right")
	keyPress(m, "space") // Рестораны

	if cmd := keyPress(m, "tab"); m.focus != focusProceed {
		t.Fatalf("expected tab to focus proceed; focus=%v cmd=%v", m.focus, cmd != nil)
	}
	cmd := keyPress(m, "enter")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}

	want := Result{
		SessionID: "sess-test",
		Completed: true,
		Selected:  []string{"Кино", "Рестораны"},
		Indices:   []int{2, 3},
	}
	if !reflect.DeepEqual(m.result, want) {
		t.Fatalf("unexpected result:\n got=%+v\nwant=%+v", m.result, want)
	}
	if m.View() != "" {
		t.Fatalf("expected empty view after finishing")
	}
}

func TestPicker_TabSkipsHiddenProceed(t *testing.T) {
	m := newTestModel(t)

	keyPress(m, "tab")
	if m.focus != focusLater {
		t.Fatalf("expected later focus without a selection; got %v", m.focus)
	}
	keyPress(m, "shift+tab")
	if m.focus != focusGrid {
		t.Fatalf("expected grid focus; got %v", m.focus)
	}
	keyPress(m, "tab")
	cmd := keyPress(m, "enter")
	if cmd == nil || !m.done {
		t.Fatalf("expected later to finish the picker")
	}
	if !m.result.Skipped || m.result.Completed || len(m.result.Selected) != 0 {
		t.Fatalf("unexpected skip result: %+v", m.result)
	}
}

func TestPicker_QuitLeavesEmptyResult(t *testing.T) {
	m := newTestModel(t)
	keyPress(m, "space")
	cmd := keyPress(m, "esc")
	if cmd == nil || !m.done {
		t.Fatalf("expected esc to quit")
	}
	if m.result.Completed || m.result.Skipped || len(m.result.Selected) != 0 {
		t.Fatalf("expected cancelled result; got %+v", m.result)
	}
}

func TestPicker_HelpOverlay(t *testing.T) {
	m := newTestModel(t)
	keyPress(m, "?")
	if !m.showHelp {
		t.Fatalf("expected help overlay")
	}
	keyPress(m, "space")
	if m.list.AnySelected() {
		t.Fatalf("keys must not reach the grid while help is shown")
	}
	keyPress(m, "esc")
	if m.showHelp || m.done {
		t.Fatalf("esc should close help, not quit; showHelp=%v done=%v", m.showHelp, m.done)
	}
}

func TestPicker_VerticalNavigation(t *testing.T) {
	m := newTestModel(t)
	_, frames := m.layoutGrid()
	if frames[len(frames)-1].Y == 0 {
		t.Fatalf("expected chips to wrap at width 60")
	}

	keyPress(m, "down")
	if frames[m.cursor].Y <= frames[0].Y {
		t.Fatalf("expected cursor on a lower row; cursor=%d", m.cursor)
	}
	keyPress(m, "up")
	if m.cursor != 0 {
		t.Fatalf("expected to return to chip 0; got %d", m.cursor)
	}

	// From the bottom row, down moves to the proceed button once it is visible.
	m.cursor = len(m.chips) - 1
	keyPress(m, "space")
	keyPress(m, "down")
	if m.focus != focusProceed {
		t.Fatalf("expected down from last row to focus proceed; got %v", m.focus)
	}
	keyPress(m, "up")
	if m.focus != focusGrid {
		t.Fatalf("expected up to return to the grid")
	}
}

func TestPicker_MouseClickTogglesChip(t *testing.T) {
	m := newTestModel(t)
	sc := m.screen()
	f := sc.frames[4]

	click(m, sc.gridX+f.X+1, sc.gridY+f.Y)
	if got := m.list.Selected(); !reflect.DeepEqual(got, []int{4}) {
		t.Fatalf("expected chip 4 selected by click; got %v", got)
	}
	if m.cursor != 4 || m.focus != focusGrid {
		t.Fatalf("expected click to move focus to chip 4")
	}

	// Press on a chip, release elsewhere: no tap.
	m.Update(tea.MouseMsg{X: sc.gridX + f.X, Y: sc.gridY + f.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.chips[4].Pressed() {
		t.Fatalf("expected chip highlighted while pressed")
	}
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease})
	if m.chips[4].Pressed() || !m.list.AnySelected() {
		t.Fatalf("release outside must not toggle")
	}

	sc = m.screen()
	if sc.proceed.Width == 0 {
		t.Fatalf("expected proceed geometry once visible")
	}
	click(m, sc.proceed.X+1, sc.proceed.Y+1)
	if !m.done || !m.result.Completed {
		t.Fatalf("expected click on proceed to finish; result=%+v", m.result)
	}
}

func TestPicker_MouseClickLater(t *testing.T) {
	m := newTestModel(t)
	sc := m.screen()
	click(m, sc.later.X, sc.later.Y)
	if !m.done || !m.result.Skipped {
		t.Fatalf("expected later click to skip; result=%+v", m.result)
	}
}

func TestPicker_TransitionIsFireAndForget(t *testing.T) {
	m := newTestModel(t)

	cmd := keyPress(m, "space")
	if cmd == nil {
		t.Fatalf("expected a transition tick command")
	}
	if !m.list.AnySelected() {
		t.Fatalf("selection must apply before the transition ends")
	}
	seq, ok := m.transitions[0]
	if !ok {
		t.Fatalf("expected chip 0 transition")
	}

	// A stale tick must not end a newer transition.
	keyPress(m, "space")
	m.Update(transitionDoneMsg{index: 0, seq: seq})
	if _, ok := m.transitions[0]; !ok {
		t.Fatalf("stale tick ended the newer transition")
	}
	m.Update(transitionDoneMsg{index: 0, seq: m.transitions[0]})
	if _, ok := m.transitions[0]; ok {
		t.Fatalf("expected transition to end")
	}
}

func TestPicker_RejectsEmptyTitles(t *testing.T) {
	if _, err := newModel(nil, "x", nil); err == nil {
		t.Fatalf("expected error for empty titles")
	}
}

func TestPicker_ViewFitsTerminal(t *testing.T) {
	m := newTestModel(t)
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 30 {
		t.Fatalf("expected 30 lines; got %d", len(lines))
	}
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w != 60 {
			t.Fatalf("line %d width %d; want 60", i, w)
		}
	}
	if !strings.Contains(plainView(m), "Отметьте") || !strings.Contains(plainView(m), laterTitle) {
		t.Fatalf("expected header and later button; view:\n%s", plainView(m))
	}
}
