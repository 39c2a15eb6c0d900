package tui

import (
	"likes-cli/internal/layout"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type pressable interface {
	Press()
	Release(inside bool)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(msg.Width-2*sideMargin, 0)
		return m, nil

	case transitionDoneMsg:
		if m.transitions[msg.index] == msg.seq {
			delete(m.transitions, msg.index)
		}
		return m, nil

	case tea.KeyMsg:
		m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	if m.done {
		m.close()
		return m, tea.Quit
	}
	return m, m.takePending()
}

func (m *model) handleKey(msg tea.KeyMsg) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
			m.help.ShowAll = false
		}
		return
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.log.Info("picker cancelled")
		m.done = true
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.help.ShowAll = true
	case key.Matches(msg, m.keys.Next):
		m.cycleFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Toggle):
		m.activateFocused()
	case m.focus != focusGrid:
		if key.Matches(msg, m.keys.Up) {
			m.focus = focusGrid
		}
	case key.Matches(msg, m.keys.Left):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursor = min(m.cursor+1, len(m.chips)-1)
	case key.Matches(msg, m.keys.Up):
		_, frames := m.layoutGrid()
		m.cursor = layout.Vertical(frames, m.cursor, -1)
	case key.Matches(msg, m.keys.Down):
		_, frames := m.layoutGrid()
		next := layout.Vertical(frames, m.cursor, 1)
		if next == m.cursor && m.proceedVisible {
			m.focus = focusProceed
			return
		}
		m.cursor = next
	}
}

func (m *model) activateFocused() {
	switch m.focus {
	case focusGrid:
		if m.cursor >= 0 && m.cursor < len(m.chips) {
			m.chips[m.cursor].Tap()
		}
	case focusProceed:
		m.proceed.Activate()
	case focusLater:
		m.later.Activate()
	}
}

// cycleFocus walks grid -> proceed (when visible) -> later.
func (m *model) cycleFocus(dir int) {
	order := []focusArea{focusGrid}
	if m.proceedVisible {
		order = append(order, focusProceed)
	}
	order = append(order, focusLater)

	cur := 0
	for i, f := range order {
		if f == m.focus {
			cur = i
		}
	}
	m.focus = order[(cur+dir+len(order))%len(order)]
}

func (m *model) target(p pressTarget) pressable {
	switch p.area {
	case focusProceed:
		return m.proceed
	case focusLater:
		return m.later
	default:
		return m.chips[p.index]
	}
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.showHelp {
		return
	}
	hit := m.screen().hit(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || hit == nil {
			return
		}
		m.press = hit
		m.focus = hit.area
		if hit.area == focusGrid {
			m.cursor = hit.index
		}
		m.target(*hit).Press()
		m.log.Debug("press", zap.Int("area", int(hit.area)), zap.Int("index", hit.index))

	case tea.MouseActionRelease:
		if m.press == nil {
			return
		}
		p := *m.press
		m.press = nil
		m.target(p).Release(hit != nil && *hit == p)
	}
}
