package tui

import (
	"time"

	"likes-cli/internal/categories"
	"likes-cli/internal/chip"
	"likes-cli/internal/selection"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	headerText   = "Отметьте то, что вам интересно, чтобы настроить Дзен"
	laterTitle   = "Позже"
	proceedTitle = "Продолжить"

	// Terminal-cell spacing of the screen.
	sideMargin     = 2
	chipGap        = 1
	chipLineGap    = 1
	headerSpacing  = 2
	transitionTime = 200 * time.Millisecond
)

type focusArea int

const (
	focusGrid focusArea = iota
	focusProceed
	focusLater
)

// pressTarget identifies what a mouse press started on.
type pressTarget struct {
	area  focusArea
	index int
}

type transitionDoneMsg struct {
	index int
	seq   int
}

// Result is what the picker reports when it exits.
type Result struct {
	SessionID string   `json:"sessionId"`
	Completed bool     `json:"completed"`
	Skipped   bool     `json:"skipped"`
	Selected  []string `json:"selected"`
	Indices   []int    `json:"indices"`
}

type model struct {
	log       *zap.Logger
	sessionID string

	list    *categories.List
	chips   []*chip.Chip
	later   *chip.Button
	proceed *chip.Button
	cancels []func()

	keys     keyMap
	help     help.Model
	showHelp bool

	width  int
	height int

	focus  focusArea
	cursor int
	press  *pressTarget

	// proceedVisible follows the aggregator's edge events.
	proceedVisible bool

	// transitions holds chips whose swap effect is still playing, keyed by index.
	transitions   map[int]int
	transitionSeq int
	pending       []tea.Cmd

	result Result
	done   bool
}

func newModel(titles []string, sessionID string, log *zap.Logger) (*model, error) {
	if log == nil {
		log = zap.NewNop()
	}
	list, err := categories.New(titles)
	if err != nil {
		return nil, err
	}

	m := &model{
		log:         log.With(zap.String("session", sessionID)),
		sessionID:   sessionID,
		list:        list,
		keys:        defaultKeyMap(),
		help:        help.New(),
		width:       80,
		height:      24,
		transitions: map[int]int{},
		result:      Result{SessionID: sessionID, Selected: []string{}, Indices: []int{}},
	}

	agg, cancel := selection.Bind(list)
	m.cancels = append(m.cancels, cancel)
	m.cancels = append(m.cancels, agg.Subscribe(m.onSelectionEdge))

	for i, it := range list.Items() {
		i := i
		c := chip.New(it.Title, chip.AnimatorFunc(func(from, to chip.State) {
			m.startTransition(i)
		}))
		c.SetSelected(it.Selected)
		c.OnSelectingChanged = func(v bool) {
			m.onChipChanged(i, v)
		}
		m.chips = append(m.chips, c)
	}

	m.later = chip.NewButton(laterTitle, m.skip)
	m.proceed = chip.NewButton(proceedTitle, m.complete)
	return m, nil
}

func (m *model) Init() tea.Cmd {
	m.log.Debug("picker started", zap.Int("categories", len(m.chips)))
	return nil
}

func (m *model) onChipChanged(i int, selected bool) {
	if err := m.list.SetSelected(i, selected); err != nil {
		m.log.Error("apply chip selection", zap.Int("index", i), zap.Error(err))
		return
	}
	m.log.Debug("category toggled",
		zap.Int("index", i),
		zap.String("title", m.chips[i].Title),
		zap.Bool("selected", selected))
}

func (m *model) onSelectionEdge(anySelected bool) {
	m.log.Info("selection changed", zap.Bool("anySelected", anySelected))
	m.proceedVisible = anySelected
	if !anySelected && m.focus == focusProceed {
		m.focus = focusGrid
	}
}

// startTransition is the chip animator: it marks the chip as fading in and queues the
// tick that ends the effect. Nothing waits on it.
func (m *model) startTransition(i int) {
	m.transitionSeq++
	seq := m.transitionSeq
	m.transitions[i] = seq
	m.pending = append(m.pending, tea.Tick(transitionTime, func(time.Time) tea.Msg {
		return transitionDoneMsg{index: i, seq: seq}
	}))
}

func (m *model) skip() {
	m.finish(false, true)
}

func (m *model) complete() {
	if !m.proceedVisible {
		return
	}
	m.finish(true, false)
}

func (m *model) finish(completed, skipped bool) {
	m.result = Result{
		SessionID: m.sessionID,
		Completed: completed,
		Skipped:   skipped,
		Selected:  m.list.SelectedTitles(),
		Indices:   m.list.Selected(),
	}
	if skipped {
		m.result.Selected = []string{}
		m.result.Indices = []int{}
	}
	m.done = true
	m.log.Info("picker finished",
		zap.Bool("completed", completed),
		zap.Bool("skipped", skipped),
		zap.Strings("selected", m.result.Selected))
}

func (m *model) close() {
	for _, c := range m.cancels {
		c()
	}
	m.cancels = nil
}

// takePending drains commands queued by fire-and-forget effects.
func (m *model) takePending() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}
