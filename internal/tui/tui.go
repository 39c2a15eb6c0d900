package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Options struct {
	Titles []string
	// Glyphs and Theme are config values; env vars still win.
	Glyphs string
	Theme  string
	Mouse  bool
	Logger *zap.Logger
}

// Run shows the picker until the user finishes, skips or quits.
func Run(opts Options) (Result, error) {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m, err := newModel(opts.Titles, uuid.NewString(), opts.Logger)
	if err != nil {
		return Result{}, err
	}
	defer m.close()

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return Result{}, err
	}
	fm, ok := final.(*model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected final model %T", final)
	}
	return fm.result, nil
}
