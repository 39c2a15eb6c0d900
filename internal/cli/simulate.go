package cli

import (
	"likes-cli/internal/categories"
	"likes-cli/internal/selection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type edgeEvent struct {
	Step        int  `json:"step"`
	Index       int  `json:"index"`
	AnySelected bool `json:"anySelected"`
}

func newSimulateCmd(app *App) *cobra.Command {
	var toggles []int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Apply taps to a fresh category list and report the selection events",
		Long: "Toggles the given indices in order, exactly like taps in the picker, and prints the final\n" +
			"items together with every \"any selected\" change the proceed button would react to.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			titles, err := resolveTitles(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			list, err := categories.New(titles)
			if err != nil {
				return writeErr(cmd, err)
			}

			agg, cancel := selection.Bind(list)
			defer cancel()

			events := []edgeEvent{}
			step, index := 0, 0
			stop := agg.Subscribe(func(v bool) {
				events = append(events, edgeEvent{Step: step, Index: index, AnySelected: v})
			})
			defer stop()

			for i, idx := range toggles {
				step, index = i, idx
				if err := list.Toggle(idx); err != nil {
					return writeErr(cmd, err)
				}
				app.log.Debug("toggle", zap.Int("step", i), zap.Int("index", idx))
			}

			return writeOut(cmd, app, envelope(map[string]any{
				"items":       list.Items(),
				"selected":    list.SelectedTitles(),
				"anySelected": agg.Value(),
				"events":      events,
			}))
		},
	}

	cmd.Flags().IntSliceVar(&toggles, "toggle", nil, "Index to toggle (repeatable, applied in order)")

	return cmd
}
