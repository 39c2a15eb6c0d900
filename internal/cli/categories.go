package cli

import (
	"likes-cli/internal/categories"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category titles the picker would show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			titles, err := resolveTitles(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			list, err := categories.New(titles)
			if err != nil {
				return writeErr(cmd, err)
			}
			app.log.Debug("categories resolved")
			return writeOut(cmd, app, envelope(map[string]any{"categories": list.Items()}))
		},
	}
}
