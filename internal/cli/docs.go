package cli

import (
	"fmt"

	"likes-cli/internal/docs"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var (
		raw    bool
		render bool
		width  int
	)

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show the built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, envelope(map[string]any{"topics": docs.Topics()}))
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, unknownTopicError{topic: topic})
			}

			switch {
			case raw:
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			case render:
				style := "dark"
				if !termenv.HasDarkBackground() {
					style = "light"
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), docs.Render(body, width, style))
				return err
			}

			return writeOut(cmd, app, envelope(map[string]any{"topic": topic, "markdown": body}))
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no envelope)")
	cmd.Flags().BoolVar(&render, "render", false, "Print markdown rendered for the terminal")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for --render")

	return cmd
}
