package cli

import (
	"strconv"
	"strings"

	"likes-cli/internal/layout"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLayoutCmd(app *App) *cobra.Command {
	var container int
	cfg := layout.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "layout W[xH] ...",
		Short: "Place chip sizes with the wrap layout and print their frames",
		Example: strings.TrimSpace(`
  likes layout --container 220 100 100 100
  likes layout --container 40 --gap 1 --line-spacing 1 12x1 9x1 20x3
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes := make([]layout.Size, 0, len(args))
			for _, a := range args {
				s, err := parseSize(a)
				if err != nil {
					return writeErr(cmd, err)
				}
				sizes = append(sizes, s)
			}
			frames := layout.Wrap(sizes, container, cfg)
			app.log.Debug("layout",
				zap.Int("container", container),
				zap.Int("sizes", len(sizes)),
				zap.Int("rows", len(layout.Rows(frames))))
			return writeOut(cmd, app, envelope(map[string]any{
				"container": container,
				"config":    cfg,
				"frames":    frames,
				"bounds":    layout.Bounds(frames),
			}))
		},
	}

	cmd.Flags().IntVar(&container, "container", 0, "Container width")
	cmd.Flags().IntVar(&cfg.Gap, "gap", cfg.Gap, "Horizontal gap between chips on a row")
	cmd.Flags().IntVar(&cfg.LineSpacing, "line-spacing", cfg.LineSpacing, "Vertical gap between rows")
	_ = cmd.MarkFlagRequired("container")

	return cmd
}

// parseSize reads "W" or "WxH"; the height defaults to 1.
func parseSize(s string) (layout.Size, error) {
	ws, hs, hasH := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	w, err := strconv.Atoi(ws)
	if err != nil || w < 0 {
		return layout.Size{}, errBadArg(s, "width must be a non-negative integer")
	}
	h := 1
	if hasH {
		h, err = strconv.Atoi(hs)
		if err != nil || h < 0 {
			return layout.Size{}, errBadArg(s, "height must be a non-negative integer")
		}
	}
	return layout.Size{Width: w, Height: h}, nil
}
