package cli

import (
	"fmt"
	"os"
	"strings"

	"likes-cli/internal/format"
	"likes-cli/internal/logging"
	"likes-cli/internal/store"
	"likes-cli/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	SeedFile   string
	Verbose    bool
	PrettyJSON bool
	Format     string

	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:          "likes",
		Short:        "Pick the categories you are interested in (TUI + scriptable helpers)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive picker
  likes

  # Use your own category list
  likes --seed-file ./categories.yaml

  # Scriptable helpers
  likes categories
  likes layout --container 220 100 100 100
  likes simulate --toggle 0 --toggle 0
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive picker.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := format.Validate(app.Format); err != nil {
			return writeErr(cmd, err)
		}
		log, err := logging.NewCLI(app.Verbose)
		if err != nil {
			return err
		}
		app.log = log
		app.log.Debug("command start", zap.String("command", cmd.CommandPath()))
		return nil
	}

	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		// Sync on stderr fails with EINVAL on some platforms; nothing to do about it.
		_ = app.log.Sync()
	}

	cmd.PersistentFlags().StringVar(&app.SeedFile, "seed-file", envOr("LIKES_SEED_FILE", ""), "YAML/JSON file with category titles (overrides config seedFile)")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("LIKES_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newLayoutCmd(app))
	cmd.AddCommand(newSimulateCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	cfg := loadConfig(app)
	titles, err := store.ResolveSeedTitles(app.SeedFile, cfg)
	if err != nil {
		return writeErr(cmd, err)
	}

	tuiLog, err := logging.NewTUI()
	if err != nil {
		return writeErr(cmd, fmt.Errorf("open tui debug log: %w", err))
	}
	defer func() { _ = tuiLog.Sync() }()

	opts := tui.Options{
		Titles: titles,
		Mouse:  cfg.MouseEnabled(),
		Logger: tuiLog,
	}
	if cfg.TUI != nil {
		opts.Glyphs = cfg.TUI.Glyphs
		opts.Theme = cfg.TUI.Theme
	}

	res, err := tui.Run(opts)
	if err != nil {
		return writeErr(cmd, err)
	}
	return writeOut(cmd, app, envelope(res))
}

// loadConfig never fails: a broken config file is reported and ignored so the picker
// still starts with defaults.
func loadConfig(app *App) *store.GlobalConfig {
	cfg, err := store.LoadConfig()
	if err != nil {
		app.log.Warn("ignoring config", zap.Error(err))
		return &store.GlobalConfig{}
	}
	return cfg
}

func resolveTitles(app *App) ([]string, error) {
	return store.ResolveSeedTitles(app.SeedFile, loadConfig(app))
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envelope(v any) map[string]any {
	return map[string]any{"data": v}
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
