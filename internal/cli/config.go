package cli

import (
	"likes-cli/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and update ~/.likes/config.json",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	cmd.AddCommand(newConfigKeysCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the config file and where it lives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, envelope(map[string]any{
				"path":   path,
				"config": cfg,
			}))
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> [value]",
		Short: "Set one key (no value clears it)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], ""
			if len(args) == 2 {
				value = args[1]
			}

			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := cfg.Set(key, value); err != nil {
				return writeErr(cmd, err)
			}
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			app.log.Info("config updated", zap.String("key", key), zap.String("value", value))
			return writeOut(cmd, app, envelope(map[string]any{"config": cfg}))
		},
	}
}

func newConfigKeysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the keys accepted by config set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, envelope(map[string]any{"keys": store.ConfigKeys()}))
		},
	}
}
