package cli

import (
	"fmt"

	"datefield-cli/internal/dateinput"
	"datefield-cli/internal/store"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and write ~/.datefield/config.json",
	}
	cmd.AddCommand(newConfigGetCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	cmd.AddCommand(newConfigPathCmd(app))
	return cmd
}

func completeConfigKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return store.ConfigKeys(), cobra.ShellCompDirectiveNoFileComp
}

func newConfigGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "get [key]",
		Short:             "Print one key, or the whole config",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.config()
			if len(args) == 0 {
				return writeOut(cmd, app, cfg)
			}
			v, err := cfg.Get(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"key": args[0], "value": v})
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "set <key> <value>",
		Short:             "Set one key",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := validateConfigValue(app, key, value); err != nil {
				return writeErr(cmd, err)
			}
			cfg := app.config()
			if err := cfg.Set(key, value); err != nil {
				return writeErr(cmd, err)
			}
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			v, _ := cfg.Get(key)
			return writeOut(cmd, app, map[string]any{"key": key, "value": v})
		},
	}
}

// validateConfigValue rejects values the editor would refuse later.
func validateConfigValue(app *App, key, value string) error {
	switch key {
	case "granularity":
		if _, err := dateinput.ParseGranularity(value); err != nil {
			return err
		}
	case "locale":
		t, err := app.locales()
		if err != nil {
			return err
		}
		if _, err := t.Lookup(value); err != nil {
			return fmt.Errorf("%w (run `datefield locales` to list keys)", err)
		}
	}
	return nil
}

func newConfigPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"path": p})
		},
	}
}
