package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"datefield-cli/internal/dateinput"
	"datefield-cli/internal/format"
	"datefield-cli/internal/store"

	"github.com/spf13/cobra"
)

type App struct {
	Format      string
	PrettyJSON  bool
	LocalesFile string
	HistoryDB   string
	TZ          string

	cfg *store.GlobalConfig
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "datefield",
		Short:        "Segmented date/time entry for the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick a date interactively (prints JSON on stdout)
  datefield pick --locale en-GB

  # Pick a start/end pair
  datefield range --granularity datetime

  # Replay keystrokes without a terminal
  datefield type --keys "1 2 2 5 2 0 2 4"

  # Start from a value (shortcut for: datefield pick --value 2024-12-25)
  datefield 2024-12-25
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !format.Valid(app.Format) {
			return writeErr(cmd, fmt.Errorf("%w: %s (expected %s)", format.ErrUnknownFormat, app.Format, strings.Join(format.Formats, "|")))
		}
		cfg, err := store.LoadConfig()
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		return nil
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("DATEFIELD_FORMAT", "json"), "Output format (json|edn|yaml)")
	cmd.PersistentFlags().StringVar(&app.LocalesFile, "locales-file", envOr("DATEFIELD_LOCALES_FILE", ""), "YAML file with extra locale definitions")
	cmd.PersistentFlags().StringVar(&app.HistoryDB, "history-db", envOr("DATEFIELD_HISTORY_DB", ""), "Pick history database (default: ~/.datefield/history.sqlite)")
	cmd.PersistentFlags().StringVar(&app.TZ, "tz", envOr("DATEFIELD_TZ", ""), "IANA time zone for composed values (default: local)")

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return format.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newRangeCmd(app))
	cmd.AddCommand(newTypeCmd(app))
	cmd.AddCommand(newLocalesCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func (app *App) config() *store.GlobalConfig {
	if app.cfg == nil {
		app.cfg = &store.GlobalConfig{}
	}
	return app.cfg
}

// locales returns the built-in table merged with the configured YAML file.
func (app *App) locales() (*dateinput.LocaleTable, error) {
	t := dateinput.BuiltinLocales()
	path := app.LocalesFile
	if path == "" {
		path = app.config().LocalesFile
	}
	if path == "" {
		return t, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := t.LoadLocales(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (app *App) location() (*time.Location, error) {
	tz := strings.TrimSpace(app.TZ)
	if tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("--tz: %w", err)
	}
	return loc, nil
}

func (app *App) historyPath() (string, error) {
	if app.HistoryDB != "" {
		return app.HistoryDB, nil
	}
	if p := app.config().HistoryDB; p != "" {
		return p, nil
	}
	return store.DefaultHistoryPath()
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// writeOut wraps v in the {"data": ...} envelope every command prints.
func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), map[string]any{"data": v}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
