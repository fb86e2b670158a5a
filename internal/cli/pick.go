package cli

import (
	"fmt"
	"time"

	"datefield-cli/internal/dateinput"
	"datefield-cli/internal/store"
	"datefield-cli/internal/tui"

	"github.com/spf13/cobra"
)

// Swapped in tests; the real pickers need a terminal.
var (
	runPick  = tui.RunPick
	runRange = tui.RunRange
	nowFunc  = time.Now
)

type pickOutput struct {
	Locale      string           `json:"locale"`
	Granularity string           `json:"granularity"`
	Kind        string           `json:"kind"`
	Value       dateinput.Result `json:"value"`
	Text        string           `json:"text"`
}

func resultOutput(s editorSettings, r dateinput.Result) pickOutput {
	return pickOutput{
		Locale:      s.locale.Key,
		Granularity: string(s.granularity),
		Kind:        r.Kind.String(),
		Value:       r,
		Text:        tui.FormatResult(r, s.granularity),
	}
}

func tuiOptions(app *App, altScreen bool, altChanged bool) tui.Options {
	cfg := app.config()
	alt := cfg.TUI != nil && cfg.TUI.AltScreen
	if altChanged {
		alt = altScreen
	}
	return tui.Options{AltScreen: alt, Theme: cfg.Theme()}
}

func newPickCmd(app *App) *cobra.Command {
	var ef editorFlags
	var value, def, label string
	var altScreen, noHistory bool

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a single date, time or date/time interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ef.resolve(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg := s.editorConfig()
			if cfg.Value, err = parseValue(value, s.loc, nowFunc()); err != nil {
				return writeErr(cmd, errBadValue("value", value, err))
			}
			if cfg.DefaultValue, err = parseValue(def, s.loc, nowFunc()); err != nil {
				return writeErr(cmd, errBadValue("default", def, err))
			}

			opts := tuiOptions(app, altScreen, cmd.Flags().Changed("alt-screen"))
			opts.Label = label
			out, err := runPick(cfg, opts)
			if err != nil {
				return writeErr(cmd, err)
			}
			if out.Canceled {
				return writeErr(cmd, errCanceled)
			}

			res := resultOutput(s, out.Result)
			if !noHistory && out.Result.IsValid() {
				recordHistory(cmd, app, store.Entry{
					Command:     "pick",
					Locale:      res.Locale,
					Granularity: res.Granularity,
					Value:       res.Text,
				})
			}
			return writeOut(cmd, app, res)
		},
	}

	ef.register(cmd.Flags())
	ef.registerState(cmd.Flags())
	ef.completeLocales(cmd, app)
	cmd.Flags().StringVar(&value, "value", "", "Initial value (YYYY-MM-DD, YYYY-MM-DD HH:MM, HH:MM or RFC3339)")
	cmd.Flags().StringVar(&def, "default", "", "Default value used when --value is not given")
	cmd.Flags().StringVar(&label, "label", "", "Field label")
	cmd.Flags().BoolVar(&altScreen, "alt-screen", false, "Run full-screen (default: config tui.altScreen)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the pick")

	return cmd
}

// recordHistory is best-effort: a broken history db must not lose the pick.
func recordHistory(cmd *cobra.Command, app *App, e store.Entry) {
	path, err := app.historyPath()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "history:", err)
		return
	}
	ctx := cmd.Context()
	h, err := store.OpenHistory(ctx, path)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "history:", err)
		return
	}
	defer h.Close()
	if err := h.Record(ctx, &e); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "history:", err)
	}
}
