package cli

import (
	"datefield-cli/internal/dateinput"
	"datefield-cli/internal/store"

	"github.com/spf13/cobra"
)

type rangeOutput struct {
	Locale      string     `json:"locale"`
	Granularity string     `json:"granularity"`
	From        pickOutput `json:"from"`
	To          pickOutput `json:"to"`
	Ordered     bool       `json:"ordered"`
}

func rangeResultOutput(s editorSettings, r dateinput.RangeResult) rangeOutput {
	return rangeOutput{
		Locale:      s.locale.Key,
		Granularity: string(s.granularity),
		From:        resultOutput(s, r.From),
		To:          resultOutput(s, r.To),
		Ordered:     r.Ordered(),
	}
}

func newRangeCmd(app *App) *cobra.Command {
	var ef editorFlags
	var from, to, fromLabel, toLabel string
	var altScreen, noHistory bool

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Pick a start/end pair interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ef.resolve(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg := s.rangeConfig()
			if cfg.DefaultFrom, err = parseValue(from, s.loc, nowFunc()); err != nil {
				return writeErr(cmd, errBadValue("from", from, err))
			}
			if cfg.DefaultTo, err = parseValue(to, s.loc, nowFunc()); err != nil {
				return writeErr(cmd, errBadValue("to", to, err))
			}

			opts := tuiOptions(app, altScreen, cmd.Flags().Changed("alt-screen"))
			opts.FromLabel, opts.ToLabel = fromLabel, toLabel
			out, err := runRange(cfg, opts)
			if err != nil {
				return writeErr(cmd, err)
			}
			if out.Canceled {
				return writeErr(cmd, errCanceled)
			}

			res := rangeResultOutput(s, out.Result)
			if !noHistory && (out.Result.From.IsValid() || out.Result.To.IsValid()) {
				recordHistory(cmd, app, store.Entry{
					Command:     "range",
					Locale:      res.Locale,
					Granularity: res.Granularity,
					Value:       res.From.Text,
					To:          res.To.Text,
				})
			}
			return writeOut(cmd, app, res)
		},
	}

	ef.register(cmd.Flags())
	ef.registerState(cmd.Flags())
	ef.completeLocales(cmd, app)
	cmd.Flags().StringVar(&from, "from", "", "Initial start value")
	cmd.Flags().StringVar(&to, "to", "", "Initial end value")
	cmd.Flags().StringVar(&fromLabel, "from-label", "", "Start field label")
	cmd.Flags().StringVar(&toLabel, "to-label", "", "End field label")
	cmd.Flags().BoolVar(&altScreen, "alt-screen", false, "Run full-screen (default: config tui.altScreen)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the pick")

	return cmd
}
