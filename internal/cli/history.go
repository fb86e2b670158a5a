package cli

import (
	"datefield-cli/internal/store"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently submitted picks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.historyPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			h, err := store.OpenHistory(cmd.Context(), path)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer h.Close()

			entries, err := h.Recent(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, entries)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries (0 = all)")
	return cmd
}
