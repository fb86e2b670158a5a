package cli

import (
	"fmt"

	"datefield-cli/internal/docs"
	"datefield-cli/internal/tui"

	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw, asJSON bool
	var width int

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show the built-in guides",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return docs.Topics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				topics := []map[string]string{}
				for _, t := range docs.Topics() {
					topics = append(topics, map[string]string{"topic": t, "title": docs.Title(t)})
				}
				return writeOut(cmd, app, map[string]any{"topics": topics})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `datefield docs` to list topics)", topic))
			}

			switch {
			case asJSON:
				return writeOut(cmd, app, map[string]any{"topic": topic, "markdown": body})
			case raw:
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			default:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMarkdown(body, width))
				return err
			}
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the markdown in the output envelope")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered output")

	return cmd
}
