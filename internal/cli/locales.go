package cli

import (
	"strings"

	"datefield-cli/internal/dateinput"

	"github.com/spf13/cobra"
)

type localeOutput struct {
	Key       string                  `json:"key"`
	Pattern   string                  `json:"pattern"`
	Separator string                  `json:"separator"`
	Segments  []dateinput.SegmentSpec `json:"segments"`
	Default   bool                    `json:"default,omitempty"`
}

func localePattern(c dateinput.LocaleConfig) string {
	sep := c.Separator
	if sep == "" {
		sep = "/"
	}
	parts := make([]string, 0, len(c.Segments))
	for _, s := range c.Segments {
		parts = append(parts, s.Placeholder)
	}
	return strings.Join(parts, sep)
}

func newLocalesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the locale table (built-in plus --locales-file)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.locales()
			if err != nil {
				return writeErr(cmd, err)
			}
			def := app.config().Locale
			if def == "" {
				def = dateinput.DefaultLocale
			}
			out := []localeOutput{}
			for _, c := range t.All() {
				sep := c.Separator
				if sep == "" {
					sep = "/"
				}
				out = append(out, localeOutput{
					Key:       c.Key,
					Pattern:   localePattern(c),
					Separator: sep,
					Segments:  c.Segments,
					Default:   c.Key == def,
				})
			}
			return writeOut(cmd, app, out)
		},
	}
}
