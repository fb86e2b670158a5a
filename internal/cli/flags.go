package cli

import (
	"fmt"
	"strings"
	"time"

	"datefield-cli/internal/dateinput"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// granularityValue is a pflag.Value that rejects anything but date|time|datetime.
type granularityValue struct {
	g *dateinput.Granularity
}

func (v granularityValue) String() string {
	if v.g == nil {
		return ""
	}
	return string(*v.g)
}

func (v granularityValue) Set(s string) error {
	g, err := dateinput.ParseGranularity(s)
	if err != nil {
		return err
	}
	*v.g = g
	return nil
}

func (v granularityValue) Type() string { return "granularity" }

// localeValue is a pflag.Value for locale keys. Only the shape is checked
// at parse time; the key is looked up once extra locales are loaded.
type localeValue struct {
	key *string
}

func (v localeValue) String() string {
	if v.key == nil {
		return ""
	}
	return *v.key
}

func (v localeValue) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("empty locale")
	}
	for _, r := range s {
		if !(r == '-' || r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')) {
			return fmt.Errorf("invalid locale key %q", s)
		}
	}
	*v.key = s
	return nil
}

func (v localeValue) Type() string { return "locale" }

// editorFlags are shared by every command that builds an editor.
type editorFlags struct {
	locale      string
	granularity dateinput.Granularity
	legacyZero  bool
	disabled    bool
	readOnly    bool
}

func (f *editorFlags) register(fs *pflag.FlagSet) {
	f.locale = envOr("DATEFIELD_LOCALE", "")
	if env := envOr("DATEFIELD_GRANULARITY", ""); env != "" {
		if g, err := dateinput.ParseGranularity(env); err == nil {
			f.granularity = g
		}
	}

	fs.Var(localeValue{key: &f.locale}, "locale", "Locale key (default: config, then en-US)")
	fs.Var(granularityValue{g: &f.granularity}, "granularity", "date|time|datetime (default: config, then date)")
	fs.BoolVar(&f.legacyZero, "legacy-zero-rule", false, `Turn a lone "0" in day or month into "1"`)
}

func (f *editorFlags) registerState(fs *pflag.FlagSet) {
	fs.BoolVar(&f.disabled, "disabled", false, "Build the editor disabled")
	fs.BoolVar(&f.readOnly, "read-only", false, "Build the editor read-only")
}

func (f *editorFlags) completeLocales(cmd *cobra.Command, app *App) {
	_ = cmd.RegisterFlagCompletionFunc("locale", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		t, err := app.locales()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return t.Keys(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("granularity", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"date", "time", "datetime"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// editorSettings is the resolved flag > env > config > default view.
type editorSettings struct {
	locale      dateinput.LocaleConfig
	granularity dateinput.Granularity
	rules       dateinput.Rules
	locales     *dateinput.LocaleTable
	loc         *time.Location
	disabled    bool
	readOnly    bool
}

func (f *editorFlags) resolve(cmd *cobra.Command, app *App) (editorSettings, error) {
	cfg := app.config()

	table, err := app.locales()
	if err != nil {
		return editorSettings{}, err
	}
	key := f.locale
	if key == "" {
		key = cfg.Locale
	}
	locale, err := table.Lookup(key)
	if err != nil {
		return editorSettings{}, err
	}

	g := f.granularity
	if g == "" && cfg.Granularity != "" {
		if g, err = dateinput.ParseGranularity(cfg.Granularity); err != nil {
			return editorSettings{}, fmt.Errorf("config granularity: %w", err)
		}
	}
	if g == "" {
		g = dateinput.GranularityDate
	}

	legacy := cfg.LegacyZeroRule
	if cmd.Flags().Changed("legacy-zero-rule") {
		legacy = f.legacyZero
	}

	loc, err := app.location()
	if err != nil {
		return editorSettings{}, err
	}

	return editorSettings{
		locale:      locale,
		granularity: g,
		rules:       dateinput.Rules{LegacyZeroBump: legacy},
		locales:     table,
		loc:         loc,
		disabled:    f.disabled,
		readOnly:    f.readOnly,
	}, nil
}

func (s editorSettings) editorConfig() dateinput.Config {
	return dateinput.Config{
		Locale:      s.locale.Key,
		Granularity: s.granularity,
		Rules:       s.rules,
		Locales:     s.locales,
		Location:    s.loc,
		Disabled:    s.disabled,
		ReadOnly:    s.readOnly,
	}
}

func (s editorSettings) rangeConfig() dateinput.RangeConfig {
	return dateinput.RangeConfig{
		Locale:      s.locale.Key,
		Granularity: s.granularity,
		Rules:       s.rules,
		Locales:     s.locales,
		Location:    s.loc,
		Disabled:    s.disabled,
		ReadOnly:    s.readOnly,
	}
}
