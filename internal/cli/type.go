package cli

import (
	"strings"

	"datefield-cli/internal/dateinput"
	"datefield-cli/internal/segment"
	"datefield-cli/internal/tui"

	"github.com/spf13/cobra"
)

type typeEvent struct {
	Step  int    `json:"step"`
	Token string `json:"token"`
	Value any    `json:"value"`
}

type typeOutput struct {
	Locale      string      `json:"locale"`
	Granularity string      `json:"granularity"`
	Events      []typeEvent `json:"events"`
	Final       any         `json:"final"`
	Focused     string      `json:"focused,omitempty"`
}

// keyTarget is an editor or a range driven by scripted tokens.
type keyTarget interface {
	dateinput.Handle
	HandleKey(segment.Key) bool
	InsertText(string) bool
}

func newTypeCmd(app *App) *cobra.Command {
	var ef editorFlags
	var keys, value, to string
	var asRange bool

	cmd := &cobra.Command{
		Use:   "type",
		Short: "Replay key tokens through an editor and print every emitted value",
		Long: strings.TrimSpace(`
Tokens are separated by spaces. A single character is one key press; longer
runs of digits are pasted as text. Named keys:

  up down left right backspace (bs) delete (del) tab shift+tab (btab)
  clear   (clear every segment and refocus)
  focus   (focus the first incomplete segment)
`),
		Example: strings.TrimSpace(`
  datefield type --keys "1 2 2 5 2 0 2 4"
  datefield type --locale en-GB --keys "3 1 0 2 2024"
  datefield type --range --keys "01012024 31122024"
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ef.resolve(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			seed, err := parseValue(value, s.loc, nowFunc())
			if err != nil {
				return writeErr(cmd, errBadValue("value", value, err))
			}
			seedTo, err := parseValue(to, s.loc, nowFunc())
			if err != nil {
				return writeErr(cmd, errBadValue("to", to, err))
			}

			out := typeOutput{Locale: s.locale.Key, Granularity: string(s.granularity), Events: []typeEvent{}}
			step, token := 0, ""
			record := func(v any) {
				out.Events = append(out.Events, typeEvent{Step: step, Token: token, Value: v})
			}

			var target keyTarget
			var final func() any
			var focused func() string
			if asRange {
				cfg := s.rangeConfig()
				cfg.DefaultFrom, cfg.DefaultTo = seed, seedTo
				cfg.Now = nowFunc
				cfg.OnValueChange = func(r dateinput.RangeResult) { record(r) }
				r, err := dateinput.NewRange(cfg)
				if err != nil {
					return writeErr(cmd, err)
				}
				defer r.Close()
				target = r
				final = func() any { return r.Value() }
				focused = func() string {
					if id, ok := r.From.FocusedID(); ok {
						return "from." + string(id)
					}
					if id, ok := r.To.FocusedID(); ok {
						return "to." + string(id)
					}
					return ""
				}
			} else {
				cfg := s.editorConfig()
				cfg.DefaultValue = seed
				cfg.Now = nowFunc
				cfg.OnValueChange = func(r dateinput.Result) { record(r) }
				e, err := dateinput.New(cfg)
				if err != nil {
					return writeErr(cmd, err)
				}
				defer e.Close()
				target = e
				final = func() any { return e.Value() }
				focused = func() string {
					if id, ok := e.FocusedID(); ok {
						return string(id)
					}
					return ""
				}
			}

			target.Focus()
			for i, st := range tui.SplitKeyScript(keys) {
				tok := st.Word
				step, token = i+1, tok
				if st.Quoted {
					target.InsertText(tok)
					continue
				}
				switch tok {
				case "clear":
					target.Clear()
					target.Focus()
					continue
				case "focus":
					target.Focus()
					continue
				}
				k, text, ok := tui.ParseKeyToken(tok)
				if !ok {
					return writeErr(cmd, unknownTokenError{index: i + 1, token: tok})
				}
				if text != "" {
					target.InsertText(text)
					continue
				}
				target.HandleKey(k)
			}

			out.Final = final()
			out.Focused = focused()
			return writeOut(cmd, app, out)
		},
	}

	ef.register(cmd.Flags())
	ef.registerState(cmd.Flags())
	ef.completeLocales(cmd, app)
	cmd.Flags().StringVar(&keys, "keys", "", `Space-separated key tokens (e.g. "1 2 tab 2024"); quoted words are pasted`)
	cmd.Flags().StringVar(&value, "value", "", "Initial value (start value with --range)")
	cmd.Flags().StringVar(&to, "to", "", "Initial end value (with --range)")
	cmd.Flags().BoolVar(&asRange, "range", false, "Drive a start/end pair instead of one editor")
	_ = cmd.MarkFlagRequired("keys")

	return cmd
}
