package format

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// WriteEDN writes an EDN rendering of v.
//
// Values are shaped by their JSON encoding. Object keys become kebab-case
// keywords (createdAt -> :created-at) and RFC3339 timestamps become #inst
// literals, so picked values read back as instants in Clojure tooling.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	x, err := viaJSON(v)
	if err != nil {
		return err
	}
	var sb strings.Builder
	p := ednPrinter{sb: &sb, pretty: pretty}
	p.value(x, 0)
	sb.WriteByte('\n')
	_, err = io.WriteString(w, sb.String())
	return err
}

type ednPrinter struct {
	sb     *strings.Builder
	pretty bool
}

func (p ednPrinter) value(v any, depth int) {
	switch t := v.(type) {
	case nil:
		p.sb.WriteString("nil")
	case bool:
		p.sb.WriteString(strconv.FormatBool(t))
	case string:
		if ts, ok := parseInstant(t); ok {
			p.sb.WriteString("#inst ")
			p.sb.WriteString(strconv.Quote(ts.Format(time.RFC3339Nano)))
			return
		}
		p.sb.WriteString(strconv.Quote(t))
	case float64:
		// JSON numbers decode as float64; integral ones print without a fraction.
		if t == float64(int64(t)) {
			p.sb.WriteString(strconv.FormatInt(int64(t), 10))
			return
		}
		p.sb.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case []any:
		p.seq('[', ']', len(t), depth, func(i int) { p.value(t[i], depth+1) })
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		p.seq('{', '}', len(keys), depth, func(i int) {
			p.sb.WriteString(keyword(keys[i]))
			p.sb.WriteByte(' ')
			p.value(t[keys[i]], depth+1)
		})
	default:
		p.sb.WriteString("nil")
	}
}

// seq writes n elements between open and close, one per line when pretty.
func (p ednPrinter) seq(open, close byte, n, depth int, elem func(int)) {
	p.sb.WriteByte(open)
	for i := 0; i < n; i++ {
		switch {
		case p.pretty:
			p.sb.WriteByte('\n')
			p.sb.WriteString(strings.Repeat("  ", depth+1))
		case i > 0:
			p.sb.WriteByte(' ')
		}
		elem(i)
	}
	if p.pretty && n > 0 {
		p.sb.WriteByte('\n')
		p.sb.WriteString(strings.Repeat("  ", depth))
	}
	p.sb.WriteByte(close)
}

func parseInstant(s string) (time.Time, bool) {
	// Cheap precheck: instants start with a four-digit year and a dash.
	if len(s) < 20 || s[4] != '-' {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// keyword turns a JSON key into an EDN keyword: camelCase becomes
// kebab-case and characters outside the keyword alphabet become dashes.
func keyword(k string) string {
	var sb strings.Builder
	sb.WriteByte(':')
	prevLower := false
	for _, r := range strings.TrimSpace(k) {
		switch {
		case unicode.IsUpper(r):
			if prevLower {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			prevLower = false
		case unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("*+!-_?.", r):
			sb.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		default:
			sb.WriteByte('-')
			prevLower = false
		}
	}
	if sb.Len() == 1 {
		sb.WriteByte('_')
	}
	return sb.String()
}
