package tui

import "unicode"

// ScriptToken is one word of a key script. Quoted words are pasted text.
type ScriptToken struct {
	Word   string
	Quoted bool
}

// SplitKeyScript splits a key script into words. Single and double quotes
// group a word that is then delivered as pasted text ('12/25/2024'); a
// backslash escapes the next rune outside single quotes.
func SplitKeyScript(s string) []ScriptToken {
	var out []ScriptToken
	var cur []rune
	inSingle, inDouble, escaped, quoted := false, false, false, false

	flush := func() {
		if len(cur) == 0 && !quoted {
			return
		}
		out = append(out, ScriptToken{Word: string(cur), Quoted: quoted})
		cur = cur[:0]
		quoted = false
	}

	for _, r := range s {
		switch {
		case escaped:
			cur = append(cur, r)
			escaped = false
		case r == '\\' && !inSingle:
			escaped = true
		case r == '\'' && !inDouble:
			inSingle = !inSingle
			quoted = true
		case r == '"' && !inSingle:
			inDouble = !inDouble
			quoted = true
		case !inSingle && !inDouble && unicode.IsSpace(r):
			flush()
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return out
}
