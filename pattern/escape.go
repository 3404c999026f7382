package pattern

import "strings"

// Escape sequences are replaced by sentinel tokens before any structural
// parsing so that escaped characters never match the grammar. The token
// format (#xyz#) is chosen for a low collision probability with wordlist
// content. The backslash pair must be rewritten first.
var escapeSequences = []struct{ from, to string }{
	{`\\`, "#sla#"},
	{`\+`, "#pls#"},
	{`\{`, "#lbr#"},
	{`\}`, "#rbr#"},
	{`\[`, "#lba#"},
	{`\]`, "#rba#"},
	{`\(`, "#lpa#"},
	{`\)`, "#rpa#"},
	{`\|`, "#pip#"},
}

// valueEscapes maps raw reserved characters to their sentinel tokens. It is
// applied to freshly resolved placeholder values so that, say, a literal "+"
// inside a generated word is never parsed as a modifier separator later on.
var valueEscapes = []struct{ from, to string }{
	{`\`, "#sla#"},
	{"+", "#pls#"},
	{"{", "#lbr#"},
	{"}", "#rbr#"},
	{"[", "#lba#"},
	{"]", "#rba#"},
	{"(", "#lpa#"},
	{")", "#rpa#"},
	{"|", "#pip#"},
}

// Escape replaces backslash escape sequences in a raw pattern with sentinel
// tokens.
func Escape(s string) string {
	for _, e := range escapeSequences {
		s = strings.ReplaceAll(s, e.from, e.to)
	}
	return s
}

// EscapeValue replaces reserved characters in a resolved value with sentinel
// tokens.
func EscapeValue(s string) string {
	for _, e := range valueEscapes {
		s = strings.ReplaceAll(s, e.from, e.to)
	}
	return s
}

// Unescape substitutes sentinel tokens back to their literal characters. It
// is the inverse of Escape and EscapeValue on text that does not itself
// contain sentinel tokens.
func Unescape(s string) string {
	for _, e := range valueEscapes {
		s = strings.ReplaceAll(s, e.to, e.from)
	}
	return s
}
