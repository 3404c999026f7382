// Package pattern parses the password template grammar: bracketed
// placeholders with parameters, percentage qualifiers, chained modifiers and
// alternatives, plus the escape sentinels that protect reserved characters
// during resolution.
package pattern

import (
	"strconv"
	"strings"
)

// NoQualifier marks an absent [N] qualifier.
const NoQualifier = -1

// Modifier is one parsed +name(params)[N] segment of a placeholder.
type Modifier struct {
	Name      string
	Params    []string
	Qualifier int
}

// Content is the parsed form of the text between one matched {} pair.
// Alternatives is non-nil when the content is a top-level a|b|c set; in that
// case no other field is populated.
type Content struct {
	Name         string
	Params       []string
	Qualifier    int
	Modifiers    []Modifier
	Alternatives []string
}

// ParseContent parses the text between a matched brace pair.
//
// A top-level | splits the content into alternatives and short-circuits all
// other parsing. Otherwise the content is split on top-level + into the base
// and its modifier chain, and each part is stripped of its optional [N]
// qualifier and (...) parameter list. Separators nested inside parentheses
// are not split on.
func ParseContent(content string) Content {
	c := Content{Qualifier: NoQualifier}

	if alts := splitTop(content, '|'); len(alts) > 1 {
		c.Alternatives = alts
		return c
	}

	parts := splitTop(content, '+')
	base := parts[0]

	for _, spec := range parts[1:] {
		c.Modifiers = append(c.Modifiers, ParseModifier(spec))
	}

	base, c.Qualifier = cutQualifier(base)
	c.Name, c.Params = cutParams(base)
	c.Name = strings.TrimSpace(c.Name)
	return c
}

// ParseModifier parses a single modifier spec such as `propercase[25]` or
// `replace(" ","-")`.
func ParseModifier(spec string) Modifier {
	m := Modifier{Qualifier: NoQualifier}
	spec, m.Qualifier = cutQualifier(spec)
	m.Name, m.Params = cutParams(spec)
	return m
}

// cutQualifier removes the first [N] pair from s and returns the remainder
// and the parsed qualifier. A malformed number still removes the bracket span
// but leaves the qualifier absent.
func cutQualifier(s string) (string, int) {
	start := strings.IndexByte(s, '[')
	if start == -1 {
		return s, NoQualifier
	}
	end := strings.IndexByte(s[start:], ']')
	if end == -1 {
		return s, NoQualifier
	}
	end += start

	qualifier := NoQualifier
	if n, err := strconv.Atoi(s[start+1 : end]); err == nil {
		qualifier = n
	}
	return s[:start] + s[end+1:], qualifier
}

// cutParams splits a name(p1, p2) form into the name and its parameter list.
// Parameters are trimmed and unwrapped of surrounding double quotes. Only the
// first parenthesis pair is honored.
func cutParams(s string) (string, []string) {
	start := strings.IndexByte(s, '(')
	if start == -1 {
		return s, nil
	}
	end := strings.IndexByte(s[start:], ')')
	if end == -1 {
		return s, nil
	}
	end += start

	var params []string
	for _, p := range strings.Split(s[start+1:end], ",") {
		params = append(params, strings.Trim(strings.TrimSpace(p), `"`))
	}
	return s[:start], params
}

// splitTop splits content on sep, ignoring separators nested inside
// parentheses. When no top-level separator exists the content is returned as
// a single part.
func splitTop(content string, sep byte) []string {
	var parts []string
	var current strings.Builder
	depth := 0

	for i := 0; i < len(content); i++ {
		ch := content[i]
		switch {
		case ch == '(':
			depth++
			current.WriteByte(ch)
		case ch == ')':
			depth--
			current.WriteByte(ch)
		case ch == sep && depth == 0:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	if len(parts) == 0 {
		return []string{content}
	}
	return parts
}
