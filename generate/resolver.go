package generate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/dhamidi/pafw/pattern"
	"github.com/dhamidi/pafw/random"
)

// ErrTooDeeplyNested is returned when placeholder nesting exceeds the
// resolver's depth bound. Nesting depth is attacker-controlled input, so the
// resolver refuses to recurse without limit.
var ErrTooDeeplyNested = errors.New("pattern too deeply nested")

var qualifierSpan = regexp.MustCompile(`\[\d+\]`)

// resolve scans an escaped pattern left to right and expands every
// brace-matched placeholder, innermost first. Literal text, including any
// unmatched opening brace, is passed through unchanged.
func (g *Generator) resolve(p string, depth int) (string, error) {
	if depth > g.maxDepth {
		return "", ErrTooDeeplyNested
	}

	var out strings.Builder

	i := 0
	for i < len(p) {
		if p[i] != '{' {
			out.WriteByte(p[i])
			i++
			continue
		}

		j, ok := matchBrace(p, i)
		if !ok {
			out.WriteByte('{')
			i++
			continue
		}

		// Inner placeholders evaluate before the outer one.
		processed, err := g.resolve(p[i+1:j-1], depth+1)
		if err != nil {
			return "", err
		}

		value, err := g.resolveContent(processed, depth)
		if err != nil {
			return "", err
		}

		// A [N] qualifier directly after the brace drops the value
		// with probability 100-N.
		if j < len(p) && p[j] == '[' {
			if end := strings.IndexByte(p[j:], ']'); end != -1 {
				if q, err := strconv.Atoi(p[j+1 : j+end]); err == nil && random.Rand(99, 0, 1) >= q {
					value = ""
				}
				j += end + 1
			}
		}

		for j < len(p) && p[j] == '+' {
			var modStr string
			modStr, j = scanModifier(p, j)
			if modStr == "" {
				continue
			}

			m := pattern.ParseModifier(modStr)
			if m.Qualifier != pattern.NoQualifier && random.Rand(99, 0, 1) >= m.Qualifier {
				continue
			}

			params, err := g.resolveParams(m.Params, depth)
			if err != nil {
				return "", err
			}
			for k := range params {
				params[k] = pattern.Unescape(params[k])
			}

			modified, err := applyModifier(pattern.Unescape(value), m.Name, params)
			if err != nil {
				return "", err
			}
			value = pattern.EscapeValue(modified)
		}

		out.WriteString(value)
		i = j
	}

	return out.String(), nil
}

// matchBrace finds the matching closing brace for the opening brace at
// position start, honoring nesting. It returns the position just past the
// closing brace.
func matchBrace(p string, start int) (int, bool) {
	depth := 1
	for j := start + 1; j < len(p); j++ {
		switch p[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j + 1, true
			}
		}
	}
	return 0, false
}

// scanModifier extracts the modifier spec starting at the '+' at position j.
// The spec runs to the next unescaped '+', '{', whitespace or '.' at
// parenthesis depth zero.
func scanModifier(p string, j int) (string, int) {
	end := j + 1
	parenDepth := 0
	for end < len(p) {
		switch ch := p[end]; {
		case ch == '(':
			parenDepth++
		case ch == ')':
			parenDepth--
		case parenDepth == 0 && (ch == '+' || ch == '{' || ch == ' ' || ch == '\t' || ch == '.'):
			return p[j+1 : end], end
		}
		end++
	}
	return p[j+1 : end], end
}

// resolveContent turns the (already recursively resolved) content of one
// placeholder into its value and records it as the next backreference.
func (g *Generator) resolveContent(content string, depth int) (string, error) {
	// Backreferences bypass all other handling; a missing or malformed
	// key resolves to the empty string.
	if rest, ok := strings.CutPrefix(content, "$W"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return "", nil
		}
		return g.backrefs[n], nil
	}

	parsed := pattern.ParseContent(content)

	if parsed.Alternatives != nil {
		choice := pickAlternative(parsed.Alternatives)
		if strings.Contains(choice, "{") {
			return g.resolve(choice, depth+1)
		}
		return choice, nil
	}

	if parsed.Qualifier != pattern.NoQualifier && random.Rand(99, 0, 1) >= parsed.Qualifier {
		return "", nil
	}

	// An empty or whitespace-led name marks a literal grouping: the value
	// is the content itself, which already had its placeholders resolved.
	if parsed.Name == "" || strings.HasPrefix(content, " ") || strings.HasPrefix(content, "\t") {
		value := content
		if parsed.Qualifier != pattern.NoQualifier {
			value = qualifierSpan.ReplaceAllString(value, "")
		}
		g.storeBackref(value)
		return value, nil
	}

	value, err := g.resolveBuiltin(parsed.Name, parsed.Params)
	if err != nil {
		return "", err
	}

	for _, m := range parsed.Modifiers {
		if m.Qualifier != pattern.NoQualifier && random.Rand(99, 0, 1) >= m.Qualifier {
			continue
		}

		params, err := g.resolveParams(m.Params, depth)
		if err != nil {
			return "", err
		}

		value, err = applyModifier(value, m.Name, params)
		if err != nil {
			return "", err
		}
	}

	value = pattern.EscapeValue(value)
	g.storeBackref(value)
	return value, nil
}

// resolveParams expands placeholder syntax inside modifier parameters.
func (g *Generator) resolveParams(params []string, depth int) ([]string, error) {
	if len(params) == 0 {
		return nil, nil
	}

	resolved := make([]string, len(params))
	for i, p := range params {
		if strings.Contains(p, "{") {
			value, err := g.resolve(p, depth+1)
			if err != nil {
				return nil, err
			}
			p = pattern.Unescape(value)
		}
		resolved[i] = p
	}
	return resolved, nil
}

// pickAlternative selects one alternative with an unweighted draw.
func pickAlternative(alternatives []string) string {
	if len(alternatives) == 1 {
		return strings.TrimSpace(alternatives[0])
	}
	index := random.Rand(len(alternatives)-1, 0, 1)
	return strings.TrimSpace(alternatives[index])
}

func (g *Generator) storeBackref(value string) {
	g.backrefCount++
	g.backrefs[g.backrefCount] = value
}
