// Package format renders pattern analyses in machine- and human-readable
// forms.
package format

import (
	"encoding"
	"fmt"

	"github.com/dhamidi/pafw/pattern"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(analysis *Analysis) error
}

// Analysis is the static structure of one pattern template: every
// placeholder, innermost first, with its parsed content.
type Analysis struct {
	Pattern      string
	Placeholders []PlaceholderInfo
}

// PlaceholderInfo describes one {...} span. Index and Parent follow
// pattern.Placeholder numbering: closing order, 1-based, Parent 0 for
// top-level spans.
type PlaceholderInfo struct {
	Index        int
	Parent       int
	Content      string
	Name         string
	Params       []string
	Qualifier    int
	Alternatives []string
	Modifiers    []ModifierInfo
}

type ModifierInfo struct {
	Name      string
	Params    []string
	Qualifier int
}

// Analyze validates a pattern and parses every placeholder in it.
func Analyze(p string) (*Analysis, error) {
	if err := pattern.Check(p); err != nil {
		return nil, fmt.Errorf("analyze pattern: %w", err)
	}

	analysis := &Analysis{Pattern: p}

	for _, ph := range pattern.Extract(p) {
		content := pattern.ParseContent(ph.Content)
		info := PlaceholderInfo{
			Index:        ph.Index,
			Parent:       ph.Parent,
			Content:      pattern.Unescape(ph.Content),
			Name:         content.Name,
			Params:       unescapeAll(content.Params),
			Qualifier:    content.Qualifier,
			Alternatives: unescapeAll(content.Alternatives),
		}
		for _, m := range content.Modifiers {
			info.Modifiers = append(info.Modifiers, ModifierInfo{
				Name:      m.Name,
				Params:    unescapeAll(m.Params),
				Qualifier: m.Qualifier,
			})
		}
		analysis.Placeholders = append(analysis.Placeholders, info)
	}

	return analysis, nil
}

func unescapeAll(values []string) []string {
	if values == nil {
		return nil
	}
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = pattern.Unescape(v)
	}
	return result
}
