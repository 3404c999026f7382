package format

import (
	"fmt"
	"io"
	"strings"
)

// LineEncoder emits one tab-separated line per placeholder, convenient for
// grep and awk.
type LineEncoder struct {
	w        io.Writer
	analysis *Analysis
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(analysis *Analysis) error {
	e.analysis = analysis
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "pattern\t%s\n", e.analysis.Pattern)

	for _, ph := range e.analysis.Placeholders {
		fmt.Fprintf(&sb, "placeholder\t%d\t%d\t%s\t%s\t%s\n",
			ph.Index,
			ph.Parent,
			e.placeholderKind(ph),
			ph.Name,
			qualifierStr(ph.Qualifier),
		)

		for _, alt := range ph.Alternatives {
			fmt.Fprintf(&sb, "alternative\t%d\t%s\n", ph.Index, alt)
		}

		for _, m := range ph.Modifiers {
			fmt.Fprintf(&sb, "modifier\t%d\t%s\t%s\t%s\n",
				ph.Index,
				m.Name,
				strings.Join(m.Params, ","),
				qualifierStr(m.Qualifier),
			)
		}
	}

	return []byte(sb.String()), nil
}

func (e *LineEncoder) placeholderKind(ph PlaceholderInfo) string {
	switch {
	case strings.HasPrefix(ph.Content, "$W"):
		return "backreference"
	case ph.Alternatives != nil:
		return "alternatives"
	case ph.Name == "" || strings.HasPrefix(ph.Content, " ") || strings.HasPrefix(ph.Content, "\t"):
		return "group"
	default:
		return "placeholder"
	}
}

func qualifierStr(q int) string {
	if q < 0 {
		return ""
	}
	return fmt.Sprintf("%d", q)
}
