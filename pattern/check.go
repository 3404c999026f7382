package pattern

import (
	"errors"
	"fmt"
	"strings"
)

// Check validates a pattern before it is accepted from a caller. The
// resolver itself tolerates stray braces, but patterns stored in pattern
// sets should be structurally sound: every {}, [] and () must balance after
// escape sequences are removed.
func Check(p string) error {
	if strings.TrimSpace(p) == "" {
		return errors.New("empty pattern")
	}

	escaped := Escape(p)

	pairs := []struct {
		open, close byte
		name        string
	}{
		{'{', '}', "braces"},
		{'[', ']', "brackets"},
		{'(', ')', "parentheses"},
	}
	for _, pair := range pairs {
		if strings.Count(escaped, string(pair.open)) != strings.Count(escaped, string(pair.close)) {
			return fmt.Errorf("unmatched %s in pattern", pair.name)
		}
	}

	// Equal counts can still close a brace that was never opened.
	depth := 0
	for i := 0; i < len(escaped); i++ {
		switch escaped[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return errors.New("unmatched braces in pattern")
			}
		}
	}

	return nil
}
