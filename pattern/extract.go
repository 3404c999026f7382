package pattern

// Placeholder is one {...} span found in a pattern. Index is assigned in
// closing order starting at 1, which is also the order the resolver assigns
// backreference keys in. Parent is the index of the enclosing placeholder,
// or 0 for top-level spans.
type Placeholder struct {
	Index   int
	Parent  int
	Start   int
	Content string
}

// Extract lists every brace-matched placeholder in a pattern, innermost
// first. Escape sequences are applied before scanning, so escaped braces are
// not reported. Unmatched opening braces are ignored, matching the
// resolver's literal treatment of them.
func Extract(p string) []Placeholder {
	escaped := Escape(p)

	var found []Placeholder
	var stack []int

	for i := 0; i < len(escaped); i++ {
		switch escaped[i] {
		case '{':
			stack = append(stack, i)
		case '}':
			if len(stack) == 0 {
				continue
			}
			start := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			ph := Placeholder{
				Index:   len(found) + 1,
				Start:   start,
				Content: escaped[start+1 : i],
			}
			if len(stack) > 0 {
				// Parent closes later; remember its opening
				// position and resolve it below.
				ph.Parent = -stack[len(stack)-1] - 1
			}
			found = append(found, ph)
		}
	}

	// Second pass: map enclosing start offsets to indexes.
	byStart := make(map[int]int, len(found))
	for _, ph := range found {
		byStart[ph.Start] = ph.Index
	}
	for i := range found {
		if found[i].Parent < 0 {
			found[i].Parent = byStart[-found[i].Parent-1]
		}
	}

	return found
}
