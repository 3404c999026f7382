package pattern

import (
	"reflect"
	"testing"
)

func TestEscapeSequences(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`\{`, "#lbr#"},
		{`\}`, "#rbr#"},
		{`\[`, "#lba#"},
		{`\]`, "#rba#"},
		{`\(`, "#lpa#"},
		{`\)`, "#rpa#"},
		{`\+`, "#pls#"},
		{`\|`, "#pip#"},
		{`\\`, "#sla#"},
		{`a\{b\}c`, "a#lbr#b#rbr#c"},
		{"plain text", "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.expected {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Text without reserved symbols passes through unchanged.
		{"hello world", "hello world"},
		{"the quick brown fox 123", "the quick brown fox 123"},
		// Escape sequences come back as their literal characters.
		{`escaped \{ brace \| pipe`, "escaped { brace | pipe"},
		{`all of \{\}\[\]\(\)\+\|\\`, `all of {}[]()+|\`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Unescape(Escape(tt.input)); got != tt.expected {
				t.Errorf("Unescape(Escape(%q)) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEscapeValueRoundTrip(t *testing.T) {
	value := `a+b{c}[d](e)|f\g`
	if got := Unescape(EscapeValue(value)); got != value {
		t.Errorf("Unescape(EscapeValue(%q)) = %q", value, got)
	}
}

func TestParseContent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Content
	}{
		{
			"bare name",
			"word",
			Content{Name: "word", Qualifier: NoQualifier},
		},
		{
			"name with params",
			"word(animal)",
			Content{Name: "word", Params: []string{"animal"}, Qualifier: NoQualifier},
		},
		{
			"multiple params",
			"number(99, 10)",
			Content{Name: "number", Params: []string{"99", "10"}, Qualifier: NoQualifier},
		},
		{
			"quoted params",
			`replace("a","b")`,
			Content{Name: "replace", Params: []string{"a", "b"}, Qualifier: NoQualifier},
		},
		{
			"qualifier",
			"symbol[50]",
			Content{Name: "symbol", Qualifier: 50},
		},
		{
			"params and qualifier",
			"word(animal)[75]",
			Content{Name: "word", Params: []string{"animal"}, Qualifier: 75},
		},
		{
			"single modifier",
			"word+uppercase",
			Content{
				Name:      "word",
				Qualifier: NoQualifier,
				Modifiers: []Modifier{{Name: "uppercase", Qualifier: NoQualifier}},
			},
		},
		{
			"modifier chain with qualifiers",
			"word+propercase[25]+reverse",
			Content{
				Name:      "word",
				Qualifier: NoQualifier,
				Modifiers: []Modifier{
					{Name: "propercase", Qualifier: 25},
					{Name: "reverse", Qualifier: NoQualifier},
				},
			},
		},
		{
			"modifier with params",
			`word+replace("o","0")`,
			Content{
				Name:      "word",
				Qualifier: NoQualifier,
				Modifiers: []Modifier{{Name: "replace", Params: []string{"o", "0"}, Qualifier: NoQualifier}},
			},
		},
		{
			"alternatives",
			"a|b|c",
			Content{Qualifier: NoQualifier, Alternatives: []string{"a", "b", "c"}},
		},
		{
			"pipe inside params is not alternatives",
			"word(verb|noun)",
			Content{Name: "word", Params: []string{"verb|noun"}, Qualifier: NoQualifier},
		},
		{
			"plus inside params is not a modifier",
			"word(a+b)",
			Content{Name: "word", Params: []string{"a+b"}, Qualifier: NoQualifier},
		},
		{
			"malformed qualifier ignored",
			"word[abc]",
			Content{Name: "word", Qualifier: NoQualifier},
		},
		{
			"empty name",
			"",
			Content{Qualifier: NoQualifier},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseContent(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseContent(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseModifier(t *testing.T) {
	tests := []struct {
		input    string
		expected Modifier
	}{
		{"uppercase", Modifier{Name: "uppercase", Qualifier: NoQualifier}},
		{"propercase[25]", Modifier{Name: "propercase", Qualifier: 25}},
		{`replace(" ","-")`, Modifier{Name: "replace", Params: []string{" ", "-"}, Qualifier: NoQualifier}},
		{"left(3)[50]", Modifier{Name: "left", Params: []string{"3"}, Qualifier: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseModifier(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseModifier(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "{word}.{number}", false},
		{"nested", "{word({number})}", false},
		{"escaped braces", `\{not a placeholder\}`, false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"unmatched open brace", "{word", true},
		{"unmatched close brace", "word}", true},
		{"close before open", "}{", true},
		{"unmatched bracket", "{word[50}", true},
		{"unmatched paren", "{word(animal}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Check(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	got := Extract("{a}{b{c}}")
	if len(got) != 3 {
		t.Fatalf("Extract returned %d placeholders, want 3", len(got))
	}

	// Closing order: a, c, then b.
	if got[0].Content != "a" || got[0].Parent != 0 {
		t.Errorf("first = %+v, want content a at top level", got[0])
	}
	if got[1].Content != "c" {
		t.Errorf("second = %+v, want content c", got[1])
	}
	if got[2].Content != "b{c}" || got[2].Parent != 0 {
		t.Errorf("third = %+v, want content b{c} at top level", got[2])
	}
	if got[1].Parent != got[2].Index {
		t.Errorf("c.Parent = %d, want %d (index of b)", got[1].Parent, got[2].Index)
	}

	if unmatched := Extract("{never closed"); len(unmatched) != 0 {
		t.Errorf("Extract on unmatched brace = %v, want none", unmatched)
	}
}
