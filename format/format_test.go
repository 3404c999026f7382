package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestAnalyze(t *testing.T) {
	analysis, err := Analyze("{word(animal)+ucase[50]}-{$W1}")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if len(analysis.Placeholders) != 2 {
		t.Fatalf("got %d placeholders, want 2", len(analysis.Placeholders))
	}

	first := analysis.Placeholders[0]
	if first.Name != "word" {
		t.Errorf("Name = %q, want word", first.Name)
	}
	if len(first.Params) != 1 || first.Params[0] != "animal" {
		t.Errorf("Params = %v, want [animal]", first.Params)
	}
	if len(first.Modifiers) != 1 || first.Modifiers[0].Name != "ucase" || first.Modifiers[0].Qualifier != 50 {
		t.Errorf("Modifiers = %+v", first.Modifiers)
	}

	second := analysis.Placeholders[1]
	if second.Content != "$W1" {
		t.Errorf("Content = %q, want $W1", second.Content)
	}
}

func TestAnalyzeNesting(t *testing.T) {
	analysis, err := Analyze("{a {vowel} day}")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if len(analysis.Placeholders) != 2 {
		t.Fatalf("got %d placeholders, want 2", len(analysis.Placeholders))
	}
	inner, outer := analysis.Placeholders[0], analysis.Placeholders[1]
	if inner.Name != "vowel" {
		t.Errorf("inner Name = %q, want vowel", inner.Name)
	}
	if inner.Parent != outer.Index {
		t.Errorf("inner Parent = %d, want %d", inner.Parent, outer.Index)
	}
}

func TestAnalyzeRejectsMalformed(t *testing.T) {
	for _, p := range []string{"", "  ", "{open", "close}", "{a[}"} {
		if _, err := Analyze(p); err == nil {
			t.Errorf("Analyze(%q) succeeded, want error", p)
		}
	}
}

func TestJSONEncoder(t *testing.T) {
	analysis, err := Analyze("{word(color)|{number}}")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(analysis); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	var decoded struct {
		Pattern      string `json:"pattern"`
		Placeholders []struct {
			Index   int    `json:"index"`
			Content string `json:"content"`
		} `json:"placeholders"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Pattern != "{word(color)|{number}}" {
		t.Errorf("pattern = %q", decoded.Pattern)
	}
	if len(decoded.Placeholders) != 2 {
		t.Errorf("got %d placeholders, want 2", len(decoded.Placeholders))
	}
}

func TestJSONEncoderOmitsAbsentQualifier(t *testing.T) {
	analysis, err := Analyze("{vowel}{consonant[0]}")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(analysis); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, `"qualifier": -1`) {
		t.Errorf("absent qualifier leaked into output:\n%s", out)
	}
	if !strings.Contains(out, `"qualifier": 0`) {
		t.Errorf("explicit zero qualifier missing from output:\n%s", out)
	}
}

func TestLineEncoder(t *testing.T) {
	analysis, err := Analyze("{word(animal)}{a|b}{ group}{$W1}")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	var buf bytes.Buffer
	if err := NewLineEncoder(&buf).Encode(analysis); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "pattern\t") {
		t.Errorf("first line = %q", lines[0])
	}

	out := buf.String()
	for _, want := range []string{"backreference", "alternatives", "group", "placeholder"} {
		if !strings.Contains(out, "\t"+want+"\t") {
			t.Errorf("kind %q missing from output:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "alternative\t2\ta\n") {
		t.Errorf("alternative lines missing:\n%s", out)
	}
}
