package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRandomWordEmbedded(t *testing.T) {
	store := NewStore()

	for i := 0; i < 20; i++ {
		word, err := store.RandomWord("4-letter")
		if err != nil {
			t.Fatalf("RandomWord(4-letter) error: %v", err)
		}
		if len(word) != 4 {
			t.Errorf("RandomWord(4-letter) = %q, want 4 letters", word)
		}
	}
}

func TestRandomWordNotFound(t *testing.T) {
	store := NewStore()
	_, err := store.RandomWord("no-such-list")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("RandomWord(no-such-list) error = %v, want ErrNotFound", err)
	}
}

func TestRandomWordNameNormalization(t *testing.T) {
	store := NewStore()
	if _, err := store.RandomWord("ANIMAL"); err != nil {
		t.Errorf("RandomWord(ANIMAL) error: %v", err)
	}
	if _, err := store.RandomWord("animal.txt"); err != nil {
		t.Errorf("RandomWord(animal.txt) error: %v", err)
	}
}

func TestWordsCaching(t *testing.T) {
	store := NewStore()
	first, err := store.Words("color")
	if err != nil {
		t.Fatalf("Words(color) error: %v", err)
	}
	second, err := store.Words("color")
	if err != nil {
		t.Fatalf("Words(color) second load error: %v", err)
	}
	if len(first) == 0 || len(first) != len(second) {
		t.Errorf("Words(color) = %d then %d entries", len(first), len(second))
	}
}

func TestCustomDirectoryOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "color.txt"), []byte("onlycolor\n"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(WithDir(dir))
	word, err := store.RandomWord("color")
	if err != nil {
		t.Fatalf("RandomWord(color) error: %v", err)
	}
	if word != "onlycolor" {
		t.Errorf("RandomWord(color) = %q, want the on-disk entry", word)
	}

	// Lists absent from the directory still resolve to bundled ones.
	if _, err := store.RandomWord("animal"); err != nil {
		t.Errorf("RandomWord(animal) with custom dir error: %v", err)
	}
}

func TestLargeFileSampling(t *testing.T) {
	dir := t.TempDir()

	var b strings.Builder
	for b.Len() < seekThreshold+4096 {
		b.WriteString("sampled\n")
	}
	if err := os.WriteFile(filepath.Join(dir, "big.txt"), []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(WithDir(dir))
	for i := 0; i < 10; i++ {
		word, err := store.RandomWord("big")
		if err != nil {
			t.Fatalf("RandomWord(big) error: %v", err)
		}
		if word != "sampled" {
			t.Errorf("RandomWord(big) = %q, want %q", word, "sampled")
		}
	}
}

func TestList(t *testing.T) {
	store := NewStore()
	names := store.List()

	want := map[string]bool{"4-letter": false, "animal": false, "color": false}
	for _, name := range names {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("List() missing bundled list %q", name)
		}
	}
}

func TestPatterns(t *testing.T) {
	store := NewStore()
	patterns, err := store.Patterns()
	if err != nil {
		t.Fatalf("Patterns() error: %v", err)
	}
	if len(patterns) == 0 {
		t.Fatal("Patterns() returned no entries")
	}
	for _, p := range patterns {
		if p.Template == "" {
			t.Errorf("pattern %q has an empty template", p.Name)
		}
	}

	tmpl, err := store.RandomPattern()
	if err != nil {
		t.Fatalf("RandomPattern() error: %v", err)
	}
	if tmpl == "" {
		t.Error("RandomPattern() returned an empty template")
	}
}

func TestPatternsFromDirectory(t *testing.T) {
	dir := t.TempDir()
	set := "[[pattern]]\nname = \"only\"\ntemplate = \"{number}\"\n"
	if err := os.WriteFile(filepath.Join(dir, "patterns.toml"), []byte(set), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(WithDir(dir))
	tmpl, err := store.RandomPattern()
	if err != nil {
		t.Fatalf("RandomPattern() error: %v", err)
	}
	if tmpl != "{number}" {
		t.Errorf("RandomPattern() = %q, want {number}", tmpl)
	}
}

func TestPronounceable(t *testing.T) {
	for i := 0; i < 50; i++ {
		word := Pronounceable()
		if word == "" {
			t.Fatal("Pronounceable() returned an empty word")
		}
		for _, r := range word {
			if (r < 'a' || r > 'z') && r != ' ' {
				t.Fatalf("Pronounceable() = %q, unexpected character %q", word, r)
			}
		}
		if len(word) >= 2 && word[0] == word[1] {
			t.Errorf("Pronounceable() = %q, starts with a doubled letter", word)
		}
	}
}

func TestFakeWord(t *testing.T) {
	for i := 0; i < 20; i++ {
		word := FakeWord("test")
		if len(word) <= len("test") {
			t.Errorf("FakeWord(test) = %q, expected an affix to be attached", word)
		}
	}
}
