package words

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/dhamidi/pafw/random"
)

// ErrNoPatterns is returned when no pattern set is configured.
var ErrNoPatterns = errors.New("no patterns configured")

// Pattern is one named template from a pattern set.
type Pattern struct {
	Name     string `toml:"name"`
	Template string `toml:"template"`
}

type patternSet struct {
	Patterns []Pattern `toml:"pattern"`
}

// Patterns returns the pattern set, loading it on first use. A patterns.toml
// in the configured directory takes precedence over the bundled set.
func (s *Store) Patterns() ([]Pattern, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.patterns != nil {
		return s.patterns, nil
	}

	data, err := s.readPatternSet()
	if err != nil {
		return nil, err
	}

	var set patternSet
	if err := toml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse pattern set: %w", err)
	}
	if len(set.Patterns) == 0 {
		return nil, ErrNoPatterns
	}

	s.patterns = set.Patterns
	return s.patterns, nil
}

func (s *Store) readPatternSet() ([]byte, error) {
	if s.dir != "" {
		data, err := os.ReadFile(filepath.Join(s.dir, "patterns.toml"))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read pattern set: %w", err)
		}
	}

	data, err := embedded.ReadFile("data/patterns.toml")
	if err != nil {
		return nil, ErrNoPatterns
	}
	return data, nil
}

// RandomPattern picks one template from the pattern set.
func (s *Store) RandomPattern() (string, error) {
	patterns, err := s.Patterns()
	if err != nil {
		return "", err
	}
	if len(patterns) == 1 {
		return patterns[0].Template, nil
	}
	return patterns[random.Rand(len(patterns)-1, 0, 1)].Template, nil
}
