// Package words implements the word sources for the pattern resolver: named
// wordlists (bundled or on disk), pattern sets, and generated pronounceable
// words.
package words

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/pafw/random"
)

//go:embed data
var embedded embed.FS

// ErrNotFound is returned when a named wordlist does not exist, neither in
// the configured directory nor among the bundled lists.
var ErrNotFound = errors.New("wordlist not found")

// Files at least this large are sampled by seeking instead of being loaded
// into the cache.
const seekThreshold = 100 * 1024

// Store resolves wordlist names to words. Lookups check the configured
// directory first and fall back to the lists bundled with the binary. Loaded
// lists are cached; the cache belongs to the store, so independent stores
// never share state.
type Store struct {
	dir string

	mu       sync.Mutex
	cache    map[string][]string
	patterns []Pattern
}

type Option func(*Store)

// WithDir configures a directory of additional wordlist files (<name>.txt)
// and an optional patterns.toml pattern set.
func WithDir(dir string) Option {
	return func(s *Store) {
		s.dir = dir
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		cache: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// filename normalizes a list name to its file name.
func filename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.HasSuffix(name, ".txt") {
		name += ".txt"
	}
	return name
}

// RandomWord returns one random entry from the named list. Small lists are
// loaded once and picked from the cache; large on-disk lists are sampled by
// seeking to a random offset and taking the next complete line.
func (s *Store) RandomWord(name string) (string, error) {
	if s.dir != "" {
		path := filepath.Join(s.dir, filename(name))
		if info, err := os.Stat(path); err == nil {
			if info.Size() >= seekThreshold {
				if word, ok := sampleBySeeking(path, info.Size()); ok {
					return word, nil
				}
			}
			// Small file, or seeking failed to land on a
			// complete line: load the whole list.
		}
	}

	list, err := s.Words(name)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", nil
	}
	return list[random.Below(len(list))], nil
}

// Words returns the full contents of the named list, loading and caching it
// on first use.
func (s *Store) Words(name string) ([]string, error) {
	key := filename(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if list, ok := s.cache[key]; ok {
		return list, nil
	}

	data, err := s.readList(key)
	if err != nil {
		return nil, err
	}

	var list []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			list = append(list, line)
		}
	}

	s.cache[key] = list
	return list, nil
}

func (s *Store) readList(key string) ([]byte, error) {
	if s.dir != "" {
		data, err := os.ReadFile(filepath.Join(s.dir, key))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read wordlist: %w", err)
		}
	}

	data, err := embedded.ReadFile("data/wordlists/" + key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, strings.TrimSuffix(key, ".txt"))
	}
	return data, nil
}

// List names every available wordlist, bundled and on disk, sorted and
// deduplicated.
func (s *Store) List() []string {
	names := make(map[string]bool)

	if entries, err := embedded.ReadDir("data/wordlists"); err == nil {
		for _, entry := range entries {
			names[strings.TrimSuffix(entry.Name(), ".txt")] = true
		}
	}
	if s.dir != "" {
		if entries, err := os.ReadDir(s.dir); err == nil {
			for _, entry := range entries {
				if strings.HasSuffix(entry.Name(), ".txt") {
					names[strings.TrimSuffix(entry.Name(), ".txt")] = true
				}
			}
		}
	}

	var list []string
	for name := range names {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

// sampleBySeeking picks a random line from a large file without reading it
// whole. It seeks to a random offset, reads a small buffer, and returns the
// first complete line after the (likely partial) one the seek landed in.
func sampleBySeeking(path string, size int64) (string, bool) {
	const bufferSize = 128

	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	buf := make([]byte, bufferSize)
	for attempt := 0; attempt < 5; attempt++ {
		offset := random.Below(int(size) - bufferSize)
		if _, err := f.Seek(int64(offset), 0); err != nil {
			return "", false
		}
		n, err := f.Read(buf)
		if err != nil {
			return "", false
		}

		lines := strings.Split(string(buf[:n]), "\n")
		if len(lines) >= 3 {
			if word := strings.TrimSpace(lines[1]); word != "" {
				return word, true
			}
		}
	}
	return "", false
}
