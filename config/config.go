// Package config loads generator defaults from a pafw.toml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/dhamidi/pafw/pattern"
)

// FileName is the configuration file looked up in the working directory and
// its ancestors.
const FileName = "pafw.toml"

// Config carries the defaults applied to password generation when the
// command line leaves them unset.
type Config struct {
	// WordlistDir points at a directory of extra wordlists and an optional
	// patterns.toml. Relative paths are resolved against the config file's
	// directory.
	WordlistDir string `toml:"wordlist_dir"`

	// Pattern is the default template. Empty means a random template from
	// the pattern set.
	Pattern string `toml:"pattern"`

	// Count is the default number of passwords per invocation.
	Count int `toml:"count"`

	// ShowPattern prints the template that produced each password.
	ShowPattern bool `toml:"show_pattern"`

	// Path is where the configuration was found, empty for built-in
	// defaults.
	Path string `toml:"-"`
}

func Default() *Config {
	return &Config{Count: 1}
}

// Load searches for a pafw.toml starting in the current directory.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom walks from dir up to the filesystem root looking for a pafw.toml.
// When none exists the built-in defaults are returned.
func LoadFrom(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	for {
		path := filepath.Join(abs, FileName)
		if _, err := os.Stat(path); err == nil {
			return loadFile(path)
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return Default(), nil
		}
		abs = parent
	}
}

func loadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Path = path

	if cfg.Pattern != "" {
		if err := pattern.Check(cfg.Pattern); err != nil {
			return nil, fmt.Errorf("%s: default pattern: %w", path, err)
		}
	}
	if cfg.Count < 1 {
		cfg.Count = 1
	}
	if cfg.WordlistDir != "" && !filepath.IsAbs(cfg.WordlistDir) {
		cfg.WordlistDir = filepath.Join(filepath.Dir(path), cfg.WordlistDir)
	}

	return cfg, nil
}
