// Package generate implements the password pattern engine: a recursive
// resolver that expands {placeholder} spans into randomly chosen values,
// applies chained text modifiers, and tracks backreferences, driven by a
// retrying generation session.
package generate

import (
	"strings"

	"github.com/dhamidi/pafw/pattern"
	"github.com/dhamidi/pafw/random"
	"github.com/dhamidi/pafw/words"
)

// Resolution attempts per Generate call before the failsafe kicks in.
const maxRetries = 10

// Placeholder nesting deeper than this fails the attempt; see
// ErrTooDeeplyNested.
const defaultMaxDepth = 64

// Generator generates passwords from patterns. A generator owns its
// backreference state, so each concurrent goroutine needs its own instance;
// the word store may be shared.
type Generator struct {
	store    *words.Store
	maxDepth int

	// LastPattern and LastPassword record the most recent successful
	// Generate call.
	LastPattern  string
	LastPassword string

	backrefs     map[int]string
	backrefCount int
}

type Option func(*Generator)

// WithStore uses an existing word store instead of a fresh one with bundled
// lists only.
func WithStore(store *words.Store) Option {
	return func(g *Generator) {
		g.store = store
	}
}

// WithWordlistDir configures a directory of additional wordlists and
// patterns.
func WithWordlistDir(dir string) Option {
	return func(g *Generator) {
		g.store = words.NewStore(words.WithDir(dir))
	}
}

// WithMaxDepth overrides the placeholder nesting bound.
func WithMaxDepth(depth int) Option {
	return func(g *Generator) {
		g.maxDepth = depth
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.store == nil {
		g.store = words.NewStore()
	}
	return g
}

// Store returns the word store backing this generator.
func (g *Generator) Store() *words.Store {
	return g.store
}

// Generate produces one password. An empty pattern selects a random template
// from the store's pattern set. Failed attempts (unknown modifiers, missing
// wordlists, over-deep nesting) are retried with fresh backreference state;
// when every attempt fails, a failsafe password is returned rather than an
// error.
func (g *Generator) Generate(p string) string {
	for attempt := 0; attempt < maxRetries; attempt++ {
		template := p
		if template == "" {
			var err error
			template, err = g.store.RandomPattern()
			if err != nil {
				break
			}
		}

		result, err := g.generateFrom(template)
		if err != nil {
			continue
		}

		g.LastPassword = result
		return result
	}

	return g.failsafe()
}

// generateFrom runs one resolution attempt: escape, resolve, unescape,
// whitespace cleanup. Backreference state is recreated per attempt and never
// carried over.
func (g *Generator) generateFrom(template string) (string, error) {
	g.LastPattern = template
	g.backrefs = make(map[int]string)
	g.backrefCount = 0

	escaped := pattern.Escape(strings.TrimSpace(template))

	result, err := g.resolve(escaped, 0)
	if err != nil {
		return "", err
	}

	result = pattern.Unescape(result)
	for strings.Contains(result, "  ") {
		result = strings.ReplaceAll(result, "  ", " ")
	}
	return strings.TrimSpace(result), nil
}

// failsafe builds a fixed-shape password from weighted picks over a combined
// alphabet. It cannot fail, so Generate always returns something usable.
func (g *Generator) failsafe() string {
	table := words.VowelClusters +
		" ! @ # % $ ^ & * : ' / ` ~ * - < > + = . . , , ; ; ? ? " +
		words.ConsonantClusters + " " + words.ThreeLetterWords +
		" 1 2 3 4 5 6 7 8 9 0"

	var b strings.Builder
	for i := 0; i < 7; i++ {
		b.WriteString(random.PickOne(table))
	}
	return b.String()
}
