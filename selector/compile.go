package selector

import (
	"fmt"
	"strings"
	"sync"

	"github.com/GriffinCanCode/treequery/dom"
)

// Cache memoizes compiled selector chains keyed by their textual value.
// Compiled predicates never change meaning for a given input, so entries
// are never invalidated; the cache grows with the number of distinct
// chains seen, which is small and static in practice. Safe for concurrent
// use. The zero value is ready to use.
type Cache struct {
	compiled sync.Map // chain string -> Predicate
}

// NewCache creates an empty selector cache.
func NewCache() *Cache {
	return &Cache{}
}

// defaultCache backs the package-level Compile and Select entry points.
var defaultCache = NewCache()

// Default returns the process-wide selector cache.
func Default() *Cache {
	return defaultCache
}

// Reset drops every memoized predicate. Intended for tests.
func (c *Cache) Reset() {
	c.compiled.Clear()
}

// Compile parses a selector chain and returns its predicate, memoizing the
// result. Tokens are separated by whitespace; each token follows the fixed
// [tag][#id][.class]* grammar. An empty chain compiles to Any. A chain of
// several tokens compiles to an ancestor chain, first token outermost.
func (c *Cache) Compile(chain string) (Predicate, error) {
	if p, ok := c.compiled.Load(chain); ok {
		return p.(Predicate), nil
	}
	tokens := strings.Fields(chain)
	preds := make([]Predicate, len(tokens))
	for i, tok := range tokens {
		p, err := compileToken(tok)
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", chain, err)
		}
		preds[i] = p
	}
	p := Under(preds...)
	c.compiled.Store(chain, p)
	return p, nil
}

// Compile compiles a chain using the process-wide cache.
func Compile(chain string) (Predicate, error) {
	return defaultCache.Compile(chain)
}

// MustCompile is Compile for chains known valid at build time; it panics
// on malformed input.
func MustCompile(chain string) Predicate {
	p, err := Compile(chain)
	if err != nil {
		panic(err)
	}
	return p
}

// Resolve turns a caller-supplied selector into a predicate. A string is
// compiled through the cache; a function-valued selector bypasses
// compilation and is used as-is.
func (c *Cache) Resolve(sel any) (Predicate, error) {
	switch s := sel.(type) {
	case Predicate:
		return s, nil
	case func(*dom.Location) bool:
		return Predicate(s), nil
	case string:
		return c.Compile(s)
	case nil:
		return nil, fmt.Errorf("selector: nil selector")
	default:
		return nil, fmt.Errorf("selector: unsupported selector type %T", sel)
	}
}

// compileToken parses one [tag][#id][.class]* token into the conjunction
// of its parts. A missing part contributes no constraint.
func compileToken(tok string) (Predicate, error) {
	rest := tok
	var parts []Predicate

	// Leading run up to '#' or '.' is the tag constraint.
	if i := strings.IndexAny(rest, "#."); i != 0 {
		if i < 0 {
			i = len(rest)
		}
		parts = append(parts, Tag(rest[:i]))
		rest = rest[i:]
	}

	if strings.HasPrefix(rest, "#") {
		rest = rest[1:]
		i := strings.IndexAny(rest, "#.")
		if i < 0 {
			i = len(rest)
		}
		if i == 0 {
			return nil, fmt.Errorf("token %q: empty id", tok)
		}
		parts = append(parts, ID(rest[:i]))
		rest = rest[i:]
	}

	var classes []string
	for rest != "" {
		if rest[0] == '#' {
			// '#' is only valid between tag and classes.
			return nil, fmt.Errorf("token %q: id segment out of order", tok)
		}
		rest = rest[1:] // consume '.'
		i := strings.IndexAny(rest, "#.")
		if i < 0 {
			i = len(rest)
		}
		if i == 0 {
			return nil, fmt.Errorf("token %q: empty class", tok)
		}
		classes = append(classes, rest[:i])
		rest = rest[i:]
	}
	if len(classes) > 0 {
		parts = append(parts, Class(classes...))
	}

	if len(parts) == 0 {
		return Any(), nil
	}
	return All(parts...), nil
}
