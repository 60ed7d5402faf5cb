package selector

import (
	"strings"

	"github.com/GriffinCanCode/treequery/dom"
)

// Predicate is a stateless boolean test over a tree location.
type Predicate func(*dom.Location) bool

// Tag matches elements (and doctypes, which also carry a name) whose tag
// equals name. Comparison is case-insensitive via lowercase canonical form.
func Tag(name string) Predicate {
	name = strings.ToLower(name)
	return func(l *dom.Location) bool {
		n := l.Node()
		if n.Kind != dom.KindElement && n.Kind != dom.KindDoctype {
			return false
		}
		return n.Tag == name
	}
}

// Attr matches nodes carrying attribute key with exactly the given value.
func Attr(key, value string) Predicate {
	return func(l *dom.Location) bool {
		v, ok := l.Node().Attr(key)
		return ok && v == value
	}
}

// HasAttr matches nodes carrying the attribute key, regardless of value.
func HasAttr(key string) Predicate {
	return func(l *dom.Location) bool {
		return l.Node().HasAttr(key)
	}
}

// ID matches nodes whose id attribute equals id.
func ID(id string) Predicate {
	return Attr("id", id)
}

// Class matches nodes whose class attribute, split on whitespace, contains
// every one of the given class names.
func Class(classes ...string) Predicate {
	return func(l *dom.Location) bool {
		v, ok := l.Node().Attr("class")
		if !ok {
			return false
		}
		have := make(map[string]struct{})
		for _, c := range strings.Fields(v) {
			have[c] = struct{}{}
		}
		for _, c := range classes {
			if _, ok := have[c]; !ok {
				return false
			}
		}
		return true
	}
}

// Any matches every location.
func Any() Predicate {
	return func(*dom.Location) bool { return true }
}

// Not negates a predicate.
func Not(p Predicate) Predicate {
	return func(l *dom.Location) bool { return !p(l) }
}

// All matches when every predicate matches. Short-circuits on the first
// failure; zero predicates match everything.
func All(preds ...Predicate) Predicate {
	if len(preds) == 1 {
		return preds[0]
	}
	return func(l *dom.Location) bool {
		for _, p := range preds {
			if !p(l) {
				return false
			}
		}
		return true
	}
}

// AnyOf matches when at least one predicate matches. Short-circuits on the
// first success; zero predicates match nothing.
func AnyOf(preds ...Predicate) Predicate {
	if len(preds) == 1 {
		return preds[0]
	}
	return func(l *dom.Location) bool {
		for _, p := range preds {
			if p(l) {
				return true
			}
		}
		return false
	}
}

// Under is the ancestor-chain combinator. The last predicate must match
// the location itself; each earlier predicate must match some strict
// ancestor of the previous match, at any depth. A single upward walk
// suffices: ancestors form a chain, so consuming the nearest matching
// ancestor for each link never discards a viable assignment.
func Under(preds ...Predicate) Predicate {
	switch len(preds) {
	case 0:
		return Any()
	case 1:
		return preds[0]
	}
	return func(l *dom.Location) bool {
		if !preds[len(preds)-1](l) {
			return false
		}
		i := len(preds) - 2
		for loc, ok := l.Up(); ok; loc, ok = loc.Up() {
			if preds[i](loc) {
				i--
				if i < 0 {
					return true
				}
			}
		}
		return false
	}
}
