// Package selector provides boolean predicates over tree locations and a
// small textual selector language that compiles into them.
//
// This package is organized into three layers:
//   - predicate: the algebra (tag, attribute, class and id tests plus
//     negation, conjunction, disjunction and ancestor-chain combinators)
//   - compile: the reduced tag#id.class grammar, with per-chain memoization
//     in an explicit Cache so tests can reset state between cases
//   - select: document-order scanning of a tree with a resolved predicate
//
// Selectors are stateless values; a compiled predicate can be stored and
// reused across many trees and many goroutines.
//
// Supported textual grammar per token: [tag][#id][.class]*, parts optional
// but order fixed. Whitespace between tokens means "descendant at any
// depth", so "div.list span.item" matches span.item elements anywhere
// under a div.list ancestor.
package selector
