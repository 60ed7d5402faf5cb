// Package dom provides the immutable markup tree that the selector and
// extraction engines operate on.
//
// This package is organized into two layers:
//   - node: the canonical Node union built from golang.org/x/net/html output
//   - location: a read-only cursor for moving between relatives and for
//     rebuilding an edited node's ancestor spine with structural sharing
//
// Trees are never mutated after construction. A "replace" produces a new
// root that shares every untouched subtree with the old one, so many
// Locations and many goroutines can work over the same tree without
// synchronization.
package dom
