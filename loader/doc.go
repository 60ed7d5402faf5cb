// Package loader turns raw markup text into canonical dom trees.
//
// Parsing itself is delegated to golang.org/x/net/html; this package wraps
// it with the plumbing real inputs need:
//   - input size validation (10MB cap)
//   - automatic charset detection via chardet with UTF-8 conversion
//   - optional pre-parse sanitization via a bluemonday policy
//
// The output is an immutable dom.Node tree ready for selection.
package loader
