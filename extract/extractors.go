package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/treequery/dom"
)

// Extractor maps a selection result to an output value. The input is one
// of a closed set of shapes: nil (absent), *dom.Node, or []*dom.Node.
// Extractors are pure values; store and reuse them freely.
type Extractor func(in any) (any, error)

// ErrIndexOutOfRange reports an Nth index outside its sequence.
var ErrIndexOutOfRange = errors.New("extract: index out of range")

// ErrUnsupportedInput reports an input outside the closed shape set.
var ErrUnsupportedInput = errors.New("extract: unsupported input shape")

func shapeError(in any) error {
	return fmt.Errorf("%w: %T", ErrUnsupportedInput, in)
}

// overNodes lifts a single-node extraction element-wise over a sequence.
func overNodes(in any, one func(*dom.Node) any) (any, error) {
	switch v := in.(type) {
	case nil:
		return nil, nil
	case *dom.Node:
		return one(v), nil
	case []*dom.Node:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = one(n)
		}
		return out, nil
	default:
		return nil, shapeError(in)
	}
}

// Tag extracts the node's tag, or nil for kinds that carry none.
func Tag(in any) (any, error) {
	return overNodes(in, func(n *dom.Node) any {
		if n.Kind != dom.KindElement && n.Kind != dom.KindDoctype {
			return nil
		}
		return n.Tag
	})
}

// Attr extracts the named attribute's value, or nil when absent.
func Attr(name string) Extractor {
	return func(in any) (any, error) {
		return overNodes(in, func(n *dom.Node) any {
			v, ok := n.Attr(name)
			if !ok {
				return nil
			}
			return v
		})
	}
}

// Attrs extracts the whole attribute mapping, or nil when the node
// carries no attributes.
func Attrs(in any) (any, error) {
	return overNodes(in, func(n *dom.Node) any {
		if n.Attrs == nil {
			return nil
		}
		return n.Attrs
	})
}

// Text extracts the concatenation, in document order, of all descendant
// text content. Comments contribute nothing; extracting text of a comment
// node itself is absent.
func Text(in any) (any, error) {
	return overNodes(in, func(n *dom.Node) any {
		if n.Kind == dom.KindComment {
			return nil
		}
		var b strings.Builder
		appendText(&b, n)
		return b.String()
	})
}

func appendText(b *strings.Builder, n *dom.Node) {
	switch n.Kind {
	case dom.KindText:
		b.WriteString(n.Text)
	case dom.KindComment, dom.KindDoctype:
		// no text contribution
	default:
		for _, c := range n.Children {
			appendText(b, c)
		}
	}
}

// Node passes the selection result through unchanged.
func Node(in any) (any, error) {
	switch in.(type) {
	case nil, *dom.Node, []*dom.Node:
		return in, nil
	default:
		return nil, shapeError(in)
	}
}

// Nth selects the i-th element of a sequence. On a single node the index
// is meaningless and the node passes through unchanged; an index outside
// a sequence is a reportable error.
func Nth(i int) Extractor {
	return func(in any) (any, error) {
		switch v := in.(type) {
		case nil:
			return nil, nil
		case *dom.Node:
			return v, nil
		case []*dom.Node:
			if i < 0 || i >= len(v) {
				return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(v))
			}
			return v[i], nil
		default:
			return nil, shapeError(in)
		}
	}
}

// Compose builds an extractor applying fs left to right: the first
// function sees the selection result, each later one sees its
// predecessor's output. Reads top-to-bottom as written, deliberately the
// reverse of mathematical composition.
func Compose(fs ...Extractor) Extractor {
	return func(in any) (any, error) {
		cur := in
		for _, f := range fs {
			v, err := f(cur)
			if err != nil {
				return nil, err
			}
			cur = v
		}
		return cur, nil
	}
}
