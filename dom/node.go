package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Kind discriminates the Node union.
type Kind uint8

const (
	KindDocument Kind = iota
	KindElement
	KindDoctype
	KindComment
	KindText
)

// String returns the kind name for logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindElement:
		return "element"
	case KindDoctype:
		return "doctype"
	case KindComment:
		return "comment"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Node is one vertex of the canonical markup tree. The struct is a closed
// union over Kind: Tag and Attrs are meaningful for elements and doctypes,
// Text for comments and text nodes, Children for documents and elements.
//
// Invariants held at construction:
//   - Tag and attribute keys are lowercase
//   - Attrs is nil when the node carries no attributes
//   - Children is nil for leaf kinds
//
// Nodes are immutable once built; share them freely.
type Node struct {
	Kind     Kind              `json:"kind"`
	Tag      string            `json:"tag,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// Attr looks up an attribute value. A nil attribute map behaves exactly
// like an empty one. Keys are matched in lowercase canonical form.
func (n *Node) Attr(key string) (string, bool) {
	if n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[strings.ToLower(key)]
	return v, ok
}

// HasAttr reports whether the attribute key is present, regardless of value.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.Attr(key)
	return ok
}

// FromHTML re-projects the external parser's tree into the canonical Node
// form. The conversion is total over the parser's node kinds; a nil input
// yields a nil tree. Raw nodes fall through as plain text.
func FromHTML(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case html.DocumentNode:
		return &Node{Kind: KindDocument, Children: convertChildren(n)}
	case html.ElementNode:
		return &Node{
			Kind:     KindElement,
			Tag:      strings.ToLower(n.Data),
			Attrs:    convertAttrs(n.Attr),
			Children: convertChildren(n),
		}
	case html.DoctypeNode:
		return &Node{
			Kind:  KindDoctype,
			Tag:   strings.ToLower(n.Data),
			Attrs: convertAttrs(n.Attr),
		}
	case html.CommentNode:
		return &Node{Kind: KindComment, Text: n.Data}
	case html.TextNode, html.RawNode:
		return &Node{Kind: KindText, Text: n.Data}
	default:
		// ErrorNode never appears in a successfully parsed tree.
		return nil
	}
}

func convertChildren(n *html.Node) []*Node {
	var kids []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if k := FromHTML(c); k != nil {
			kids = append(kids, k)
		}
	}
	return kids
}

func convertAttrs(attrs []html.Attribute) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[strings.ToLower(a.Key)] = a.Val
	}
	return m
}

// Equal reports deep structural equality of two trees.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Text != b.Text {
		return false
	}
	if len(a.Attrs) != len(b.Attrs) {
		return false
	}
	for k, v := range a.Attrs {
		if bv, ok := b.Attrs[k]; !ok || bv != v {
			return false
		}
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
