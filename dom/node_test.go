package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseTree(t *testing.T, markup string) *Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return FromHTML(root)
}

func TestFromHTMLConversion(t *testing.T) {
	tree := parseTree(t, `<!DOCTYPE html><html><body CLASS="Main Page" ID="top"><!--note--><p>hi</p></body></html>`)

	require.NotNil(t, tree)
	assert.Equal(t, KindDocument, tree.Kind)
	require.Len(t, tree.Children, 2)

	doctype := tree.Children[0]
	assert.Equal(t, KindDoctype, doctype.Kind)
	assert.Equal(t, "html", doctype.Tag)

	htmlEl := tree.Children[1]
	assert.Equal(t, KindElement, htmlEl.Kind)
	assert.Equal(t, "html", htmlEl.Tag)
	assert.Nil(t, htmlEl.Attrs)

	var body *Node
	for _, c := range htmlEl.Children {
		if c.Tag == "body" {
			body = c
		}
	}
	require.NotNil(t, body)

	// Attribute keys are lowercased at construction
	class, ok := body.Attr("class")
	assert.True(t, ok)
	assert.Equal(t, "Main Page", class)
	id, ok := body.Attr("ID")
	assert.True(t, ok)
	assert.Equal(t, "top", id)

	require.Len(t, body.Children, 2)
	assert.Equal(t, KindComment, body.Children[0].Kind)
	assert.Equal(t, "note", body.Children[0].Text)

	p := body.Children[1]
	assert.Equal(t, "p", p.Tag)
	require.Len(t, p.Children, 1)
	assert.Equal(t, KindText, p.Children[0].Kind)
	assert.Equal(t, "hi", p.Children[0].Text)
}

func TestFromHTMLNil(t *testing.T) {
	assert.Nil(t, FromHTML(nil))
}

func TestAttrOnMissingMap(t *testing.T) {
	n := &Node{Kind: KindElement, Tag: "div"}
	_, ok := n.Attr("class")
	assert.False(t, ok)
	assert.False(t, n.HasAttr("class"))
}

func TestEqual(t *testing.T) {
	a := &Node{Kind: KindElement, Tag: "div", Attrs: map[string]string{"id": "x"}, Children: []*Node{
		{Kind: KindText, Text: "hi"},
	}}
	b := &Node{Kind: KindElement, Tag: "div", Attrs: map[string]string{"id": "x"}, Children: []*Node{
		{Kind: KindText, Text: "hi"},
	}}
	assert.True(t, Equal(a, b))

	b.Children[0] = &Node{Kind: KindText, Text: "bye"}
	assert.False(t, Equal(a, b))
	assert.False(t, Equal(a, nil))
	assert.True(t, Equal(nil, nil))
}
