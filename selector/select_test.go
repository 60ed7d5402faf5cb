package selector_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/treequery/dom"
	"github.com/GriffinCanCode/treequery/loader"
	"github.com/GriffinCanCode/treequery/selector"
)

const orderHTML = `
<html><body>
<div class="outer item" id="first">
	<p class="item">one</p>
	<div class="inner">
		<span class="item">two</span>
	</div>
</div>
<ul>
	<li class="item">three</li>
	<li class="item">four</li>
</ul>
</body></html>
`

func textOf(n *dom.Node) string {
	var b strings.Builder
	var walk func(*dom.Node)
	walk = func(n *dom.Node) {
		switch n.Kind {
		case dom.KindText:
			b.WriteString(n.Text)
		case dom.KindComment, dom.KindDoctype:
		default:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// Selection order is cross-checked against goquery, which walks the same
// document with an independent engine.
func TestSelectDocumentOrderAgainstGoquery(t *testing.T) {
	tree, err := loader.Parse(orderHTML)
	require.NoError(t, err)

	nodes, err := selector.Select(".item", tree)
	require.NoError(t, err)

	var got []string
	for _, n := range nodes {
		got = append(got, textOf(n))
	}

	gq, err := goquery.NewDocumentFromReader(strings.NewReader(orderHTML))
	require.NoError(t, err)
	var want []string
	gq.Find(".item").Each(func(_ int, s *goquery.Selection) {
		want = append(want, strings.TrimSpace(s.Text()))
	})

	assert.Equal(t, want, got)
}

func TestSelectNoDuplicates(t *testing.T) {
	tree, err := loader.Parse(orderHTML)
	require.NoError(t, err)

	nodes, err := selector.Select("div", tree)
	require.NoError(t, err)

	seen := make(map[*dom.Node]bool)
	for _, n := range nodes {
		assert.False(t, seen[n], "node visited twice")
		seen[n] = true
	}
	assert.Len(t, nodes, 2)
}

func TestSelectMultipleRootsConcatenate(t *testing.T) {
	tree, err := loader.Parse(orderHTML)
	require.NoError(t, err)

	lists, err := selector.Select("li", tree)
	require.NoError(t, err)
	require.Len(t, lists, 2)

	// Selecting over a prior selection result applies per member, in
	// order; the function-valued selector bypasses compilation.
	textNodes := func(l *dom.Location) bool {
		return l.Node().Kind == dom.KindText
	}
	texts, err := selector.Select(textNodes, lists...)
	require.NoError(t, err)
	require.Len(t, texts, 2)
	assert.Equal(t, "three", texts[0].Text)
	assert.Equal(t, "four", texts[1].Text)
}

func TestSelectNilRootSkipped(t *testing.T) {
	nodes, err := selector.Select("div", nil)
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestSelectConcurrentSharedTree(t *testing.T) {
	tree, err := loader.Parse(orderHTML)
	require.NoError(t, err)

	done := make(chan int, 8)
	for i := 0; i < 8; i++ {
		go func() {
			nodes, err := selector.Select(".item", tree)
			if err != nil {
				done <- -1
				return
			}
			done <- len(nodes)
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, 5, <-done)
	}
}
