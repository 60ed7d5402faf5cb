package loader

import (
	"strings"
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/treequery/dom"
)

func TestParseSimple(t *testing.T) {
	tree, err := Parse(`<html><body><p id="x">hello</p></body></html>`)
	require.NoError(t, err)
	require.NotNil(t, tree)
	assert.Equal(t, dom.KindDocument, tree.Kind)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Validate(""))
	assert.NoError(t, Validate("<p>ok</p>"))
	assert.Error(t, Validate(strings.Repeat("x", MaxHTMLSize+1)))
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)
}

func TestDetectCharsetFallback(t *testing.T) {
	assert.Equal(t, "utf-8", DetectCharset(nil))
}

func TestSanitizerStripsScript(t *testing.T) {
	l := New(WithSanitizer(bluemonday.UGCPolicy()))
	tree, err := l.Parse(`<html><body><p>ok</p><script>evil()</script></body></html>`)
	require.NoError(t, err)

	var sawScript bool
	loc := dom.Root(tree)
	for {
		if loc.Node().Tag == "script" {
			sawScript = true
		}
		next, ok := loc.Next()
		if !ok {
			break
		}
		loc = next
	}
	assert.False(t, sawScript)
}
