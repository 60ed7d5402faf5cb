package selector

import (
	"github.com/GriffinCanCode/treequery/dom"
)

// Select resolves sel (a textual chain or a predicate) against this cache
// and scans each root in document order, collecting matching nodes. Each
// position is visited exactly once, so results carry no duplicates and
// preserve document order; results from several roots concatenate in
// input order. Nil roots are skipped.
func (c *Cache) Select(sel any, roots ...*dom.Node) ([]*dom.Node, error) {
	p, err := c.Resolve(sel)
	if err != nil {
		return nil, err
	}
	var out []*dom.Node
	for _, root := range roots {
		if root == nil {
			continue
		}
		loc := dom.Root(root)
		for {
			if p(loc) {
				out = append(out, loc.Node())
			}
			next, ok := loc.Next()
			if !ok {
				break
			}
			loc = next
		}
	}
	return out, nil
}

// Select scans with the process-wide cache.
func Select(sel any, roots ...*dom.Node) ([]*dom.Node, error) {
	return defaultCache.Select(sel, roots...)
}
