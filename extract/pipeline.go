package extract

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/treequery/dom"
	"github.com/GriffinCanCode/treequery/selector"
)

// Pair binds a selector (textual chain or selector.Predicate) to the
// extractor applied to its matches.
type Pair struct {
	Selector  any
	Extractor Extractor
}

// Pipeline evaluates selector/extractor pairs against parsed trees. It
// owns the compiled-selector cache, so independent pipelines never share
// cache state and tests can reset it between cases.
type Pipeline struct {
	cache *selector.Cache
	log   *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithCache supplies a shared selector cache.
func WithCache(c *selector.Cache) Option {
	return func(p *Pipeline) { p.cache = c }
}

// WithLogger supplies a structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// New creates a pipeline with its own selector cache and a no-op logger.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range opts {
		opt(p)
	}
	if p.cache == nil {
		p.cache = selector.NewCache()
	}
	if p.log == nil {
		p.log = zap.NewNop()
	}
	return p
}

// defaultPipeline backs the package-level entry points. It shares the
// process-wide selector cache.
var defaultPipeline = New(WithCache(selector.Default()))

// Reset clears the pipeline's compiled-selector cache.
func (p *Pipeline) Reset() {
	p.cache.Reset()
}

// selectFrom selects from a source that is either one tree or a sequence
// of trees (for a sequence, selection runs per member and results
// concatenate in input order).
func (p *Pipeline) selectFrom(src, sel any) ([]*dom.Node, error) {
	switch s := src.(type) {
	case nil:
		return nil, nil
	case *dom.Node:
		return p.cache.Select(sel, s)
	case []*dom.Node:
		return p.cache.Select(sel, s...)
	default:
		return nil, fmt.Errorf("extract: unsupported source type %T", src)
	}
}

// RunOn selects from src and applies ext to the outcome, collapsing by
// match count: zero matches yield nil, one match hands the extractor the
// single node, several hand it the whole ordered sequence. Callers never
// need to know in advance whether a selector is singular.
func (p *Pipeline) RunOn(src, sel any, ext Extractor) (any, error) {
	if ext == nil {
		return nil, fmt.Errorf("extract: nil extractor")
	}
	nodes, err := p.selectFrom(src, sel)
	if err != nil {
		return nil, err
	}
	p.log.Debug("selection complete", zap.Int("matches", len(nodes)))
	switch len(nodes) {
	case 0:
		return nil, nil
	case 1:
		return ext(nodes[0])
	default:
		return ext(nodes)
	}
}

// Extract runs each pair against src independently — all relative to the
// original source, never chained. With no keys it returns the per-pair
// results in order (a single pair unwraps to its bare result); with keys
// it zips keys to results into a record. A failing pair leaves the other
// pairs' results intact; pair errors are aggregated into the returned
// error.
func (p *Pipeline) Extract(src any, keys []string, pairs ...Pair) (any, error) {
	if len(keys) > 0 && len(keys) != len(pairs) {
		return nil, fmt.Errorf("extract: %d keys for %d pairs", len(keys), len(pairs))
	}
	results := make([]any, len(pairs))
	var errs error
	for i, pair := range pairs {
		v, err := p.RunOn(src, pair.Selector, pair.Extractor)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("pair %d: %w", i, err))
			continue
		}
		results[i] = v
	}
	if len(keys) == 0 {
		if len(pairs) == 1 {
			return results[0], errs
		}
		return results, errs
	}
	record := make(map[string]any, len(pairs))
	for i, k := range keys {
		record[k] = results[i]
	}
	return record, errs
}

// ExtractFrom first narrows src with the narrowing selector, then runs
// Extract independently against each sub-source, returning one result per
// sub-source in document order of the narrowing selection.
func (p *Pipeline) ExtractFrom(src, narrow any, keys []string, pairs ...Pair) ([]any, error) {
	subs, err := p.selectFrom(src, narrow)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(subs))
	var errs error
	for i, sub := range subs {
		r, err := p.Extract(sub, keys, pairs...)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("sub-source %d: %w", i, err))
		}
		out = append(out, r)
	}
	return out, errs
}

// RunOn runs on the default pipeline.
func RunOn(src, sel any, ext Extractor) (any, error) {
	return defaultPipeline.RunOn(src, sel, ext)
}

// Extract runs on the default pipeline.
func Extract(src any, keys []string, pairs ...Pair) (any, error) {
	return defaultPipeline.Extract(src, keys, pairs...)
}

// ExtractFrom runs on the default pipeline.
func ExtractFrom(src, narrow any, keys []string, pairs ...Pair) ([]any, error) {
	return defaultPipeline.ExtractFrom(src, narrow, keys, pairs...)
}
