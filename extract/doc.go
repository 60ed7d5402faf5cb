// Package extract maps selection results into caller-defined shapes:
// scalars, ordered sequences, and keyed records.
//
// An Extractor receives either one node or an ordered node sequence and
// the distinction propagates transparently: every built-in extractor maps
// element-wise over sequences, so callers write one extractor and it works
// for both shapes. Absent values (no tag, missing attribute, zero matches)
// are nil, never errors.
//
// The Pipeline orchestrator binds a selector cache and a logger and offers
// the two entry points:
//   - Extract: run independent selector/extractor pairs against one source
//   - ExtractFrom: narrow the source first, then extract per sub-source
//
// A failing pair never prevents independent pairs in the same call from
// completing; their errors are aggregated and returned alongside the
// partial result.
package extract
