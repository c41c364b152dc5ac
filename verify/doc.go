// Package verify implements the post-construction assertions
// SPEC_FULL.md §4.7 runs over a witnessed (f, layer) pair: a domain
// check, an initial-layer check, and a per-flavor definitional check.
// These are not part of the search itself — they are diagnostics a
// caller (or a test) runs against output a driver has already produced,
// ported from original_source/src/pflow.rs's check_definition (and the
// sibling check_domain/check_initial the original's common module
// provided but this pack's retrieval did not keep a copy of).
//
// Every check returns a plain error rather than panicking: SPEC_FULL.md
// §7 treats a post-check failure as a programmer error in the driver,
// but a library caller deciding whether to trust a result — especially
// in a property-based test — needs that failure as a value, not a
// process abort.
package verify
