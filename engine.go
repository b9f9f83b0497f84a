// Package quickmatch is a small, in-memory fuzzy autocomplete engine.
// It builds an immutable dual index (exact word + trigram) once from a
// fixed corpus of short strings and answers prefix-free substring/
// near-match queries against it with no further allocation surviving
// the call. See SPEC_FULL.md for the full design.
package quickmatch

import "github.com/cespare/xxhash/v2"

// Engine is an immutable, concurrency-safe match index built once from
// a slice of items. The zero value is not usable; construct one with
// Build. After Build returns, an Engine has no interior mutation on
// the query path — every Query/QueryWith call works over its own
// pooled scratch (see context.go) and never touches shared state.
type Engine struct {
	items    []string
	words    map[string]*postingSet
	trigrams map[trigramKey]*postingSet
	stats    stats
	config   BuildConfig
}

// Build indexes items once and returns an immutable Engine. items are
// assumed already normalized — non-empty, ASCII, lowercase, trimmed
// (§4.1) — Build does not re-normalize them. A nil config uses
// NewBuildConfig's defaults. Build is total: even an empty item slice
// produces a usable Engine that matches nothing (§8 property 5).
func Build(items []string, config *BuildConfig) *Engine {
	cfg := NewBuildConfig()
	if config != nil {
		cfg = *config
	}

	seps := cfg.separators
	idx, st := buildIndex(items, &seps)

	return &Engine{
		items:    items,
		words:    idx.words,
		trigrams: idx.trigrams,
		stats:    st,
		config:   cfg,
	}
}

// Query answers text using the Engine's own default configuration
// (the one passed to Build, or NewBuildConfig's defaults).
func (e *Engine) Query(text string) []string {
	return e.search(text, e.config)
}

// QueryWith answers text using an explicit QueryConfig, overriding
// separators, limit, and trigram budget for this call only. The
// Engine's default configuration and its indexes are unaffected.
func (e *Engine) QueryWith(text string, config QueryConfig) []string {
	return e.search(text, config)
}

// Fingerprint returns a 64-bit content hash of the corpus this Engine
// was built from. It plays no part in indexing or scoring; comparing
// two fingerprints lets a long-running consumer detect that a corpus
// changed without diffing the whole item slice. cmd/quickmatch-server
// logs it when the corpus is indexed.
func (e *Engine) Fingerprint() uint64 {
	h := xxhash.New()
	for _, item := range e.items {
		_, _ = h.WriteString(item)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// Len returns the number of items the Engine was built from.
func (e *Engine) Len() int {
	return len(e.items)
}

// Config returns the configuration an Engine was built with, so a
// caller can derive a QueryWith override (e.g. a one-off limit) without
// reconstructing defaults from scratch.
func (e *Engine) Config() QueryConfig {
	return e.config
}
