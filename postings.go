package quickmatch

import "github.com/google/btree"

// btreeDegree controls the branching factor of every posting set's
// backing tree. 32 matches the degree ThreatFlux/searchYAML uses for
// its field indexes; it's a reasonable default for sets that rarely
// exceed a few thousand handles.
const btreeDegree = 32

// postingSet is an ordered set of item handles. It backs both the word
// index and the trigram index. Using an ordered tree instead of a bare
// map[int]struct{} gives Len() for free (needed to sort known-word
// postings by size, §4.2 step 5) and deterministic ascending iteration,
// instead of Go's randomized map iteration order.
type postingSet struct {
	tree *btree.BTreeG[int]
}

func newPostingSet() *postingSet {
	return &postingSet{
		tree: btree.NewG(btreeDegree, func(a, b int) bool { return a < b }),
	}
}

func (p *postingSet) add(handle int) {
	p.tree.ReplaceOrInsert(handle)
}

func (p *postingSet) has(handle int) bool {
	_, ok := p.tree.Get(handle)
	return ok
}

func (p *postingSet) len() int {
	return p.tree.Len()
}

// each calls fn for every handle in ascending order, stopping early if
// fn returns false.
func (p *postingSet) each(fn func(handle int) bool) {
	p.tree.Ascend(func(item int) bool { return fn(item) })
}

// trigramKey is an ordered triple of bytes: the query and item
// contract guarantees ASCII, so a trigram is exactly three bytes wide
// and comparable as a plain array, unlike the [3]rune window the Rust
// original uses.
type trigramKey [3]byte

// postings holds the two immutable inverted indexes built once by
// Build and never mutated afterward: word -> items and trigram ->
// items.
type postings struct {
	words    map[string]*postingSet
	trigrams map[trigramKey]*postingSet
}

func newPostings() *postings {
	return &postings{
		words:    make(map[string]*postingSet),
		trigrams: make(map[trigramKey]*postingSet),
	}
}

func (p *postings) insertWord(word string, handle int) {
	set, ok := p.words[word]
	if !ok {
		set = newPostingSet()
		p.words[word] = set
	}
	set.add(handle)
}

func (p *postings) insertTrigram(tg trigramKey, handle int) {
	set, ok := p.trigrams[tg]
	if !ok {
		set = newPostingSet()
		p.trigrams[tg] = set
	}
	set.add(handle)
}

// intersectPostings intersects the posting sets of every known query
// word, iterating smallest-to-largest so the running intersection
// shrinks as fast as possible, and exits as soon as it empties out.
// Returns (nil, false) when sets is empty — "the pool is undefined".
func intersectPostings(sets []*postingSet) (map[int]struct{}, bool) {
	if len(sets) == 0 {
		return nil, false
	}

	ordered := make([]*postingSet, len(sets))
	copy(ordered, sets)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j-1].len() > ordered[j].len(); j-- {
			ordered[j-1], ordered[j] = ordered[j], ordered[j-1]
		}
	}

	pool := make(map[int]struct{}, ordered[0].len())
	ordered[0].each(func(h int) bool {
		pool[h] = struct{}{}
		return true
	})

	for _, set := range ordered[1:] {
		if len(pool) == 0 {
			break
		}
		for h := range pool {
			if !set.has(h) {
				delete(pool, h)
			}
		}
	}

	return pool, true
}
