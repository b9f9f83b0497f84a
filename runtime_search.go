package quickmatch

import (
	"sort"
	"strings"
)

// search runs the full query pipeline described in §4.2–§4.4: guard,
// normalize, tokenize, classify, intersect, and — when the query has
// any unknown words — schedule trigrams and score. It never returns
// an error; every failure mode in §7 resolves to a nil slice.
func (e *Engine) search(text string, cfg BuildConfig) []string {
	// Step 1 — guards. Length is measured on the raw, pre-normalized
	// query: §9's Open Questions preserves this intentionally, since
	// it also drives the open-mode length filter in rankFuzzy.
	queryLen := len(text)
	if queryLen == 0 || queryLen > e.stats.maxQueryLen {
		return nil
	}

	// Step 2 — normalize.
	normalized := normalizeQuery(text)

	// Step 3 — tokenize into a deduplicated set, dropping anything
	// too long or empty.
	seps := cfg.separators
	tokens := dedupeWords(splitWords(normalized, &seps), e.stats.maxWordLen)
	if len(tokens) == 0 || len(tokens) > e.stats.maxWordCount {
		return nil
	}

	scratch := acquireScratch()
	defer releaseScratch(scratch)

	// Step 4 — classify known vs. unknown.
	for _, word := range tokens {
		if set, known := e.words[word]; known {
			scratch.knownSets = append(scratch.knownSets, set)
		} else if len(word) >= 3 && len(scratch.unknown) < cfg.trigramBudget {
			scratch.unknown = append(scratch.unknown, []byte(word))
		}
	}

	// Step 5 — pool.
	pool, hasPool := intersectPostings(scratch.knownSets)

	// Step 6 — dispatch.
	if hasPool && len(scratch.unknown) == 0 {
		return e.rankExact(pool, cfg.limit)
	}
	if !hasPool && len(scratch.unknown) == 0 {
		return nil
	}

	return e.rankFuzzy(pool, hasPool, scratch, queryLen, cfg)
}

// normalizeQuery trims whitespace, drops non-ASCII characters, and
// folds to ASCII lowercase (§4.2 step 2). Items are never normalized
// this way — only queries are (§9, "Asymmetric normalization").
func normalizeQuery(s string) string {
	s = strings.TrimSpace(s)

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// splitWords scans s byte by byte using the lookup table in seps,
// returning every maximal non-empty run between separators (§3,
// "Word"). Items are tokenized the same way at build time — only
// normalization is asymmetric, not tokenization.
func splitWords(s string, seps *[256]bool) []string {
	var words []string
	start := -1
	for i := 0; i < len(s); i++ {
		if seps[s[i]] {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}

// dedupeWords folds duplicate tokens into a set (§4.2 step 3),
// dropping any word longer than maxWordLen.
func dedupeWords(words []string, maxWordLen int) []string {
	if len(words) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" || len(w) > maxWordLen {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// rankExact is the exact-match fast path of §4.2 step 6: every query
// word was known, so the pool already satisfies every constraint.
// Results are ordered by length ascending; items of equal length keep
// corpus order (ascending handle).
func (e *Engine) rankExact(pool map[int]struct{}, limit int) []string {
	handles := make([]int, 0, len(pool))
	for h := range pool {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool {
		li, lj := len(e.items[handles[i]]), len(e.items[handles[j]])
		if li != lj {
			return li < lj
		}
		return handles[i] < handles[j]
	})
	if len(handles) > limit {
		handles = handles[:limit]
	}
	return e.itemsFor(handles)
}

// scoredHandle pairs an item handle with its accumulated score for the
// final sort in rankFuzzy.
type scoredHandle struct {
	handle int
	score  int
}

// rankFuzzy runs the trigram scheduler (§4.3) and scorer (§4.4) over
// the unknown words, then ranks by (score desc, length asc).
func (e *Engine) rankFuzzy(pool map[int]struct{}, hasPool bool, scratch *queryScratch, queryLen int, cfg BuildConfig) []string {
	if hasPool {
		for h := range pool {
			scratch.scores[h] = 1
		}
	}

	hitCount := e.runTrigramSchedule(scratch, queryLen, cfg.trigramBudget, hasPool)

	minScore := (hitCount + 1) / 2
	if minScore < 1 {
		minScore = 1
	}

	results := make([]scoredHandle, 0, len(scratch.scores))
	for h, score := range scratch.scores {
		if score >= minScore {
			results = append(results, scoredHandle{h, score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		li, lj := len(e.items[results[i].handle]), len(e.items[results[j].handle])
		if li != lj {
			return li < lj
		}
		return results[i].handle < results[j].handle
	})

	if len(results) > cfg.limit {
		results = results[:cfg.limit]
	}

	handles := make([]int, len(results))
	for i, c := range results {
		handles[i] = c.handle
	}
	return e.itemsFor(handles)
}

// runTrigramSchedule walks the position schedule (§4.3) round-major,
// word-minor. budget is also the round count (r ranges over
// [0, budget)); remaining is the separate credit counter charged once
// per fresh trigram, hit or miss — the duality §9's Open Questions
// calls out explicitly. Returns the number of trigrams that hit the
// trigram index.
func (e *Engine) runTrigramSchedule(scratch *queryScratch, queryLen, budget int, hasPool bool) int {
	hitCount := 0
	minLen := queryLen - 3
	if minLen < 0 {
		minLen = 0
	}

	remaining := budget

round:
	for r := 0; r < budget; r++ {
		for _, word := range scratch.unknown {
			if remaining == 0 {
				break round
			}

			pos, ok := trigramPosition(r, len(word))
			if !ok {
				continue
			}

			tg := trigramKey{word[pos], word[pos+1], word[pos+2]}
			if _, dup := scratch.visited[tg]; dup {
				continue
			}
			scratch.visited[tg] = struct{}{}
			remaining--

			set, found := e.trigrams[tg]
			if !found {
				continue
			}
			hitCount++

			if hasPool {
				set.each(func(h int) bool {
					if _, inPool := scratch.scores[h]; inPool {
						scratch.scores[h]++
					}
					return true
				})
			} else {
				set.each(func(h int) bool {
					if len(e.items[h]) >= minLen {
						scratch.scores[h]++
					}
					return true
				})
			}
		}
	}

	return hitCount
}

// itemsFor resolves a slice of handles to their original text, in the
// order given.
func (e *Engine) itemsFor(handles []int) []string {
	if len(handles) == 0 {
		return nil
	}
	out := make([]string, len(handles))
	for i, h := range handles {
		out[i] = e.items[h]
	}
	return out
}
