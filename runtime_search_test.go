package quickmatch

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQueryTrimsFoldsAndDropsNonASCII(t *testing.T) {
	assert.Equal(t, "apple", normalizeQuery("  APPLE  "))
	assert.Equal(t, "apl", normalizeQuery("aplé"))
	assert.Equal(t, "caf", normalizeQuery("café"))
}

func TestSplitWordsOnConfiguredSeparators(t *testing.T) {
	var seps [256]bool
	for _, b := range []byte{'_', '-', ' '} {
		seps[b] = true
	}

	words := splitWords("apple-iphone_15 pro", &seps)
	assert.Equal(t, []string{"apple", "iphone", "15", "pro"}, words)
}

func TestSplitWordsHandlesLeadingTrailingSeparators(t *testing.T) {
	var seps [256]bool
	seps[' '] = true

	assert.Equal(t, []string{"apple"}, splitWords("  apple  ", &seps))
	assert.Nil(t, splitWords("   ", &seps))
	assert.Nil(t, splitWords("", &seps))
}

func TestDedupeWordsFoldsDuplicatesAndDropsOverlong(t *testing.T) {
	words := dedupeWords([]string{"pro", "pro", "", "apple", "toolongforthislimit"}, 10)
	assert.Equal(t, []string{"pro", "apple"}, words)
}

func TestDedupeWordsEmptyInput(t *testing.T) {
	assert.Nil(t, dedupeWords(nil, 10))
}

func TestRankExactOrdersByLength(t *testing.T) {
	e := newProductEngine()

	pool := map[int]struct{}{}
	for h, item := range e.items {
		if strings.Contains(item, "apple") {
			pool[h] = struct{}{}
		}
	}

	results := e.rankExact(pool, 100)
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, len(results[i-1]), len(results[i]))
	}
}

func TestRankExactRespectsLimit(t *testing.T) {
	e := newProductEngine()

	pool := map[int]struct{}{}
	for h := range e.items {
		pool[h] = struct{}{}
	}

	results := e.rankExact(pool, 3)
	assert.Len(t, results, 3)
}

func TestRunTrigramScheduleRespectsBudget(t *testing.T) {
	e := newProductEngine()
	scratch := acquireScratch()
	defer releaseScratch(scratch)

	scratch.unknown = append(scratch.unknown, []byte("hedphonesxyz"), []byte("abcdefghijk"))

	budget := 4
	e.runTrigramSchedule(scratch, 12, budget, false)

	assert.LessOrEqual(t, len(scratch.visited), budget,
		"the number of fresh trigrams charged must never exceed the budget")
}

func TestRunTrigramScheduleHitCountWithinBudget(t *testing.T) {
	e := newProductEngine()
	scratch := acquireScratch()
	defer releaseScratch(scratch)

	scratch.unknown = append(scratch.unknown, []byte("hedphones"))
	hits := e.runTrigramSchedule(scratch, 9, DefaultTrigramBudget, false)

	assert.GreaterOrEqual(t, hits, 0)
	assert.LessOrEqual(t, hits, DefaultTrigramBudget)
}

func TestRankFuzzyOpenModeNoTrigramHitsYieldsEmpty(t *testing.T) {
	e := newProductEngine()
	scratch := acquireScratch()
	defer releaseScratch(scratch)

	scratch.unknown = append(scratch.unknown, []byte("xzqxzqxzq"))
	cfg := NewBuildConfig()

	results := e.rankFuzzy(nil, false, scratch, len("xzqxzqxzq"), cfg)
	assert.Empty(t, results, "a word whose trigrams hit nothing must yield no candidates")
}

func TestRankFuzzyPoolModeOnlyRefinesPooledItems(t *testing.T) {
	e := newProductEngine()

	pool := map[int]struct{}{}
	for h, item := range e.items {
		if strings.Contains(item, "apple") {
			pool[h] = struct{}{}
		}
	}

	scratch := acquireScratch()
	defer releaseScratch(scratch)
	scratch.unknown = append(scratch.unknown, []byte("macbok")) // typo for macbook

	results := e.rankFuzzy(pool, true, scratch, len("macbok"), NewBuildConfig())
	for _, item := range results {
		assert.Contains(t, item, "apple",
			"pool mode must never surface an item outside the exact-word pool")
	}
}

func TestSearchIntegratesPipelineEndToEnd(t *testing.T) {
	e := newProductEngine()

	results := e.search("apple pro", e.config)
	require.NotEmpty(t, results)
	for _, item := range results {
		assert.True(t, strings.Contains(item, "apple") && strings.Contains(item, "pro"))
	}
}

func TestSearchGuardsAgainstOverlongQuery(t *testing.T) {
	e := newProductEngine()

	huge := strings.Repeat("a", e.stats.maxQueryLen+1)
	assert.Empty(t, e.search(huge, e.config))
}

func TestSearchConcurrentQueriesShareNoState(t *testing.T) {
	e := newProductEngine()

	var wg sync.WaitGroup
	queries := []string{"apple", "pro", "galaxy", "headphones", "hedphones", "xzqxzqxzq"}

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			q := queries[n%len(queries)]
			_ = e.Query(q)
		}(i)
	}
	wg.Wait()
}
