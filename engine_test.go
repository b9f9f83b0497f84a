package quickmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// productCorpus mirrors the sixteen lowercased product names used
// throughout the original autocomplete walkthrough.
var productCorpus = []string{
	"apple iphone 15 pro",
	"apple macbook pro 16",
	"apple airpods pro",
	"samsung galaxy s24",
	"samsung galaxy tab",
	"sony playstation 5",
	"sony wh-1000xm5 headphones",
	"microsoft surface pro",
	"microsoft xbox series x",
	"dell xps 13 laptop",
	"dell ultrasharp monitor",
	"logitech mx master mouse",
	"logitech mechanical keyboard",
	"canon eos r5 camera",
	"nikon z9 camera",
	"gopro hero 12",
}

func newProductEngine() *Engine {
	return Build(productCorpus, nil)
}

func TestBuildEmptyCorpus(t *testing.T) {
	e := Build(nil, nil)
	require.NotNil(t, e)
	assert.Equal(t, 0, e.Len())
	assert.Empty(t, e.Query("apple"))
	assert.Empty(t, e.Query(""))
}

func TestBuildNilConfigUsesDefaults(t *testing.T) {
	e := Build(productCorpus, nil)
	assert.Equal(t, DefaultLimit, e.config.Limit())
	assert.Equal(t, DefaultTrigramBudget, e.config.TrigramBudget())
}

func TestQueryAppleOrdersByLength(t *testing.T) {
	e := newProductEngine()

	results := e.Query("apple")

	assert.Equal(t, []string{
		"apple airpods pro",
		"apple iphone 15 pro",
		"apple macbook pro 16",
	}, results)
}

func TestQueryProMatchesEveryProItem(t *testing.T) {
	e := newProductEngine()

	results := e.Query("pro")

	assert.Equal(t, []string{
		"apple airpods pro",
		"apple iphone 15 pro",
		"apple macbook pro 16",
		"microsoft surface pro",
	}, results)
}

func TestQueryMultiWordIntersects(t *testing.T) {
	e := newProductEngine()

	results := e.Query("apple pro")

	want := []string{"apple airpods pro", "apple iphone 15 pro", "apple macbook pro 16"}
	assert.Equal(t, want, results)
}

func TestQueryExactWordHit(t *testing.T) {
	e := newProductEngine()

	results := e.Query("headphones")

	assert.Equal(t, []string{"sony wh-1000xm5 headphones"}, results)
}

func TestQueryFuzzyTypoFindsHeadphones(t *testing.T) {
	e := newProductEngine()

	results := e.Query("hedphones")

	assert.Contains(t, results, "sony wh-1000xm5 headphones")
}

func TestQueryEmptyOrWhitespaceReturnsEmpty(t *testing.T) {
	e := newProductEngine()

	assert.Empty(t, e.Query(""))
	assert.Empty(t, e.Query("   "))
}

func TestQueryNoTrigramHitReturnsEmpty(t *testing.T) {
	e := newProductEngine()

	assert.Empty(t, e.Query("xzqxzqxzq"))
}

func TestQueryAppleWithLimitOne(t *testing.T) {
	e := newProductEngine()

	results := e.QueryWith("apple", NewBuildConfig().WithLimit(1))

	require.Len(t, results, 1)
	assert.Equal(t, "apple airpods pro", results[0])
}

func TestQueryWithDoesNotMutateEngineDefaults(t *testing.T) {
	e := newProductEngine()

	_ = e.QueryWith("apple", NewBuildConfig().WithLimit(1))

	assert.Equal(t, DefaultLimit, e.config.Limit())
}

func TestQueryDeterministicAcrossRepeatedCalls(t *testing.T) {
	e := newProductEngine()

	first := e.Query("galaxy")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Query("galaxy"))
	}
}

func TestQueryPoolPurity(t *testing.T) {
	e := newProductEngine()

	results := e.Query("samsung galaxy")
	for _, item := range results {
		assert.Contains(t, item, "samsung")
		assert.Contains(t, item, "galaxy")
	}
}

func TestQueryNoDuplicateResults(t *testing.T) {
	e := newProductEngine()

	seen := map[string]bool{}
	for _, item := range e.Query("apple") {
		assert.False(t, seen[item], "duplicate result: %s", item)
		seen[item] = true
	}
}

func TestQueryCaseAndWhitespaceNormalization(t *testing.T) {
	e := newProductEngine()

	base := e.Query("apple")
	assert.Equal(t, base, e.Query("APPLE"))
	assert.Equal(t, base, e.Query("  apple  "))
}

func TestQueryNonASCIISuffixIsInert(t *testing.T) {
	e := newProductEngine()

	base := e.Query("apple")
	assert.Equal(t, base, e.Query("appleé"))
}

func TestFingerprintStableForSameCorpus(t *testing.T) {
	e1 := Build(productCorpus, nil)
	e2 := Build(productCorpus, nil)

	assert.Equal(t, e1.Fingerprint(), e2.Fingerprint())
}

func TestFingerprintChangesWithCorpus(t *testing.T) {
	e1 := Build(productCorpus, nil)
	e2 := Build(append(append([]string{}, productCorpus...), "extra item"), nil)

	assert.NotEqual(t, e1.Fingerprint(), e2.Fingerprint())
}

func TestLenReportsItemCount(t *testing.T) {
	e := newProductEngine()
	assert.Equal(t, len(productCorpus), e.Len())
}

func TestConfigReturnsBuildTimeConfig(t *testing.T) {
	built := NewBuildConfig().WithLimit(3)
	e := Build(productCorpus, &built)

	assert.Equal(t, 3, e.Config().Limit())
}
