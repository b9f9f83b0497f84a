package quickmatch

// Default option values applied by NewBuildConfig.
const (
	DefaultLimit         = 100
	DefaultTrigramBudget = 6

	maxTrigramBudget = 20
)

// BuildConfig controls how an Engine tokenizes items at build time and
// how it answers queries by default. A zero-value BuildConfig is not the
// default configuration: it has no separators, a limit of 0 and a
// trigram budget of 0, and nothing replaces those fields. Callers
// construct one with NewBuildConfig and the With* methods rather than
// composite literals, so that limit and trigram budget stay clamped to
// their valid ranges.
type BuildConfig struct {
	separators    [256]bool
	limit         int
	trigramBudget int
}

// QueryConfig is BuildConfig's sibling name for the per-query override
// passed to Engine.QueryWith. The two are the same type: a query can
// override separators along with limit and trigram budget, exactly as
// it could at build time.
type QueryConfig = BuildConfig

var defaultSeparatorBytes = []byte{'_', '-', ' '}

// NewBuildConfig returns the default configuration: separators
// {'_', '-', ' '}, limit 100, trigram budget 6.
func NewBuildConfig() BuildConfig {
	cfg := BuildConfig{
		limit:         DefaultLimit,
		trigramBudget: DefaultTrigramBudget,
	}
	for _, b := range defaultSeparatorBytes {
		cfg.separators[b] = true
	}
	return cfg
}

// WithSeparators replaces the set of bytes that split items and
// queries into words.
func (c BuildConfig) WithSeparators(separators []byte) BuildConfig {
	var table [256]bool
	for _, b := range separators {
		table[b] = true
	}
	c.separators = table
	return c
}

// WithLimit sets the maximum number of results returned by a query.
// Values below 1 are clamped to 1.
func (c BuildConfig) WithLimit(limit int) BuildConfig {
	if limit < 1 {
		limit = 1
	}
	c.limit = limit
	return c
}

// WithTrigramBudget sets the maximum number of fresh trigrams probed
// per query. Clamped to [0, 20]; 0 disables fuzzy matching.
func (c BuildConfig) WithTrigramBudget(budget int) BuildConfig {
	if budget < 0 {
		budget = 0
	}
	if budget > maxTrigramBudget {
		budget = maxTrigramBudget
	}
	c.trigramBudget = budget
	return c
}

// Limit returns the configured result limit.
func (c BuildConfig) Limit() int { return c.limit }

// TrigramBudget returns the configured trigram budget.
func (c BuildConfig) TrigramBudget() int { return c.trigramBudget }

// Separators returns the separator lookup table: entry b is true when
// byte b splits words under this configuration.
func (c BuildConfig) Separators() [256]bool { return c.separators }
