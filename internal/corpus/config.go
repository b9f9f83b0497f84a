// Package corpus loads the item list and per-run tuning knobs that
// back a quickmatch.Engine from disk. None of this is part of the
// engine's own contract — it parses no files and knows nothing about
// YAML — this package is the collaborator that feeds it.
package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avalonix/quickmatch"
)

// Config is the on-disk shape of a corpus/build configuration document,
// loaded by cmd/quickmatch and cmd/quickmatch-server.
//
// TrigramBudget is a pointer so an explicit `trigram_budget: 0` (disable
// fuzzy matching entirely) is distinguishable from an unset field, which
// must fall back to quickmatch.DefaultTrigramBudget.
type Config struct {
	Items         []string `yaml:"items"`
	CorpusFile    string   `yaml:"corpus_file,omitempty"`
	Separators    string   `yaml:"separators"`
	Limit         int      `yaml:"limit"`
	TrigramBudget *int     `yaml:"trigram_budget"`
}

// LoadConfig reads and parses a YAML configuration document from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// BuildConfig translates the on-disk Config into a quickmatch.BuildConfig,
// applying defaults for any zero-value field.
func (c *Config) BuildConfig() quickmatch.BuildConfig {
	cfg := quickmatch.NewBuildConfig()
	if c.Separators != "" {
		cfg = cfg.WithSeparators([]byte(c.Separators))
	}
	if c.Limit > 0 {
		cfg = cfg.WithLimit(c.Limit)
	}
	if c.TrigramBudget != nil {
		cfg = cfg.WithTrigramBudget(*c.TrigramBudget)
	}
	return cfg
}
