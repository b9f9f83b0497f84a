package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// itemsDocument is the shape of a standalone corpus file (as opposed to
// a Config that embeds items inline).
type itemsDocument struct {
	Items []string `yaml:"items"`
}

// Load resolves the corpus this Config describes into a normalized item
// slice: items embedded directly in the config take priority, otherwise
// CorpusFile is read and parsed as YAML (if it ends in .yaml/.yml) or as
// a plain newline-delimited list.
func (c *Config) Load() ([]string, error) {
	if len(c.Items) > 0 {
		return normalize(c.Items), nil
	}
	if c.CorpusFile == "" {
		return nil, fmt.Errorf("corpus config has neither items nor corpus_file")
	}
	return LoadFile(c.CorpusFile)
}

// LoadFile reads a corpus from path, dispatching on extension.
func LoadFile(path string) ([]string, error) {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return loadYAMLFile(path)
	}
	return loadLineFile(path)
}

func loadYAMLFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}

	var doc itemsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing corpus %s: %w", path, err)
	}
	return normalize(doc.Items), nil
}

func loadLineFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}
	return normalize(lines), nil
}

// normalize enforces the engine's item contract (§4.1, §6): non-empty,
// ASCII, lowercase, trimmed. Lines that are empty after trimming are
// dropped rather than indexed as blank items.
func normalize(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		item := asciiLowerTrim(line)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func asciiLowerTrim(s string) string {
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
