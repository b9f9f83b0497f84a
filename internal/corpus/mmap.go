package corpus

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// LoadMmap reads a large newline-delimited corpus file via a read-only
// memory mapping instead of buffering the whole file through bufio, the
// same technique the reference store (ThreatFlux/searchYAML's
// storage.Store) uses to avoid copying its backing file into the heap.
// Appropriate for corpora near the ~10^5 item scale this engine targets.
func LoadMmap(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("statting corpus %s: %w", path, err)
	}
	if info.Size() == 0 {
		return nil, nil
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping corpus %s: %w", path, err)
	}
	defer mm.Unmap()

	var lines []string
	for _, raw := range bytes.Split(mm, []byte("\n")) {
		lines = append(lines, string(raw))
	}
	return normalize(lines), nil
}
