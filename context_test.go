package quickmatch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryScratchReset(t *testing.T) {
	s := acquireScratch()

	s.scores[7] = 3
	s.visited[trigramKey{'a', 'b', 'c'}] = struct{}{}
	s.unknown = append(s.unknown, []byte("foo"))
	s.knownSets = append(s.knownSets, newPostingSet())

	s.reset()

	assert.Empty(t, s.scores)
	assert.Empty(t, s.visited)
	assert.Empty(t, s.unknown)
	assert.Empty(t, s.knownSets)

	releaseScratch(s)
}

func TestScratchPoolConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s := acquireScratch()
			s.scores[n] = n
			releaseScratch(s)
		}(i)
	}
	wg.Wait()
}
