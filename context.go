package quickmatch

import "sync"

// queryScratch holds every mutable, per-query temporary: the score
// accumulator, the set of trigrams already charged against the
// budget, and the staging slices the planner fills before handing
// them to the scheduler. None of this may live on Engine itself — the
// concurrent-readers contract (§5) requires queries to share no
// mutable state — so scratch is pooled and reset between uses instead,
// the same role Context plays for the teacher's zero-allocation search.
type queryScratch struct {
	scores    map[int]int
	visited   map[trigramKey]struct{}
	unknown   [][]byte
	knownSets []*postingSet
}

// scratchPool reuses queryScratch instances across queries instead of
// allocating a fresh scores map and visited set every call.
var scratchPool = sync.Pool{
	New: func() interface{} {
		return &queryScratch{
			scores:  make(map[int]int),
			visited: make(map[trigramKey]struct{}),
		}
	},
}

func acquireScratch() *queryScratch {
	return scratchPool.Get().(*queryScratch)
}

func releaseScratch(s *queryScratch) {
	s.reset()
	scratchPool.Put(s)
}

// reset clears every field for reuse without discarding the
// underlying map/slice allocations.
func (s *queryScratch) reset() {
	for k := range s.scores {
		delete(s.scores, k)
	}
	for k := range s.visited {
		delete(s.visited, k)
	}
	s.unknown = s.unknown[:0]
	s.knownSets = s.knownSets[:0]
}
