package quickmatch

// stats are the corpus-derived caps computed once at build time and
// frozen for the life of the Engine. They act as cheap sanity gates
// against pathological queries (§3).
type stats struct {
	maxQueryLen   int
	maxWordLen    int
	maxWordCount  int
}

// buildIndex tokenizes every item and populates both postings. It is
// total: there is no error path, and an empty item slice yields an
// empty index. maxWordLen is intentionally tracked from each item's
// byte length rather than the word's — preserved as-specified (see
// DESIGN.md, "max_word_len").
func buildIndex(items []string, seps *[256]bool) (*postings, stats) {
	idx := newPostings()

	var maxItemLen, maxWordLen int
	for handle, item := range items {
		if len(item) > maxItemLen {
			maxItemLen = len(item)
		}

		for _, word := range splitWords(item, seps) {
			if len(item) > maxWordLen {
				maxWordLen = len(item)
			}

			idx.insertWord(word, handle)

			if len(word) < 3 {
				continue
			}
			for i := 0; i+3 <= len(word); i++ {
				idx.insertTrigram(trigramKey{word[i], word[i+1], word[i+2]}, handle)
			}
		}
	}

	return idx, stats{
		maxQueryLen:  maxItemLen + 6,
		maxWordLen:   maxWordLen + 4,
		maxWordCount: maxWordLen + 6,
	}
}
