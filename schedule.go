package quickmatch

// trigramPosition implements the deterministic position schedule of
// §4.3: round 0 samples the head, round 1 the tail, round 2 the
// middle, and every round after that fans outward from the middle,
// alternating left and right. ok is false when this (round, wordLen)
// pair has no fresh position to offer — the caller must skip the word
// for this round without charging the budget.
//
// The ordering here (round-major in the caller, word-minor within a
// round) and every skip rule below are load-bearing: they decide which
// trigrams get charged against the budget and therefore which items
// clear the scorer's threshold. Do not "simplify" the arithmetic.
func trigramPosition(round, wordLen int) (pos int, ok bool) {
	maxPos := wordLen - 3

	switch {
	case round == 0:
		return 0, true

	case round == 1:
		if maxPos > 0 {
			return maxPos, true
		}
		return 0, false

	case round == 2:
		if maxPos > 1 {
			return maxPos / 2, true
		}
		return 0, false

	default:
		if maxPos <= 2 {
			return 0, false
		}
		mid := maxPos / 2
		offset := (round - 2) >> 1
		if round&1 == 1 {
			pos = mid - offset
		} else {
			pos = mid + offset
		}
		if pos <= 0 || pos >= maxPos || pos == mid {
			return 0, false
		}
		return pos, true
	}
}
