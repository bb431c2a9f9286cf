package usecase

// Ratio computes a similarity score in [0.0, 1.0] between two strings
// using the Ratcliff/Obershelp matching-blocks measure: twice the total
// length of the longest common matching-block decomposition, divided by
// the combined length of both strings. 1.0 means identical strings and
// the measure is symmetric.
//
// This is a ranking signal only; it never decides match/no-match.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}

	m := newSequenceMatcher(ra, rb)
	matches := m.matchCount(0, len(ra), 0, len(rb))

	return 2.0 * float64(matches) / float64(total)
}

// sequenceMatcher indexes the second sequence by rune so longest-match
// lookups stay O(n*m) instead of rescanning b for every position of a.
type sequenceMatcher struct {
	a   []rune
	b   []rune
	b2j map[rune][]int
}

func newSequenceMatcher(a, b []rune) *sequenceMatcher {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}
	return &sequenceMatcher{a: a, b: b, b2j: b2j}
}

// matchCount sums the sizes of all matching blocks in a[alo:ahi] vs
// b[blo:bhi]: the longest matching block, then recursively the pieces
// to its left and right.
func (m *sequenceMatcher) matchCount(alo, ahi, blo, bhi int) int {
	besti, bestj, size := m.longestMatch(alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}

	count := size
	count += m.matchCount(alo, besti, blo, bestj)
	count += m.matchCount(besti+size, ahi, bestj+size, bhi)
	return count
}

// longestMatch finds the longest block where a[i:i+k] == b[j:j+k] within
// the given bounds. Ties go to the earliest i, then the earliest j, which
// keeps the decomposition deterministic.
func (m *sequenceMatcher) longestMatch(alo, ahi, blo, bhi int) (int, int, int) {
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j] is the length of the matching block ending at a[i], b[j]
	j2len := make(map[int]int)

	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return besti, bestj, bestsize
}
