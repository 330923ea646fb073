package similarity

import "strings"

// Ratio returns the similarity ratio between a and b as a value in
// [0.0, 1.0]. Leading and trailing whitespace is trimmed from both inputs
// before matching. Two empty strings are defined as identical (ratio 1.0).
//
// The function is pure and total: it never fails, for any input text.
func Ratio(a, b string) float64 {
	m := newMatcher(strings.TrimSpace(a), strings.TrimSpace(b))
	return m.ratio()
}

// matcher finds matching blocks between two rune sequences.
// Matching operates on runes rather than bytes so that multi-byte
// characters count once in both the matched total and the denominators.
type matcher struct {
	a, b []rune

	// b2j maps each rune in b to its ascending positions in b.
	b2j map[rune][]int
}

func newMatcher(a, b string) *matcher {
	m := &matcher{
		a:   []rune(a),
		b:   []rune(b),
		b2j: make(map[rune][]int),
	}
	for j, r := range m.b {
		m.b2j[r] = append(m.b2j[r], j)
	}
	return m
}

// block is a matching run: a[apos:apos+size] == b[bpos:bpos+size].
type block struct {
	apos, bpos, size int
}

// longestMatch finds the longest matching block within a[alo:ahi] and
// b[blo:bhi]. Ties are broken toward the earliest position in a, then in b,
// which keeps the decomposition deterministic.
func (m *matcher) longestMatch(alo, ahi, blo, bhi int) block {
	best := block{apos: alo, bpos: blo}

	// j2len[j] is the length of the longest match ending at a[i-1], b[j].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > best.size {
				best = block{apos: i - k + 1, bpos: j - k + 1, size: k}
			}
		}
		j2len = next
	}
	return best
}

// matchingBlocks decomposes the two sequences into matching blocks by
// recursively applying longestMatch to the unmatched regions on either
// side of each found block. An explicit stack bounds recursion depth on
// adversarial inputs.
func (m *matcher) matchingBlocks() []block {
	type region struct {
		alo, ahi, blo, bhi int
	}

	stack := []region{{0, len(m.a), 0, len(m.b)}}
	blocks := make([]block, 0)

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		match := m.longestMatch(r.alo, r.ahi, r.blo, r.bhi)
		if match.size == 0 {
			continue
		}
		blocks = append(blocks, match)

		if r.alo < match.apos && r.blo < match.bpos {
			stack = append(stack, region{r.alo, match.apos, r.blo, match.bpos})
		}
		if match.apos+match.size < r.ahi && match.bpos+match.size < r.bhi {
			stack = append(stack, region{match.apos + match.size, r.ahi, match.bpos + match.size, r.bhi})
		}
	}
	return blocks
}

// ratio computes 2*M/T over the matching blocks.
func (m *matcher) ratio() float64 {
	total := len(m.a) + len(m.b)
	if total == 0 {
		return 1.0
	}

	matched := 0
	for _, b := range m.matchingBlocks() {
		matched += b.size
	}
	return 2.0 * float64(matched) / float64(total)
}
