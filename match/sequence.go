package match

// Rune-level sequence alignment in the difflib tradition: find the longest
// contiguous matching block, recurse on the pieces to the left and right,
// then collapse adjacent blocks. The sequence ratio and the span locator
// both consume the resulting block list.

// block is a matching run: a[apos:apos+size] == b[bpos:bpos+size].
type block struct {
	apos int
	bpos int
	size int
}

// autojunkThreshold mirrors difflib: for long b sequences, runes occurring
// in more than 1% of positions are ignored as anchors and only picked up by
// the edge-extension passes.
const autojunkThreshold = 200

type sequenceMatcher struct {
	a, b    []rune
	b2j     map[rune][]int
	popular map[rune]bool
}

func newSequenceMatcher(a, b []rune) *sequenceMatcher {
	m := &sequenceMatcher{a: a, b: b}
	m.chainB()
	return m
}

// chainB indexes b: for each rune, the ascending list of positions where it
// occurs. Popular runes are purged from the index when b is long enough.
func (m *sequenceMatcher) chainB() {
	m.b2j = make(map[rune][]int, len(m.b))
	for j, r := range m.b {
		m.b2j[r] = append(m.b2j[r], j)
	}

	m.popular = map[rune]bool{}
	if n := len(m.b); n >= autojunkThreshold {
		ntest := n/100 + 1
		for r, idxs := range m.b2j {
			if len(idxs) > ntest {
				m.popular[r] = true
			}
		}
		for r := range m.popular {
			delete(m.b2j, r)
		}
	}
}

// findLongestMatch returns the longest matching block within
// a[alo:ahi] x b[blo:bhi]. Ties resolve to the earliest position in a,
// then the earliest in b.
func (m *sequenceMatcher) findLongestMatch(alo, ahi, blo, bhi int) block {
	besti, bestj, bestsize := alo, blo, 0

	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		newj2len := map[int]int{}
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

	// Widen over non-popular runes adjacent to the block.
	for besti > alo && bestj > blo && !m.popular[m.b[bestj-1]] &&
		m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi && !m.popular[m.b[bestj+bestsize]] &&
		m.a[besti+bestsize] == m.b[bestj+bestsize] {
		bestsize++
	}

	// Then over popular runes, so purged anchors still join a block edge.
	for besti > alo && bestj > blo && m.popular[m.b[bestj-1]] &&
		m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi && m.popular[m.b[bestj+bestsize]] &&
		m.a[besti+bestsize] == m.b[bestj+bestsize] {
		bestsize++
	}

	return block{besti, bestj, bestsize}
}

// matchingBlocks returns all matching blocks in ascending order, ending with
// the zero-size terminator block at (len(a), len(b)).
func (m *sequenceMatcher) matchingBlocks() []block {
	var walk func(alo, ahi, blo, bhi int, matched []block) []block
	walk = func(alo, ahi, blo, bhi int, matched []block) []block {
		bl := m.findLongestMatch(alo, ahi, blo, bhi)
		if bl.size > 0 {
			if alo < bl.apos && blo < bl.bpos {
				matched = walk(alo, bl.apos, blo, bl.bpos, matched)
			}
			matched = append(matched, bl)
			if bl.apos+bl.size < ahi && bl.bpos+bl.size < bhi {
				matched = walk(bl.apos+bl.size, ahi, bl.bpos+bl.size, bhi, matched)
			}
		}
		return matched
	}
	matched := walk(0, len(m.a), 0, len(m.b), nil)

	// Collapse adjacent blocks into one.
	var merged []block
	cur := block{}
	for _, bl := range matched {
		if cur.apos+cur.size == bl.apos && cur.bpos+cur.size == bl.bpos {
			cur.size += bl.size
		} else {
			if cur.size > 0 {
				merged = append(merged, cur)
			}
			cur = bl
		}
	}
	if cur.size > 0 {
		merged = append(merged, cur)
	}

	return append(merged, block{len(m.a), len(m.b), 0})
}

// ratio is the classic alignment ratio: twice the total matched length over
// the combined length, in [0,1]. Two empty sequences are identical (1.0).
func (m *sequenceMatcher) ratio() float64 {
	length := len(m.a) + len(m.b)
	if length == 0 {
		return 1.0
	}
	matches := 0
	for _, bl := range m.matchingBlocks() {
		matches += bl.size
	}
	return 2.0 * float64(matches) / float64(length)
}
