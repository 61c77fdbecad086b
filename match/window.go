package match

// Window bounds candidate lengths relative to the query length. A query of
// rune length q considers entries whose length falls near [q+Left, q+Right].
// Left is normally negative and Right positive; Window{-2, 2} reaches two
// runes below and above the query length.
type Window struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// selectWindow resolves a query length and window to the half-open entry
// range [start, end) to score. Both window edges clamp to [0, maxLen], then
// snap to lengths that actually occur: the low edge walks down to the
// nearest present bucket, the high edge walks up. The returned range covers
// every entry from the low bucket through the first entry of the high
// bucket. An inverted window selects nothing.
func (c *corpus) selectWindow(qlen int, w Window) (int, int) {
	if len(c.entries) == 0 {
		return 0, 0
	}

	lo := clampLength(qlen+w.Left, c.maxLen)
	hi := clampLength(qlen+w.Right, c.maxLen)

	for lo > 0 {
		if _, ok := c.buckets[lo]; ok {
			break
		}
		lo--
	}
	for hi <= c.maxLen {
		if _, ok := c.buckets[hi]; ok {
			break
		}
		hi++
	}

	start := c.buckets[lo]
	end := c.buckets[hi] + 1
	if end > len(c.entries) {
		end = len(c.entries)
	}
	if start >= end {
		return 0, 0
	}
	return start, end
}

func clampLength(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
