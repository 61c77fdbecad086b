package match

// Span is the region of a haystack string that aligns against a needle,
// from the first matching block through the last. Offsets are rune indices
// into the haystack, half-open. A Span with Start -1 means the two strings
// share nothing at all.
type Span struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// NoSpan is returned when the haystack and needle have no common runes.
var NoSpan = Span{Text: "", Start: -1, End: -1}

// SpanOf locates the region of haystack covered by its alignment with
// needle. The region runs from the start of the first matching block to the
// end of the last one, so unmatched runes inside the region are included
// while unmatched prefix and suffix are not.
func SpanOf(haystack, needle string) Span {
	hr := []rune(haystack)
	nr := []rune(needle)

	blocks := newSequenceMatcher(hr, nr).matchingBlocks()
	blocks = blocks[:len(blocks)-1] // drop the terminator
	if len(blocks) == 0 {
		return NoSpan
	}

	first, last := blocks[0], blocks[len(blocks)-1]
	start := first.apos
	end := last.apos + last.size
	return Span{
		Text:  string(hr[start:end]),
		Start: start,
		End:   end,
	}
}

// SpanOfMatch locates the region of the query covered by a Result, answering
// where in the query the matched text came from. The query is the haystack.
func SpanOfMatch(r Result, query string) Span {
	return SpanOf(query, r.Text)
}
