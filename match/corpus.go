package match

import (
	"crypto/sha256"
	"sort"
	"unicode/utf8"

	"github.com/mr-tron/base58"
)

// fingerprintBytes of the sha256 digest go into the corpus fingerprint.
// 12 bytes keeps the base58 form short enough for log lines while still
// distinguishing any two corpora that could realistically coexist.
const fingerprintBytes = 12

// entry is one indexed corpus string with its rune decoding cached, so the
// scoring loop never re-decodes UTF-8.
type entry struct {
	text  string
	runes []rune
}

// corpus is the immutable index a Matcher queries against: preprocessed,
// deduplicated strings in (length, lexicographic) order, plus a bucket map
// from rune length to the first entry of that length.
type corpus struct {
	entries []entry

	// buckets maps each present rune length to the index of its first
	// entry. Length 0 always maps to 0, and maxLen+1 maps to len(entries)
	// so a window can step past the longest bucket.
	buckets map[int]int
	maxLen  int
	minLen  int

	// origins maps a preprocessed string back to every position in the raw
	// input that produced it. Nil unless origin tracking is on.
	origins map[string][]int

	rawCount    int
	fingerprint string
}

// buildCorpus indexes the raw texts. The preprocess hook is applied to every
// string before deduplication, so two raw strings that normalize identically
// collapse into a single entry.
func buildCorpus(texts []string, preprocess func(string) string, trackOrigin bool) *corpus {
	if preprocess == nil {
		preprocess = func(s string) string { return s }
	}

	seen := make(map[string]struct{}, len(texts))
	unique := make([]string, 0, len(texts))
	for _, raw := range texts {
		p := preprocess(raw)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}

	sort.Slice(unique, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(unique[i]), utf8.RuneCountInString(unique[j])
		if li != lj {
			return li < lj
		}
		return unique[i] < unique[j]
	})

	c := &corpus{
		entries:  make([]entry, len(unique)),
		buckets:  map[int]int{0: 0},
		rawCount: len(texts),
	}
	for i, text := range unique {
		c.entries[i] = entry{text: text, runes: []rune(text)}
	}

	prev := 0
	for i := range c.entries {
		if n := len(c.entries[i].runes); n != prev {
			c.buckets[n] = i
			prev = n
		}
	}
	if len(c.entries) > 0 {
		c.minLen = len(c.entries[0].runes)
		c.maxLen = len(c.entries[len(c.entries)-1].runes)
	}
	c.buckets[c.maxLen+1] = len(c.entries)

	if trackOrigin {
		c.origins = make(map[string][]int, len(unique))
		for i, raw := range texts {
			p := preprocess(raw)
			c.origins[p] = append(c.origins[p], i)
		}
	}

	c.fingerprint = fingerprintOf(unique)
	return c
}

// fingerprintOf hashes the sorted entry list into a short base58 token.
// Separator bytes keep ["ab","c"] and ["a","bc"] distinct.
func fingerprintOf(sorted []string) string {
	h := sha256.New()
	for _, s := range sorted {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	return base58.Encode(h.Sum(nil)[:fingerprintBytes])
}

func (c *corpus) size() int { return len(c.entries) }

// distinctLengths counts the rune lengths actually present among entries.
func (c *corpus) distinctLengths() int {
	n := 0
	prev := -1
	for i := range c.entries {
		if l := len(c.entries[i].runes); l != prev {
			n++
			prev = l
		}
	}
	return n
}
