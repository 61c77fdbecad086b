package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCorpusOrdering(t *testing.T) {
	c := buildCorpus([]string{"banana", "apple", "apple", "orange", "fig"}, nil, false)

	texts := make([]string, len(c.entries))
	for i, e := range c.entries {
		texts[i] = e.text
	}
	assert.Equal(t, []string{"fig", "apple", "banana", "orange"}, texts,
		"entries sort by rune length, then lexicographically, duplicates collapsed")
	assert.Equal(t, 5, c.rawCount)
	assert.Equal(t, 3, c.minLen)
	assert.Equal(t, 6, c.maxLen)
}

func TestBuildCorpusBuckets(t *testing.T) {
	c := buildCorpus([]string{"banana", "apple", "orange", "fig"}, nil, false)

	assert.Equal(t, map[int]int{
		0: 0,
		3: 0,
		5: 1,
		6: 2,
		7: 4,
	}, c.buckets, "each present length maps to its first entry, plus the zero seed and the max+1 sentinel")
	assert.Equal(t, 3, c.distinctLengths())
}

func TestBuildCorpusEmpty(t *testing.T) {
	c := buildCorpus(nil, nil, false)

	assert.Equal(t, 0, c.size())
	assert.Equal(t, 0, c.maxLen)
	assert.Equal(t, map[int]int{0: 0, 1: 0}, c.buckets)
	assert.NotEmpty(t, c.fingerprint, "empty corpus still has a stable fingerprint")
}

func TestBuildCorpusOrigins(t *testing.T) {
	c := buildCorpus([]string{"banana", "apple", "apple", "orange"}, nil, true)

	require.NotNil(t, c.origins)
	assert.Equal(t, []int{1, 2}, c.origins["apple"])
	assert.Equal(t, []int{0}, c.origins["banana"])
	assert.Equal(t, []int{3}, c.origins["orange"])
}

func TestBuildCorpusOriginsDisabled(t *testing.T) {
	c := buildCorpus([]string{"apple"}, nil, false)
	assert.Nil(t, c.origins)
}

func TestBuildCorpusPreprocessCollapsesVariants(t *testing.T) {
	c := buildCorpus([]string{"Apple", "APPLE", "apple"}, strings.ToLower, true)

	require.Equal(t, 1, c.size())
	assert.Equal(t, "apple", c.entries[0].text)
	assert.Equal(t, []int{0, 1, 2}, c.origins["apple"],
		"origins key on the preprocessed form, so case variants share one entry")
}

func TestBuildCorpusRuneLengths(t *testing.T) {
	// "caffè" is five runes but six bytes; it must bucket with the
	// five-rune strings.
	c := buildCorpus([]string{"caffè", "grape"}, nil, false)

	assert.Equal(t, 5, c.maxLen)
	assert.Equal(t, map[int]int{0: 0, 5: 0, 6: 2}, c.buckets)
}

func TestFingerprintInvariants(t *testing.T) {
	a := buildCorpus([]string{"apple", "banana"}, nil, false)
	b := buildCorpus([]string{"banana", "apple", "apple"}, nil, false)
	c := buildCorpus([]string{"apple", "cherry"}, nil, false)

	assert.Equal(t, a.fingerprint, b.fingerprint,
		"fingerprint ignores input order and duplication")
	assert.NotEqual(t, a.fingerprint, c.fingerprint)
}

func TestFingerprintSeparatesConcatenations(t *testing.T) {
	a := buildCorpus([]string{"ab", "c"}, nil, false)
	b := buildCorpus([]string{"a", "bc"}, nil, false)
	assert.NotEqual(t, a.fingerprint, b.fingerprint)
}
