package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchingBlocks(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want []block
	}{
		{
			name: "identical",
			a:    "apple",
			b:    "apple",
			want: []block{{0, 0, 5}},
		},
		{
			name: "shared middle",
			a:    "abxcd",
			b:    "abcd",
			want: []block{{0, 0, 2}, {3, 2, 2}},
		},
		{
			name: "shifted run",
			a:    "abcd",
			b:    "bcde",
			want: []block{{1, 0, 3}},
		},
		{
			name: "disjoint",
			a:    "abc",
			b:    "xyz",
			want: nil,
		},
		{
			name: "needle inside haystack",
			a:    "half an apple pie",
			b:    "apple",
			want: []block{{8, 0, 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSequenceMatcher([]rune(tt.a), []rune(tt.b))
			blocks := m.matchingBlocks()

			require.NotEmpty(t, blocks)
			term := blocks[len(blocks)-1]
			assert.Equal(t, block{len([]rune(tt.a)), len([]rune(tt.b)), 0}, term,
				"last block must be the zero-size terminator")

			body := blocks[:len(blocks)-1]
			if tt.want == nil {
				assert.Empty(t, body)
			} else {
				assert.Equal(t, tt.want, body)
			}
		})
	}
}

func TestMatchingBlocksAreOrderedAndDisjoint(t *testing.T) {
	m := newSequenceMatcher([]rune("the quick brown fox"), []rune("quick fox"))
	blocks := m.matchingBlocks()
	blocks = blocks[:len(blocks)-1]

	require.NotEmpty(t, blocks)
	for i := 1; i < len(blocks); i++ {
		prev, cur := blocks[i-1], blocks[i]
		assert.GreaterOrEqual(t, cur.apos, prev.apos+prev.size)
		assert.GreaterOrEqual(t, cur.bpos, prev.bpos+prev.size)
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "apple", "apple", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "", "apple", 0.0},
		{"prefix", "app", "apple", 0.75},
		{"near miss", "appl", "apple", 8.0 / 9.0},
		{"single shared rune", "banana", "app", 2.0 / 9.0},
		{"disjoint", "abc", "xyz", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSequenceMatcher([]rune(tt.a), []rune(tt.b))
			assert.InDelta(t, tt.want, m.ratio(), 1e-9)
		})
	}
}

func TestRatioRuneSemantics(t *testing.T) {
	// One accent difference in a five-rune word: 4 of 5 runes align.
	m := newSequenceMatcher([]rune("héllo"), []rune("hello"))
	assert.InDelta(t, 0.8, m.ratio(), 1e-9)
}

func TestPopularRunePurge(t *testing.T) {
	// Long b made of one dominant rune: the index drops it, and only the
	// edge-extension passes can line the repeats up. The resulting single
	// block still anchors at the start.
	a := strings.Repeat("a", 50)
	b := strings.Repeat("a", 200) + "b"

	m := newSequenceMatcher([]rune(a), []rune(b))
	require.True(t, m.popular['a'])

	blocks := m.matchingBlocks()
	blocks = blocks[:len(blocks)-1]
	require.Len(t, blocks, 1)
	assert.Equal(t, block{0, 0, 50}, blocks[0])
	assert.InDelta(t, 100.0/251.0, m.ratio(), 1e-9)
}

func TestShortSequencesKeepFullIndex(t *testing.T) {
	m := newSequenceMatcher([]rune("aaaa"), []rune("aaaa"))
	assert.Empty(t, m.popular)
	assert.InDelta(t, 1.0, m.ratio(), 1e-9)
}
