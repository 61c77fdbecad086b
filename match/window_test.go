package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// lengthCorpus builds a corpus with one string per requested rune length.
func lengthCorpus(t *testing.T, lengths ...int) *corpus {
	t.Helper()
	texts := make([]string, len(lengths))
	for i, n := range lengths {
		texts[i] = strings.Repeat("x", n)
	}
	return buildCorpus(texts, nil, false)
}

func TestSelectWindow(t *testing.T) {
	// Entries in length order: x(1), xxx(3), xxxxx(5), xxxxxxxxx(9) at
	// indices 0..3.
	c := lengthCorpus(t, 1, 3, 5, 9)

	tests := []struct {
		name      string
		qlen      int
		window    Window
		wantStart int
		wantEnd   int
	}{
		{
			name:      "both edges on present lengths",
			qlen:      3,
			window:    Window{-2, 2},
			wantStart: 0,
			wantEnd:   3,
		},
		{
			name: "edges snap outward to present lengths",
			// lo 4 walks down to 3, hi 4 walks up to 5.
			qlen:      4,
			window:    Window{0, 0},
			wantStart: 1,
			wantEnd:   3,
		},
		{
			name: "high edge includes only the first entry of its bucket",
			// Both edges clamp to max length 9; the range is that
			// bucket's first entry plus one.
			qlen:      100,
			window:    Window{-15, 15},
			wantStart: 3,
			wantEnd:   4,
		},
		{
			name:      "low edge floors at zero",
			qlen:      1,
			window:    Window{-15, 15},
			wantStart: 0,
			wantEnd:   4,
		},
		{
			name: "inverted window selects nothing",
			// lo 8 snaps down to 5, hi 2 snaps up to 3: crossed.
			qlen:      5,
			window:    Window{3, -3},
			wantStart: 0,
			wantEnd:   0,
		},
		{
			name:      "zero window on a present length",
			qlen:      5,
			window:    Window{0, 0},
			wantStart: 2,
			wantEnd:   3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := c.selectWindow(tt.qlen, tt.window)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestSelectWindowEmptyCorpus(t *testing.T) {
	c := buildCorpus(nil, nil, false)
	start, end := c.selectWindow(5, DefaultWindow)
	assert.Zero(t, start)
	assert.Zero(t, end)
}

func TestSelectWindowOverIncludesUpperBucket(t *testing.T) {
	// Lengths 5, 6, 6: querying at length 3 with the default window caps
	// hi at 6 and the +1 upper bound admits only the first length-6 entry.
	c := buildCorpus([]string{"apple", "banana", "orange"}, nil, false)

	start, end := c.selectWindow(3, DefaultWindow)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
	assert.Equal(t, "banana", c.entries[1].text)
	assert.Equal(t, "orange", c.entries[2].text, "second length-6 entry stays outside the window")
}

func TestSelectWindowEndNeverExceedsSize(t *testing.T) {
	c := lengthCorpus(t, 2, 4)
	for qlen := 0; qlen <= 10; qlen++ {
		_, end := c.selectWindow(qlen, Window{-1, 1})
		assert.LessOrEqual(t, end, c.size(), "qlen %d", qlen)
	}
}
