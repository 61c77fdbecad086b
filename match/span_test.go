package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanOf(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     Span
	}{
		{
			name:     "exact substring",
			haystack: "hello world",
			needle:   "world",
			want:     Span{Text: "world", Start: 6, End: 11},
		},
		{
			name:     "gapped alignment covers the gap",
			haystack: "the quick brown fox",
			needle:   "quick fox",
			want:     Span{Text: "quick brown fox", Start: 4, End: 19},
		},
		{
			name:     "identical strings",
			haystack: "abc",
			needle:   "abc",
			want:     Span{Text: "abc", Start: 0, End: 3},
		},
		{
			name:     "no common runes",
			haystack: "abc",
			needle:   "xyz",
			want:     NoSpan,
		},
		{
			name:     "empty needle",
			haystack: "abc",
			needle:   "",
			want:     NoSpan,
		},
		{
			name:     "empty haystack",
			haystack: "",
			needle:   "abc",
			want:     NoSpan,
		},
		{
			name:     "offsets count runes not bytes",
			haystack: "caffè latte",
			needle:   "latte",
			want:     Span{Text: "latte", Start: 6, End: 11},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpanOf(tt.haystack, tt.needle))
		})
	}
}

func TestSpanOfDrawsFromFirstArgument(t *testing.T) {
	forward := SpanOf("abcd", "bcde")
	assert.Equal(t, Span{Text: "bcd", Start: 1, End: 4}, forward)

	reverse := SpanOf("bcde", "abcd")
	assert.Equal(t, Span{Text: "bcd", Start: 0, End: 3}, reverse)
}

func TestSpanOfMatchIsQueryRelative(t *testing.T) {
	r := Result{Index: UntrackedIndex, Text: "apple", Similarity: 0.9, Equality: 0.4}
	span := SpanOfMatch(r, "half an apple pie")

	assert.Equal(t, Span{Text: "apple", Start: 8, End: 13}, span)
}

func TestSpanOfMatchDisjoint(t *testing.T) {
	r := Result{Text: "zzz"}
	assert.Equal(t, NoSpan, SpanOfMatch(r, "abc"))
}
