package util

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than limit", "apple", 10, "apple"},
		{"exactly at limit", "apple", 5, "apple"},
		{"cut with ellipsis", "apple pie with cream", 9, "apple pi…"},
		{"multibyte runes", "caffè macchiato", 6, "caffè…"},
		{"limit one", "apple", 1, "…"},
		{"zero disables", "apple pie", 0, "apple pie"},
		{"negative disables", "apple pie", -3, "apple pie"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
