package sym

import (
	"testing"
	"unicode/utf8"
)

func TestForCommandAndCommandAreBidirectional(t *testing.T) {
	for _, e := range registry {
		glyph := ForCommand(e.command)
		if glyph != e.glyph {
			t.Errorf("ForCommand(%q) = %q, want %q", e.command, glyph, e.glyph)
		}
		cmd := Command(e.glyph)
		if cmd != e.command {
			t.Errorf("Command(%q) = %q, want %q", e.glyph, cmd, e.command)
		}
	}
}

func TestUnregisteredLookupsReturnEmpty(t *testing.T) {
	if got := ForCommand("bogus"); got != "" {
		t.Errorf("ForCommand(\"bogus\") = %q, want empty string", got)
	}
	if got := Command("☂"); got != "" {
		t.Errorf("Command(\"☂\") = %q, want empty string", got)
	}
}

func TestDescriptionsCoversAllCommands(t *testing.T) {
	for _, e := range registry {
		if _, ok := Descriptions[e.command]; !ok {
			t.Errorf("Descriptions missing entry for command %q", e.command)
		}
	}
	if len(Descriptions) != len(registry) {
		t.Errorf("Descriptions has %d entries, registry has %d", len(Descriptions), len(registry))
	}
}

func TestPaletteOrderContainsValidGlyphs(t *testing.T) {
	for i, glyph := range PaletteOrder {
		if Command(glyph) == "" {
			t.Errorf("PaletteOrder[%d] = %q is not a registered glyph", i, glyph)
		}
	}
}

func TestPaletteOrderCoversRegistry(t *testing.T) {
	if len(PaletteOrder) != len(registry) {
		t.Errorf("PaletteOrder has %d glyphs, registry has %d entries", len(PaletteOrder), len(registry))
	}
}

func TestPaletteOrderHasNoDuplicates(t *testing.T) {
	seen := make(map[string]int, len(PaletteOrder))
	for i, glyph := range PaletteOrder {
		if prev, ok := seen[glyph]; ok {
			t.Errorf("PaletteOrder has duplicate %q at indices %d and %d", glyph, prev, i)
		}
		seen[glyph] = i
	}
}

func TestGlyphsAreValidUnicode(t *testing.T) {
	for _, e := range registry {
		if !utf8.ValidString(e.glyph) {
			t.Errorf("glyph %q for command %q is not valid UTF-8", e.glyph, e.command)
		}
		if utf8.RuneCountInString(e.glyph) == 0 {
			t.Errorf("glyph for command %q is empty", e.command)
		}
	}
	for _, marker := range []string{Watch, Arrow} {
		if !utf8.ValidString(marker) || marker == "" {
			t.Errorf("system marker %q is not a valid non-empty glyph", marker)
		}
	}
}

func TestNoDuplicateGlyphs(t *testing.T) {
	seen := make(map[string]string, len(registry))
	for _, e := range registry {
		if prevCmd, ok := seen[e.glyph]; ok {
			t.Errorf("duplicate glyph %q: used by both %q and %q", e.glyph, prevCmd, e.command)
		}
		seen[e.glyph] = e.command
	}
}

func TestNoDuplicateCommands(t *testing.T) {
	seen := make(map[string]bool, len(registry))
	for _, e := range registry {
		if seen[e.command] {
			t.Errorf("duplicate command %q in registry", e.command)
		}
		seen[e.command] = true
	}
}
