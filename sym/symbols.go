// Package sym defines canonical glyphs for fuzzmatch operations and system
// markers. These symbols are stable across CLI output, log lines, and
// documentation.
package sym

// Primary operation glyphs. Each corresponds to a CLI command.
const (
	Match  = "≈" // match: fuzzy query against a corpus
	Span   = "⌖" // span: locate the aligned region between two strings
	Corpus = "⊞" // corpus: inspect an indexed corpus
	Config = "≡" // config: settings and persisted defaults
	Serve  = "⟐" // mcp: stdio server
)

// System markers.
const (
	Watch = "◉" // live corpus reload on file change
	Arrow = "⟶" // derivation, input to output
)

// entry binds a glyph to its command and description.
type entry struct {
	glyph       string
	command     string
	description string
}

// registry is the canonical mapping between commands and symbol metadata.
var registry = []entry{
	{Match, "match", "Fuzzy query against a corpus"},
	{Span, "span", "Locate the aligned region between two strings"},
	{Corpus, "corpus", "Inspect an indexed corpus"},
	{Config, "config", "Settings and persisted defaults"},
	{Serve, "mcp", "MCP stdio server"},
}

// Lookup tables built from the registry at init time.
var (
	commandToGlyph map[string]string
	glyphToCommand map[string]string

	// Descriptions provides human-readable explanations keyed by command.
	Descriptions map[string]string
)

func init() {
	commandToGlyph = make(map[string]string, len(registry))
	glyphToCommand = make(map[string]string, len(registry))
	Descriptions = make(map[string]string, len(registry))
	for _, e := range registry {
		commandToGlyph[e.command] = e.glyph
		glyphToCommand[e.glyph] = e.command
		Descriptions[e.command] = e.description
	}
}

// ForCommand returns the glyph for a CLI command, or the empty string when
// the command has none.
func ForCommand(command string) string {
	return commandToGlyph[command]
}

// Command returns the CLI command a glyph belongs to, or the empty string
// for an unregistered glyph.
func Command(glyph string) string {
	return glyphToCommand[glyph]
}

// PaletteOrder defines the canonical glyph ordering for banners and help
// output.
var PaletteOrder = []string{Match, Span, Corpus, Config, Serve}
