package commands

import (
	"fmt"

	"github.com/teranos/fuzzmatch/logger"
	"github.com/teranos/fuzzmatch/sym"
	"github.com/teranos/fuzzmatch/version"
)

// printStartupBanner prints the user-friendly startup message for watch mode
func printStartupBanner(verbosity int, corpusFiles int) {
	// ANSI escape codes
	cyan := "\033[36m"
	green := "\033[32m"
	yellow := "\033[33m"
	blue := "\033[34m"
	magenta := "\033[35m"
	white := "\033[37m"
	bgBlack := "\033[40m"
	bold := "\033[1m"
	reset := "\033[0m"

	versionInfo := version.Get()

	fmt.Printf("\n%s%s", cyan, bold)
	fmt.Printf("   ╔═════════════════════════════════════════════╗\n")
	fmt.Printf("   ║                                             ║\n")
	fmt.Printf("   ║         %s%s%s███████ ███    ███%s                  ║\n", white, bold, bgBlack, reset+cyan+bold)
	fmt.Printf("   ║         %s%s%s██      ████  ████%s                  ║\n", white, bold, bgBlack, reset+cyan+bold)
	fmt.Printf("   ║         %s%s%s█████   ██ ████ ██%s                  ║\n", white, bold, bgBlack, reset+cyan+bold)
	fmt.Printf("   ║         %s%s%s██      ██  ██  ██%s                  ║\n", white, bold, bgBlack, reset+cyan+bold)
	fmt.Printf("   ║         %s%s%s██      ██      ██%s                  ║\n", white, bold, bgBlack, reset+cyan+bold)
	fmt.Printf("   ║                                             ║\n")
	fmt.Printf("   ║    %s%s%s match   %s%s%s span   %s%s%s corpus   %s%s%s mcp      ║\n",
		green, sym.Match, reset+cyan+bold,
		yellow, sym.Span, reset+cyan+bold,
		blue, sym.Corpus, reset+cyan+bold,
		magenta, sym.Serve, reset+cyan+bold)
	fmt.Printf("   ║                                             ║\n")
	fmt.Printf("   ╚═════════════════════════════════════════════╝%s\n\n", reset)

	fmt.Printf("%s%s┌─ fuzzmatch ─────────────────────────────────────────┐%s\n", green, bold, reset)
	fmt.Printf("%s│%s Version:   %s (commit %s)\n", green, reset, versionInfo.Version, versionInfo.Short())
	fmt.Printf("%s│%s Built:     %s\n", green, reset, versionInfo.BuildTime)
	fmt.Printf("%s│%s Verbosity: %s\n", green, reset, logger.LevelName(verbosity))
	fmt.Printf("%s│%s Corpus:    %d file(s)\n", green, reset, corpusFiles)
	if verbosity >= logger.VerbosityDebug {
		for _, glyph := range sym.PaletteOrder {
			command := sym.Command(glyph)
			fmt.Printf("%s│%s   %s %-7s %s\n", green, reset, glyph, command, sym.Descriptions[command])
		}
	}
	fmt.Printf("%s└─────────────────────────────────────────────────────┘%s\n", green, reset)

	fmt.Printf("\n%s%s%s Corpus changes re-run your query live%s\n", yellow, bold, sym.Watch, reset)
	fmt.Printf("%s💡 Press Ctrl+C to stop%s\n\n", blue, reset)
}
