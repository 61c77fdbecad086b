package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - User-facing output only: results, errors with hints, final status
//	1 (-v)      - + Progress, corpus summaries, watch lifecycle
//	2 (-vv)     - + Query details, timing, config values
//	3 (-vvv)    - + Per-candidate scoring, watch file events
//	4 (-vvvv)   - + Full result and data structure dumps

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults    OutputCategory = iota // Match results, command output
	OutputErrors                           // Errors with hints and resolution steps
	OutputUserStatus                       // Final success/failure status

	// Level 1 (-v) - Informational
	OutputProgress   // Progress indicators (e.g., "Loading 3 corpus files")
	OutputStartup    // Startup banners, config summary
	OutputCorpusInfo // Corpus size, fingerprint, length range

	// Level 2 (-vv) - Detailed
	OutputQueryDetail // Query preprocessing and window bounds
	OutputTiming      // Operation timing (e.g., "query took 42µs")
	OutputConfig      // Config values loaded/applied

	// Level 3 (-vvv) - Debug
	OutputScoringDetail // Per-candidate partial/sequence ratios
	OutputWatchEvents   // Individual file events in watch mode

	// Level 4 (-vvvv) - Full dump
	OutputDataDump // Full result sets and data structure contents
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	// Level 0 - Always shown
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputUserStatus: VerbosityUser,

	// Level 1 - Informational
	OutputProgress:   VerbosityInfo,
	OutputStartup:    VerbosityInfo,
	OutputCorpusInfo: VerbosityInfo,

	// Level 2 - Detailed
	OutputQueryDetail: VerbosityDebug,
	OutputTiming:      VerbosityDebug,
	OutputConfig:      VerbosityDebug,

	// Level 3 - Debug
	OutputScoringDetail: VerbosityTrace,
	OutputWatchEvents:   VerbosityTrace,

	// Level 4 - Full dump
	OutputDataDump: VerbosityAll,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}

// categoryNames provides human-readable names for output categories
var categoryNames = map[OutputCategory]string{
	OutputResults:       "results",
	OutputErrors:        "errors",
	OutputUserStatus:    "status",
	OutputProgress:      "progress",
	OutputStartup:       "startup",
	OutputCorpusInfo:    "corpus-info",
	OutputQueryDetail:   "query-detail",
	OutputTiming:        "timing",
	OutputConfig:        "config",
	OutputScoringDetail: "scoring-detail",
	OutputWatchEvents:   "watch-events",
	OutputDataDump:      "data-dump",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// EnabledCategories returns all output categories enabled at the given verbosity
func EnabledCategories(verbosity int) []OutputCategory {
	var enabled []OutputCategory
	for cat, minLevel := range categoryLevels {
		if verbosity >= minLevel {
			enabled = append(enabled, cat)
		}
	}
	return enabled
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "results and errors only"
	case VerbosityInfo:
		return "results, errors, progress, and corpus info"
	case VerbosityDebug:
		return "above + queries, timing, config details"
	case VerbosityTrace:
		return "above + scoring detail and watch events"
	case VerbosityAll:
		return "full output including result dumps"
	default:
		if verbosity > VerbosityAll {
			return "maximum verbosity"
		}
		return "unknown verbosity level"
	}
}
