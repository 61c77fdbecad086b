// Package config loads, validates, and persists fuzzmatch configuration.
//
// Configuration merges from three tiers (system, user, project) plus
// FUZZMATCH_* environment variables, with later tiers winning. Files are
// TOML; the user file lives at ~/.fuzzmatch/fuzzmatch.toml.
package config

import "fmt"

// Config represents the core fuzzmatch configuration
type Config struct {
	Matcher MatcherConfig `mapstructure:"matcher" toml:"matcher" yaml:"matcher"`
	Output  OutputConfig  `mapstructure:"output" toml:"output" yaml:"output"`
	MCP     MCPConfig     `mapstructure:"mcp" toml:"mcp" yaml:"mcp"`
	Log     LogConfig     `mapstructure:"log" toml:"log" yaml:"log"`
}

// MatcherConfig carries the engine defaults applied when a flag is absent
type MatcherConfig struct {
	SoftCutoff  float64 `mapstructure:"soft_cutoff" toml:"soft_cutoff" yaml:"soft_cutoff"`    // Screening threshold in [0,1] (default: 0.5)
	HardCutoff  float64 `mapstructure:"hard_cutoff" toml:"hard_cutoff" yaml:"hard_cutoff"`    // Post-rank floor in [0,1] (default: 0)
	TopK        int     `mapstructure:"topk" toml:"topk" yaml:"topk"`                         // Result cap, <= 0 keeps everything
	WindowLeft  int     `mapstructure:"window_left" toml:"window_left" yaml:"window_left"`    // Length window lower offset (default: -15)
	WindowRight int     `mapstructure:"window_right" toml:"window_right" yaml:"window_right"` // Length window upper offset (default: 15)
	TrackOrigin bool    `mapstructure:"track_origin" toml:"track_origin" yaml:"track_origin"` // Report raw corpus positions
	Normalize   string  `mapstructure:"normalize" toml:"normalize" yaml:"normalize"`          // Preset list, e.g. "lower,stem" (empty = none)
}

// OutputConfig controls how results render
type OutputConfig struct {
	JSON     bool `mapstructure:"json" toml:"json" yaml:"json"`                // Machine-readable output without --json
	MaxWidth int  `mapstructure:"max_width" toml:"max_width" yaml:"max_width"` // Table text truncation width, 0 = no truncation (default: 60)
}

// MCPConfig configures the stdio MCP server
type MCPConfig struct {
	MaxCallsPerSec float64 `mapstructure:"max_calls_per_sec" toml:"max_calls_per_sec" yaml:"max_calls_per_sec"` // Tool-call rate limit, 0 = unlimited (default: 10)
	CacheSize      int     `mapstructure:"cache_size" toml:"cache_size" yaml:"cache_size"`                      // Query LRU entries, 0 disables caching (default: 128)
}

// LogConfig configures console log rendering
type LogConfig struct {
	Theme string `mapstructure:"theme" toml:"theme" yaml:"theme"` // Color theme: gruvbox, everforest
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Matcher: {SoftCutoff: %g, HardCutoff: %g, TopK: %d, Window: [%d,%d]}, Log: {Theme: %s}}",
		c.Matcher.SoftCutoff, c.Matcher.HardCutoff, c.Matcher.TopK,
		c.Matcher.WindowLeft, c.Matcher.WindowRight, c.Log.Theme)
}
