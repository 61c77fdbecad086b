package config

import (
	"github.com/teranos/fuzzmatch/errors"
	"github.com/teranos/fuzzmatch/normalize"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Cutoffs share the engine's [0,1] domain
	if c.Matcher.SoftCutoff < 0 || c.Matcher.SoftCutoff > 1 {
		return errors.NewConfigurationError("matcher.soft_cutoff must be within [0,1], got %g", c.Matcher.SoftCutoff)
	}
	if c.Matcher.HardCutoff < 0 || c.Matcher.HardCutoff > 1 {
		return errors.NewConfigurationError("matcher.hard_cutoff must be within [0,1], got %g", c.Matcher.HardCutoff)
	}

	// TopK: <= 0 keeps everything, so any value is acceptable.
	// Window offsets: an inverted window is legal and yields no candidates.

	// Normalize spec must resolve to known presets
	if c.Matcher.Normalize != "" {
		if _, err := normalize.Named(c.Matcher.Normalize); err != nil {
			return errors.WrapConfiguration(err, "matcher.normalize")
		}
	}

	// Output width: 0 = no truncation, negative = invalid
	if c.Output.MaxWidth < 0 {
		return errors.NewConfigurationError("output.max_width must be >= 0, got %d", c.Output.MaxWidth)
	}

	// MCP rate limit: 0 = unlimited, negative = invalid
	if c.MCP.MaxCallsPerSec < 0 {
		return errors.NewConfigurationError("mcp.max_calls_per_sec must be >= 0, got %g", c.MCP.MaxCallsPerSec)
	}

	// MCP cache: 0 disables caching, negative = invalid
	if c.MCP.CacheSize < 0 {
		return errors.NewConfigurationError("mcp.cache_size must be >= 0, got %d", c.MCP.CacheSize)
	}

	// Log theme must be a known palette; empty falls back to the default
	switch c.Log.Theme {
	case "", "gruvbox", "everforest":
	default:
		return errors.NewConfigurationError("log.theme must be gruvbox or everforest, got %q", c.Log.Theme)
	}

	return nil
}
