package config

import (
	"github.com/spf13/viper"

	"github.com/teranos/fuzzmatch/match"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Matcher defaults mirror the engine's construction defaults
	v.SetDefault("matcher.soft_cutoff", match.DefaultSoftCutoff)
	v.SetDefault("matcher.hard_cutoff", match.DefaultHardCutoff)
	v.SetDefault("matcher.topk", 0)
	v.SetDefault("matcher.window_left", match.DefaultWindow.Left)
	v.SetDefault("matcher.window_right", match.DefaultWindow.Right)
	v.SetDefault("matcher.track_origin", false)
	v.SetDefault("matcher.normalize", "")

	// Output defaults
	v.SetDefault("output.json", false)
	v.SetDefault("output.max_width", 60)

	// MCP server defaults
	v.SetDefault("mcp.max_calls_per_sec", 10.0)
	v.SetDefault("mcp.cache_size", 128)

	// Log defaults
	v.SetDefault("log.theme", "everforest")
}

// BindEnvVars explicitly binds commonly overridden configuration to short
// environment variable names. Every key is also reachable through the
// automatic FUZZMATCH_ prefix mapping (e.g. FUZZMATCH_MATCHER_SOFT_CUTOFF).
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("matcher.normalize", "FUZZMATCH_NORMALIZE")
	v.BindEnv("log.theme", "FUZZMATCH_LOG_THEME")
}

// GetLogTheme returns the log theme (default: everforest)
func (c *Config) GetLogTheme() string {
	if c.Log.Theme == "" {
		return "everforest"
	}
	return c.Log.Theme
}

// Window returns the configured length window in engine form.
func (c *Config) Window() match.Window {
	return match.Window{Left: c.Matcher.WindowLeft, Right: c.Matcher.WindowRight}
}
