package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/fuzzmatch/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the fuzzmatch configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set defaults but don't bind environment variables for this specific load
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "unmarshaling config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initDefaultsOnly returns a fresh Viper carrying only the defaults, with no
// file or environment sources.
func initDefaultsOnly() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Set up environment variable binding
	v.SetEnvPrefix("FUZZMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind short-form environment variables
	BindEnvVars(v)

	// Set defaults first
	SetDefaults(v)

	// Manually merge configs in precedence order: system -> user -> project -> env vars
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// findProjectConfig searches for fuzzmatch.toml by walking up the directory
// tree. Returns the path to the first config file found, or empty string if
// none found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, "fuzzmatch.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			break
		}
		dir = parent
	}

	return ""
}

// SourcePath describes one file in the configuration cascade.
type SourcePath struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// CascadePaths lists the configuration files considered, lowest precedence
// first. Environment variables and flags override all of them.
func CascadePaths() []SourcePath {
	sources := []SourcePath{
		{Label: "SYSTEM", Path: "/etc/fuzzmatch/config.toml"},
	}
	if userConfig := DefaultConfigPath(); userConfig != "" {
		sources = append(sources, SourcePath{Label: "USER", Path: userConfig})
	}
	if projectConfig := findProjectConfig(); projectConfig != "" {
		sources = append(sources, SourcePath{Label: "PROJECT", Path: projectConfig})
	}
	for i := range sources {
		if _, err := os.Stat(sources[i].Path); err == nil {
			sources[i].Exists = true
		}
	}
	return sources
}

// mergeConfigFiles manually merges configuration files in the correct
// precedence order. Precedence (lowest to highest): system < user < project
// < env vars.
func mergeConfigFiles(v *viper.Viper) {
	for _, source := range CascadePaths() {
		if !source.Exists {
			continue
		}
		tempViper := viper.New()
		tempViper.SetConfigFile(source.Path)
		tempViper.SetConfigType("toml")

		if err := tempViper.ReadInConfig(); err != nil {
			continue
		}
		// Merge at config level so env vars still take precedence
		v.MergeConfigMap(tempViper.AllSettings())
	}
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	v := initViper()
	return v.Get(key)
}

// GetString returns a configuration value as string using dot notation
func GetString(key string) string {
	v := initViper()
	return v.GetString(key)
}

// GetBool returns a configuration value as bool using dot notation
func GetBool(key string) bool {
	v := initViper()
	return v.GetBool(key)
}

// GetInt returns a configuration value as int using dot notation
func GetInt(key string) int {
	v := initViper()
	return v.GetInt(key)
}

// GetFloat64 returns a configuration value as float64 using dot notation
func GetFloat64(key string) float64 {
	v := initViper()
	return v.GetFloat64(key)
}
