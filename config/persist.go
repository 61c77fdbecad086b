package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/fuzzmatch/errors"
	"github.com/teranos/fuzzmatch/logger"
)

// DefaultConfigPath returns the user config file path
// (~/.fuzzmatch/fuzzmatch.toml), or empty string when the home directory is
// unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fuzzmatch", "fuzzmatch.toml")
}

// createBackup creates rotating backups (.back1, .back2, .back3) before
// modifying a config file
func createBackup(configPath string) error {
	// Check if file exists before backing up
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No file to backup
	}

	// Rotate backups: .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	// Delete oldest backup if exists
	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		// Log deletion failures (but don't fail config save)
		logger.Warnw("Failed to delete old config backup",
			"path", back3,
			"error", err)
	}

	// Rotate .back2 to .back3
	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "rotating .back2 to .back3")
		}
	}

	// Rotate .back1 to .back2
	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "rotating .back1 to .back2")
		}
	}

	// Copy current to .back1
	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "reading config for backup")
	}

	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "creating .back1")
	}

	return nil
}

// Save writes the config to path as TOML, backing up any existing file
// first and creating the parent directory as needed.
func Save(cfg *Config, path string) error {
	if path == "" {
		return errors.NewConfigurationError("config path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := createBackup(path); err != nil {
		return errors.Wrap(err, "backing up config")
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "writing config")
	}

	logger.Infow("Config saved",
		"path", path)
	return nil
}

// WriteDefault materializes the default configuration at path. Used by
// `fuzzmatch config init`.
func WriteDefault(path string) error {
	v := initDefaultsOnly()
	cfg, err := LoadWithViper(v)
	if err != nil {
		return err
	}
	return Save(cfg, path)
}
