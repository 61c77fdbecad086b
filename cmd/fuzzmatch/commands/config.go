package commands

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/fuzzmatch/config"
	"github.com/teranos/fuzzmatch/display"
	"github.com/teranos/fuzzmatch/errors"
	"github.com/teranos/fuzzmatch/sym"
)

var (
	configShowFormat string
	configInitPath   string
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: sym.Config + " Manage fuzzmatch configuration",
	Long: sym.Config + ` config: inspect and manage fuzzmatch configuration

Configuration sources, highest precedence first:
  1. Command line flags
  2. FUZZMATCH_* environment variables
  3. Project config (./fuzzmatch.toml, searched upward)
  4. User config (~/.fuzzmatch/fuzzmatch.toml)
  5. System config (/etc/fuzzmatch/config.toml)
  6. Built-in defaults

Examples:
  fuzzmatch config show                    # Effective configuration
  fuzzmatch config show --format yaml
  fuzzmatch config get matcher.soft_cutoff
  fuzzmatch config init                    # Write the default user config
  fuzzmatch config path                    # Where configuration comes from`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Get a configuration value by key",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the effective configuration",
	RunE:  runConfigValidate,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration source cascade",
	RunE:  runConfigPath,
}

func init() {
	configShowCmd.Flags().StringVar(&configShowFormat, "format", "toml", "Output format (toml, json, yaml)")
	configInitCmd.Flags().StringVar(&configInitPath, "path", "", "Where to write the config (default: user config path)")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}

	switch configShowFormat {
	case "json":
		data, err := display.MarshalJSON(cfg)
		if err != nil {
			return errors.Wrap(err, "marshaling configuration")
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "marshaling configuration")
		}
		fmt.Printf("# fuzzmatch configuration\n%s", data)
	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "marshaling configuration")
		}
		fmt.Printf("# fuzzmatch configuration\n%s", data)
	default:
		return errors.NewValidationError("unsupported format %q (supported: toml, json, yaml)", configShowFormat)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if _, err := config.Load(); err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	if !config.GetViper().IsSet(key) {
		return errors.NewNotFoundError("configuration key %q not found", key)
	}
	fmt.Println(config.Get(key))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	fmt.Println("✓ Configuration is valid")
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configInitPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if path == "" {
		return errors.NewConfigurationError("cannot resolve user config path; pass --path")
	}
	if err := config.WriteDefault(path); err != nil {
		return errors.Wrap(err, "writing default configuration")
	}
	pterm.Success.Printf("Wrote default configuration to %s\n", path)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	sources := config.CascadePaths()

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(sources)
	}

	fmt.Println("Configuration sources, lowest precedence first:")
	for _, src := range sources {
		state := "missing"
		if src.Exists {
			state = "found"
		}
		fmt.Printf("  [%s] %s (%s)\n", src.Label, src.Path, state)
	}
	fmt.Println("  [ENV]     FUZZMATCH_* environment variables")
	fmt.Println("  [FLAG]    command line flags")
	return nil
}
