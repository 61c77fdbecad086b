package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/fuzzmatch/cmd/fuzzmatch/commands"
	"github.com/teranos/fuzzmatch/config"
	"github.com/teranos/fuzzmatch/errors"
	"github.com/teranos/fuzzmatch/logger"
)

var rootCmd = &cobra.Command{
	Use:   "fuzzmatch",
	Short: "fuzzmatch - Fuzzy text matching for the command line and MCP",
	Long: `fuzzmatch - Fuzzy text matching for the command line and MCP.

fuzzmatch indexes a corpus of text lines, then scores queries against it
with a blend of sliding overlap and longest-block similarity. Scores live
in [0,1]; 1.0 is a perfect match.

Available commands:
  match   - Fuzzy query against a corpus
  span    - Locate the aligned region between two strings
  corpus  - Inspect an indexed corpus
  config  - Manage fuzzmatch configuration
  mcp     - Serve the matcher over Model Context Protocol
  version - Show version information

Examples:
  fuzzmatch match aple -c fruits.txt        # Ranked fuzzy matches
  fuzzmatch span "half an apple pie" apple  # Where the match sits
  fuzzmatch corpus fruits.txt               # Index statistics
  fuzzmatch mcp -c fruits.txt --watch       # MCP server with live reload
  fuzzmatch config show                     # Effective configuration`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The mcp command owns stdout for the protocol, so its logs go to
		// stderr as JSON. Everything else gets the console encoder.
		if cmd.Name() == "mcp" {
			if err := logger.InitializeForMCP(); err != nil {
				return errors.Wrap(err, "initializing MCP logger")
			}
		} else {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			if err := logger.InitializeWithLevel(false, logger.VerbosityToLevel(verbosity)); err != nil {
				return errors.Wrap(err, "initializing logger")
			}
		}

		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "loading configuration")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger.SetTheme(cfg.GetLogTheme())

		// output.json in the config file behaves like a default --json flag.
		if cfg.Output.JSON && !cmd.Root().PersistentFlags().Changed("json") {
			if err := cmd.Root().PersistentFlags().Set("json", "true"); err != nil {
				return errors.Wrap(err, "applying output.json configuration")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")

	rootCmd.AddCommand(commands.MatchCmd)
	rootCmd.AddCommand(commands.SpanCmd)
	rootCmd.AddCommand(commands.CorpusCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.MCPCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	// os.Exit skips deferred calls, so flush the logger before deciding
	// the exit code.
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
