package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/fuzzmatch/config"
	"github.com/teranos/fuzzmatch/errors"
	"github.com/teranos/fuzzmatch/ingest"
	"github.com/teranos/fuzzmatch/logger"
	"github.com/teranos/fuzzmatch/mcpserver"
	"github.com/teranos/fuzzmatch/sym"
)

var (
	mcpCorpusPaths []string
	mcpNormalize   string
	mcpWatch       bool
)

// MCPCmd represents the mcp command
var MCPCmd = &cobra.Command{
	Use:   "mcp",
	Short: sym.Serve + " Serve the matcher over Model Context Protocol",
	Long: sym.Serve + ` mcp: serve match_query, match_span and corpus_info over MCP stdio

Stdout carries the protocol, so all logging goes to stderr as JSON.
The default level is warn; set FUZZMATCH_DEBUG=1 for debug output.

Examples:
  fuzzmatch mcp -c fruits.txt
  fuzzmatch mcp -c fruits.txt -c extras.json --watch
  FUZZMATCH_DEBUG=1 fuzzmatch mcp -c fruits.txt`,
	RunE: runMCPCommand,
}

func init() {
	MCPCmd.Flags().StringSliceVarP(&mcpCorpusPaths, "corpus", "c", nil, "Corpus file (repeatable; .txt/.json/.yaml/.toml)")
	MCPCmd.Flags().StringVar(&mcpNormalize, "normalize", "", "Preprocessing presets, comma separated (lower, trim, collapse, stem, stem:LANG)")
	MCPCmd.Flags().BoolVar(&mcpWatch, "watch", false, "Watch corpus files and swap in a reindexed matcher on change")
}

func runMCPCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	if len(mcpCorpusPaths) == 0 {
		return errors.NewValidationError("no corpus files; pass at least one --corpus")
	}

	fn, err := resolveNormalize(cmd, mcpNormalize, cfg)
	if err != nil {
		return err
	}
	settings := settingsFromConfig(cfg, fn, logger.AddServeSymbol(logger.Logger))

	texts, err := ingest.LoadAll(context.Background(), mcpCorpusPaths...)
	if err != nil {
		return errors.Wrap(err, "loading corpus")
	}
	m, err := buildMatcher(texts, settings)
	if err != nil {
		return err
	}

	engine := mcpserver.NewReloadable(m)
	srv, err := mcpserver.New(engine, cfg.MCP)
	if err != nil {
		return errors.Wrap(err, "creating MCP server")
	}

	if mcpWatch {
		watcher, err := ingest.NewWatcher(mcpCorpusPaths)
		if err != nil {
			return errors.Wrap(err, "starting corpus watcher")
		}
		watcher.OnChange(func(texts []string) error {
			rebuilt, err := buildMatcher(texts, settings)
			if err != nil {
				return err
			}
			engine.Swap(rebuilt)
			logger.WatchInfow("Matcher reindexed",
				logger.FieldCorpusSize, rebuilt.Size(),
				logger.FieldFingerprint, rebuilt.Fingerprint())
			return nil
		})
		watcher.Start()
		defer watcher.Stop()
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Serve()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			return errors.Wrap(err, "mcp server stopped")
		}
		return nil
	case <-sigChan:
		logger.ServeInfow("MCP server shutting down")
		return nil
	}
}
