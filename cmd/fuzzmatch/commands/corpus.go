package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/fuzzmatch/config"
	"github.com/teranos/fuzzmatch/display"
	"github.com/teranos/fuzzmatch/errors"
	"github.com/teranos/fuzzmatch/ingest"
	"github.com/teranos/fuzzmatch/logger"
	"github.com/teranos/fuzzmatch/match"
	"github.com/teranos/fuzzmatch/sym"
)

var corpusNormalize string

// CorpusCmd represents the corpus command
var CorpusCmd = &cobra.Command{
	Use:   "corpus PATH...",
	Short: sym.Corpus + " Inspect an indexed corpus",
	Long: sym.Corpus + ` corpus: load corpus files and report index statistics

Loads the given files, builds the dedup-sorted index, and prints what
the matcher would see: entry counts, the rune-length range, and the
corpus fingerprint. Useful for checking what a --corpus flag picks up
before running queries against it.

Examples:
  fuzzmatch corpus fruits.txt
  fuzzmatch corpus fruits.txt extras.json --normalize lower,collapse
  fuzzmatch corpus fruits.txt --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCorpusCommand,
}

func init() {
	CorpusCmd.Flags().StringVar(&corpusNormalize, "normalize", "", "Preprocessing presets, comma separated (lower, trim, collapse, stem, stem:LANG)")
}

func runCorpusCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	fn, err := resolveNormalize(cmd, corpusNormalize, cfg)
	if err != nil {
		return err
	}

	texts, err := ingest.LoadAll(context.Background(), args...)
	if err != nil {
		return errors.Wrap(err, "loading corpus")
	}

	opts := []match.Option{match.WithLogger(logger.AddCorpusSymbol(logger.Logger))}
	if fn != nil {
		opts = append(opts, match.WithPreprocessor(fn))
	}
	m, err := match.New(texts, opts...)
	if err != nil {
		return errors.Wrap(err, "indexing corpus")
	}
	stats := m.Stats()

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(stats)
	}

	fmt.Printf("%s Indexed %d files\n\n", sym.Corpus, len(args))
	fmt.Printf("  Entries:          %d (%d raw)\n", stats.Size, stats.RawSize)
	fmt.Printf("  Length range:     %d..%d runes\n", stats.MinLength, stats.MaxLength)
	fmt.Printf("  Length buckets:   %d\n", stats.DistinctLengths)
	fmt.Printf("  Fingerprint:      %s\n", stats.Fingerprint)
	return nil
}
