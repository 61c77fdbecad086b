package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/fuzzmatch/config"
	"github.com/teranos/fuzzmatch/display"
	"github.com/teranos/fuzzmatch/errors"
	"github.com/teranos/fuzzmatch/ingest"
	"github.com/teranos/fuzzmatch/internal/util"
	"github.com/teranos/fuzzmatch/logger"
	"github.com/teranos/fuzzmatch/match"
	"github.com/teranos/fuzzmatch/sym"
)

var (
	matchCorpusPaths []string
	matchCutoff      float64
	matchHard        float64
	matchTopK        int
	matchWindowSpec  string
	matchNoWindow    bool
	matchOrigins     bool
	matchNormalize   string
	matchWatch       bool
)

// MatchCmd represents the match command
var MatchCmd = &cobra.Command{
	Use:   "match QUERY",
	Short: sym.Match + " Match a query against a corpus",
	Long: sym.Match + ` match: fuzzy-match a query against corpus files

Scores every corpus entry within a length window around the query and
prints ranked matches. Scores live in [0,1]; 1.0 is a perfect match.

Examples:
  fuzzmatch match aple -c fruits.txt                   # Ranked matches
  fuzzmatch match aple -c fruits.txt -c extras.json    # Several files
  cat fruits.txt | fuzzmatch match aple -c -           # Corpus on stdin
  fuzzmatch match runing -c docs.txt --normalize lower,stem
  fuzzmatch match aple -c fruits.txt --watch           # Re-run on change
  fuzzmatch match aple -c fruits.txt --json            # Machine output`,
	Args: cobra.ExactArgs(1),
	RunE: runMatchCommand,
}

func init() {
	MatchCmd.Flags().StringSliceVarP(&matchCorpusPaths, "corpus", "c", nil, "Corpus file (repeatable; .txt/.json/.yaml/.toml, or - for stdin)")
	MatchCmd.Flags().Float64Var(&matchCutoff, "cutoff", match.DefaultSoftCutoff, "Soft cutoff screening candidates during scoring [0,1]")
	MatchCmd.Flags().Float64Var(&matchHard, "hard", match.DefaultHardCutoff, "Hard cutoff applied to ranked results [0,1] (0 = off)")
	MatchCmd.Flags().IntVarP(&matchTopK, "topk", "k", 0, "Keep only the best K results (0 = unlimited)")
	MatchCmd.Flags().StringVar(&matchWindowSpec, "window", "", "Length window as \"left,right\" offsets from query length (default -15,15)")
	MatchCmd.Flags().BoolVar(&matchNoWindow, "no-window", false, "Score the whole corpus, ignoring the length window")
	MatchCmd.Flags().BoolVar(&matchOrigins, "origins", false, "Track raw input positions and expand duplicates")
	MatchCmd.Flags().StringVar(&matchNormalize, "normalize", "", "Preprocessing presets, comma separated (lower, trim, collapse, stem, stem:LANG)")
	MatchCmd.Flags().BoolVar(&matchWatch, "watch", false, "Watch corpus files and re-run the query on change")
}

// matchReport is the machine-readable match output.
type matchReport struct {
	Query       string         `json:"query"`
	Fingerprint string         `json:"fingerprint"`
	Count       int            `json:"count"`
	Results     []match.Result `json:"results"`
}

func runMatchCommand(cmd *cobra.Command, args []string) error {
	query := args[0]
	verbosity, _ := cmd.Flags().GetCount("verbose")

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	if len(matchCorpusPaths) == 0 {
		return errors.NewValidationError("no corpus files; pass at least one --corpus")
	}

	settings, err := resolveMatchSettings(cmd, cfg)
	if err != nil {
		return err
	}

	if logger.ShouldOutput(verbosity, logger.OutputProgress) && len(matchCorpusPaths) > 1 {
		pterm.Info.Printf("Loading %d corpus files\n", len(matchCorpusPaths))
	}
	texts, err := ingest.LoadAll(context.Background(), matchCorpusPaths...)
	if err != nil {
		return errors.Wrap(err, "loading corpus")
	}

	m, err := buildMatcher(texts, settings)
	if err != nil {
		return err
	}

	if logger.ShouldOutput(verbosity, logger.OutputCorpusInfo) {
		stats := m.Stats()
		pterm.Info.Printf("Corpus: %d entries (%d raw), lengths %d..%d, fingerprint %s\n",
			stats.Size, stats.RawSize, stats.MinLength, stats.MaxLength, stats.Fingerprint)
	}

	maxWidth := cfg.Output.MaxWidth
	if err := runQueryOnce(cmd, m, query, settings, maxWidth, verbosity); err != nil {
		return err
	}

	if !matchWatch {
		return nil
	}
	return watchAndRematch(cmd, query, settings, maxWidth, verbosity)
}

// resolveMatchSettings starts from configuration and lets explicit flags win.
func resolveMatchSettings(cmd *cobra.Command, cfg *config.Config) (matcherSettings, error) {
	fn, err := resolveNormalize(cmd, matchNormalize, cfg)
	if err != nil {
		return matcherSettings{}, err
	}
	s := settingsFromConfig(cfg, fn, logger.AddMatchSymbol(logger.Logger))

	if cmd.Flags().Changed("cutoff") {
		s.soft = matchCutoff
	}
	if cmd.Flags().Changed("hard") {
		s.hard = matchHard
	}
	if cmd.Flags().Changed("topk") {
		s.topk = matchTopK
	}
	if cmd.Flags().Changed("origins") {
		s.origins = matchOrigins
	}
	if matchWindowSpec != "" {
		w, err := parseWindow(matchWindowSpec)
		if err != nil {
			return matcherSettings{}, err
		}
		s.window = util.Ptr(w)
	}
	return s, nil
}

// parseWindow parses a "left,right" window spec.
func parseWindow(spec string) (match.Window, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return match.Window{}, errors.NewValidationError("window must be \"left,right\", got %q", spec)
	}
	left, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return match.Window{}, errors.NewValidationError("window left edge %q is not an integer", parts[0])
	}
	right, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return match.Window{}, errors.NewValidationError("window right edge %q is not an integer", parts[1])
	}
	return match.Window{Left: left, Right: right}, nil
}

func runQueryOnce(cmd *cobra.Command, m *match.Matcher, query string, s matcherSettings, maxWidth, verbosity int) error {
	var qopts []match.QueryOption
	if matchNoWindow {
		qopts = append(qopts, match.WithoutWindow())
	}

	start := time.Now()
	results, err := m.Query(query, qopts...)
	if err != nil {
		return errors.Wrap(err, "running query")
	}
	if s.hard > 0 {
		results = m.ApplyHardCutoff(results)
	}
	elapsed := time.Since(start)

	if logger.ShouldOutput(verbosity, logger.OutputTiming) {
		pterm.Info.Printf("Query took %s\n", elapsed.Round(time.Microsecond))
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(matchReport{
			Query:       query,
			Fingerprint: m.Fingerprint(),
			Count:       len(results),
			Results:     results,
		})
	}
	return renderMatchTable(query, results, s.origins, maxWidth)
}

func renderMatchTable(query string, results []match.Result, origins bool, maxWidth int) error {
	fmt.Printf("%s %d matches for %q\n", sym.Match, len(results), query)
	if len(results) == 0 {
		pterm.Info.Println("Nothing above the cutoff; try --cutoff 0 or --no-window")
		return nil
	}
	fmt.Println()

	rows := pterm.TableData{}
	if origins {
		rows = append(rows, []string{"RANK", "INDEX", "TEXT", "SIMILARITY", "EQUALITY"})
	} else {
		rows = append(rows, []string{"RANK", "TEXT", "SIMILARITY", "EQUALITY"})
	}
	for i, r := range results {
		text := util.Truncate(r.Text, maxWidth)
		sim := strconv.FormatFloat(r.Similarity, 'f', 3, 64)
		eq := strconv.FormatFloat(r.Equality, 'f', 3, 64)
		if origins {
			rows = append(rows, []string{strconv.Itoa(i + 1), strconv.Itoa(r.Index), text, sim, eq})
		} else {
			rows = append(rows, []string{strconv.Itoa(i + 1), text, sim, eq})
		}
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// watchAndRematch blocks, rebuilding the matcher and re-running the query
// whenever a corpus file changes. Ctrl+C stops it.
func watchAndRematch(cmd *cobra.Command, query string, s matcherSettings, maxWidth, verbosity int) error {
	showedBanner := logger.ShouldOutput(verbosity, logger.OutputStartup)
	if showedBanner {
		printStartupBanner(verbosity, len(matchCorpusPaths))
	}

	watcher, err := ingest.NewWatcher(matchCorpusPaths)
	if err != nil {
		return errors.Wrap(err, "starting corpus watcher")
	}
	watcher.OnChange(func(texts []string) error {
		m, err := buildMatcher(texts, s)
		if err != nil {
			return err
		}
		if logger.ShouldOutput(verbosity, logger.OutputProgress) {
			pterm.Info.Println("Corpus changed, re-running query")
		}
		return runQueryOnce(cmd, m, query, s, maxWidth, verbosity)
	})
	watcher.Start()
	defer watcher.Stop()

	if !showedBanner {
		pterm.Info.Printf("Watching %d corpus file(s); press Ctrl+C to stop\n", len(matchCorpusPaths))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	pterm.Info.Println("\nStopped watching")
	return nil
}
