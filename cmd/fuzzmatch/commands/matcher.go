package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/teranos/fuzzmatch/config"
	"github.com/teranos/fuzzmatch/errors"
	"github.com/teranos/fuzzmatch/internal/util"
	"github.com/teranos/fuzzmatch/match"
	"github.com/teranos/fuzzmatch/normalize"
)

// matcherSettings collects everything needed to index a corpus, resolved
// from configuration and command flags.
type matcherSettings struct {
	soft       float64
	hard       float64
	topk       int
	window     *match.Window
	origins    bool
	preprocess normalize.Func
	log        *zap.SugaredLogger
}

// settingsFromConfig resolves matcher settings purely from configuration.
// Commands layer flag overrides on top.
func settingsFromConfig(cfg *config.Config, preprocess normalize.Func, log *zap.SugaredLogger) matcherSettings {
	s := matcherSettings{
		soft:       cfg.Matcher.SoftCutoff,
		hard:       cfg.Matcher.HardCutoff,
		topk:       cfg.Matcher.TopK,
		origins:    cfg.Matcher.TrackOrigin,
		preprocess: preprocess,
		log:        log,
	}
	if w := cfg.Window(); w != match.DefaultWindow {
		s.window = util.Ptr(w)
	}
	return s
}

// buildMatcher indexes texts with the resolved settings.
func buildMatcher(texts []string, s matcherSettings) (*match.Matcher, error) {
	opts := []match.Option{
		match.WithSoftCutoff(s.soft),
		match.WithHardCutoff(s.hard),
		match.WithTopK(s.topk),
	}
	if s.window != nil {
		opts = append(opts, match.WithWindow(s.window.Left, s.window.Right))
	}
	if s.origins {
		opts = append(opts, match.WithOriginTracking())
	}
	if s.preprocess != nil {
		opts = append(opts, match.WithPreprocessor(s.preprocess))
	}
	if s.log != nil {
		opts = append(opts, match.WithLogger(s.log))
	}

	m, err := match.New(texts, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "indexing corpus")
	}
	return m, nil
}

// resolveNormalize picks the preprocessing spec: an explicit flag wins,
// otherwise the configured default applies.
func resolveNormalize(cmd *cobra.Command, flagValue string, cfg *config.Config) (normalize.Func, error) {
	spec := flagValue
	if !cmd.Flags().Changed("normalize") {
		spec = cfg.Matcher.Normalize
	}
	return normalize.Named(spec)
}
