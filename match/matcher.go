// Package match resolves noisy query text against a fixed corpus of
// candidate strings. A Matcher indexes the corpus once, by length, then
// answers queries with a ranked list of candidates whose combined
// similarity clears a configurable cutoff. Scoring blends a sliding
// substring alignment with a full-sequence alignment ratio, and a span
// locator recovers where in the query a match came from.
//
// The corpus is immutable after construction, so one Matcher may serve
// concurrent queries without synchronization.
package match

import (
	"time"

	"go.uber.org/zap"

	"github.com/teranos/fuzzmatch/errors"
)

// Matcher answers fuzzy queries against an indexed corpus. Construct with
// New; the zero value is not usable.
type Matcher struct {
	cfg        Config
	preprocess func(string) string
	corpus     *corpus
	logger     *zap.SugaredLogger
}

// Stats describes an indexed corpus.
type Stats struct {
	// Size is the number of indexed entries after preprocessing and
	// deduplication.
	Size int `json:"size"`

	// RawSize is the number of strings handed to New, duplicates included.
	RawSize int `json:"raw_size"`

	MinLength       int `json:"min_length"`
	MaxLength       int `json:"max_length"`
	DistinctLengths int `json:"distinct_lengths"`

	// Fingerprint identifies the indexed content. Two matchers over the
	// same preprocessed corpus share a fingerprint regardless of input
	// order or duplication.
	Fingerprint string `json:"fingerprint"`
}

// New indexes texts and returns a Matcher. Construction succeeds on an
// empty corpus; queries against it return no results. Cutoffs outside
// [0,1] fail with a configuration error.
func New(texts []string, opts ...Option) (*Matcher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfg.SoftCutoff < 0 || o.cfg.SoftCutoff > 1 {
		return nil, errors.NewConfigurationError("soft cutoff %v outside [0,1]", o.cfg.SoftCutoff)
	}
	if o.cfg.HardCutoff < 0 || o.cfg.HardCutoff > 1 {
		return nil, errors.NewConfigurationError("hard cutoff %v outside [0,1]", o.cfg.HardCutoff)
	}
	if o.logger == nil {
		o.logger = zap.NewNop().Sugar()
	}

	start := time.Now()
	c := buildCorpus(texts, o.preprocess, o.cfg.TrackOrigin)
	m := &Matcher{
		cfg:        o.cfg,
		preprocess: o.preprocess,
		corpus:     c,
		logger:     o.logger,
	}
	m.logger.Debugw("corpus indexed",
		"size", c.size(),
		"raw_size", c.rawCount,
		"max_length", c.maxLen,
		"fingerprint", c.fingerprint,
		"duration_us", time.Since(start).Microseconds(),
	)
	return m, nil
}

// Query scores the corpus against text and returns ranked matches, best
// first. An empty text fails validation before any scoring work; an empty
// result set is a normal outcome, not an error.
func (m *Matcher) Query(text string, opts ...QueryOption) ([]Result, error) {
	if text == "" {
		return nil, errors.NewValidationError("query must not be empty")
	}

	qo := queryOptions{
		window:    m.cfg.Window,
		useWindow: true,
		topk:      m.cfg.TopK,
	}
	for _, opt := range opts {
		opt(&qo)
	}

	if m.corpus.size() == 0 {
		m.logger.Debugw("query against empty corpus", "query", text)
		return []Result{}, nil
	}

	start := time.Now()
	q := text
	if m.preprocess != nil {
		q = m.preprocess(text)
	}
	qr := []rune(q)

	wstart, wend := 0, m.corpus.size()
	if qo.useWindow {
		wstart, wend = m.corpus.selectWindow(len(qr), qo.window)
	}

	softCutoff := m.cfg.SoftCutoff * 100
	scored := make([]scoredMatch, 0, wend-wstart)
	for _, e := range m.corpus.entries[wstart:wend] {
		partial := partialSimilarity(e.runes, qr)
		if partial < softCutoff {
			continue
		}
		seq := sequenceRatio(e.runes, qr)
		scored = append(scored, scoredMatch{
			text:       e.text,
			similarity: combineScores(partial, seq),
			equality:   equalityScore(e.runes, qr),
		})
	}

	rankMatches(scored)
	var results []Result
	if m.cfg.TrackOrigin {
		results = expandOrigins(scored, m.corpus.origins)
	} else {
		results = toResults(scored)
	}
	results = truncateTopK(results, qo.topk)

	m.logger.Debugw("query matched",
		"query", text,
		"window_start", wstart,
		"window_end", wend,
		"candidates", wend-wstart,
		"matches", len(results),
		"duration_us", time.Since(start).Microseconds(),
	)
	return results, nil
}

// ApplyHardCutoff filters ranked results down to those whose similarity
// meets the configured hard cutoff. Query never applies this implicitly;
// callers decide when strict filtering is wanted. The input slice is left
// untouched.
func (m *Matcher) ApplyHardCutoff(results []Result) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Similarity >= m.cfg.HardCutoff {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Size reports the number of indexed entries.
func (m *Matcher) Size() int { return m.corpus.size() }

// MaxLength reports the rune length of the longest indexed entry.
func (m *Matcher) MaxLength() int { return m.corpus.maxLen }

// Fingerprint identifies the indexed corpus content.
func (m *Matcher) Fingerprint() string { return m.corpus.fingerprint }

// Config returns a copy of the matcher's configuration.
func (m *Matcher) Config() Config { return m.cfg }

// Stats summarizes the indexed corpus.
func (m *Matcher) Stats() Stats {
	return Stats{
		Size:            m.corpus.size(),
		RawSize:         m.corpus.rawCount,
		MinLength:       m.corpus.minLen,
		MaxLength:       m.corpus.maxLen,
		DistinctLengths: m.corpus.distinctLengths(),
		Fingerprint:     m.corpus.fingerprint,
	}
}

// SetLogger swaps the matcher's logger. A nil logger silences it.
func (m *Matcher) SetLogger(logger *zap.SugaredLogger) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	m.logger = logger
}
