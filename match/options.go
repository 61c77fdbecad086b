package match

import "go.uber.org/zap"

// Defaults for a Matcher built with no options.
const (
	DefaultSoftCutoff = 0.5
	DefaultHardCutoff = 0.0
)

// DefaultWindow reaches fifteen runes below and above the query length,
// wide enough that ordinary typos and truncations stay in range.
var DefaultWindow = Window{Left: -15, Right: 15}

// Config carries the tunable behavior of a Matcher. Zero value is not
// useful; construction starts from the defaults above.
type Config struct {
	// SoftCutoff screens candidates during scoring: a candidate whose
	// sliding-alignment ratio falls below SoftCutoff (scaled to 0..100)
	// is discarded before the full sequence alignment runs. In [0,1].
	SoftCutoff float64 `json:"soft_cutoff"`

	// HardCutoff is a post-filter threshold on combined similarity. The
	// engine stores and validates it but only applies it when the caller
	// invokes ApplyHardCutoff on a ranked result set. In [0,1].
	HardCutoff float64 `json:"hard_cutoff"`

	// TrackOrigin records, per corpus string, every position it occupied
	// in the raw input, and expands each match into one Result per
	// occurrence. Off by default.
	TrackOrigin bool `json:"track_origin"`

	// Window is the default length window for queries that do not set
	// their own.
	Window Window `json:"window"`

	// TopK truncates ranked results after origin expansion. Zero or
	// negative means unlimited.
	TopK int `json:"topk"`
}

type options struct {
	cfg        Config
	preprocess func(string) string
	logger     *zap.SugaredLogger
}

func defaultOptions() options {
	return options{
		cfg: Config{
			SoftCutoff: DefaultSoftCutoff,
			HardCutoff: DefaultHardCutoff,
			Window:     DefaultWindow,
		},
	}
}

// Option configures a Matcher at construction.
type Option func(*options)

// WithSoftCutoff sets the screening threshold in [0,1].
func WithSoftCutoff(cutoff float64) Option {
	return func(o *options) { o.cfg.SoftCutoff = cutoff }
}

// WithHardCutoff sets the caller-applied post-filter threshold in [0,1].
func WithHardCutoff(cutoff float64) Option {
	return func(o *options) { o.cfg.HardCutoff = cutoff }
}

// WithOriginTracking enables raw-input position tracking and duplicate
// expansion.
func WithOriginTracking() Option {
	return func(o *options) { o.cfg.TrackOrigin = true }
}

// WithWindow sets the default length window. Left is normally negative.
func WithWindow(left, right int) Option {
	return func(o *options) { o.cfg.Window = Window{Left: left, Right: right} }
}

// WithTopK caps the number of results per query. Zero means unlimited.
func WithTopK(k int) Option {
	return func(o *options) { o.cfg.TopK = k }
}

// WithPreprocessor installs a pure normalization hook applied to every
// corpus string at construction and to every query before scoring. The
// same hook must serve both sides; the engine applies it consistently but
// cannot verify what the caller passed in.
func WithPreprocessor(fn func(string) string) Option {
	return func(o *options) { o.preprocess = fn }
}

// WithLogger attaches a logger for construction and per-query debug output.
// Without it the Matcher stays silent.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) { o.logger = logger }
}

type queryOptions struct {
	window    Window
	useWindow bool
	topk      int
}

// QueryOption adjusts a single Query call without touching the Matcher's
// configured defaults.
type QueryOption func(*queryOptions)

// InWindow overrides the length window for this query.
func InWindow(left, right int) QueryOption {
	return func(q *queryOptions) {
		q.window = Window{Left: left, Right: right}
		q.useWindow = true
	}
}

// WithoutWindow disables length pruning for this query; every corpus entry
// is scored.
func WithoutWindow() QueryOption {
	return func(q *queryOptions) { q.useWindow = false }
}

// TopK overrides the result cap for this query. Zero means unlimited.
func TopK(k int) QueryOption {
	return func(q *queryOptions) { q.topk = k }
}
