package mcpserver

import (
	"sync"

	"github.com/teranos/fuzzmatch/match"
)

// Reloadable is an Engine whose underlying matcher can be swapped while the
// server keeps answering calls. Watch mode swaps in a freshly indexed
// matcher after each corpus reload; a call already in flight finishes
// against the matcher it started with.
type Reloadable struct {
	mu     sync.RWMutex
	engine Engine
}

var _ Engine = (*Reloadable)(nil)

// NewReloadable wraps engine so it can later be replaced with Swap.
func NewReloadable(engine Engine) *Reloadable {
	return &Reloadable{engine: engine}
}

// Swap replaces the underlying engine.
func (r *Reloadable) Swap(engine Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engine = engine
}

func (r *Reloadable) current() Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.engine
}

func (r *Reloadable) Query(text string, opts ...match.QueryOption) ([]match.Result, error) {
	return r.current().Query(text, opts...)
}

func (r *Reloadable) ApplyHardCutoff(results []match.Result) []match.Result {
	return r.current().ApplyHardCutoff(results)
}

func (r *Reloadable) Stats() match.Stats {
	return r.current().Stats()
}

func (r *Reloadable) Config() match.Config {
	return r.current().Config()
}
