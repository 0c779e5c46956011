package match

import (
	"github.com/npillmayer/regal"
	"github.com/npillmayer/regal/lang"
)

// MonitorFunc is called once for every expansion of a language node, i.e. every
// time a (sub-)language is about to be matched against a suffix. kind is the
// kind of the node and offset the start of the suffix. Returning false halts
// the matching run: no further nodes are expanded, eager sets stop growing and
// lazy sequences run dry.
//
// A monitor is the hook for latency bounds at the calling boundary (see package
// guard). Results of a halted run are incomplete.
type MonitorFunc func(kind lang.Kind, offset int) bool

// Option configures a matching run.
type Option func(*config)

type config struct {
	eager   bool
	monitor MonitorFunc
}

// Eager makes IsMatch compute the complete match set before deciding, instead
// of stopping at the first full match. Matches and Sequence ignore this option.
func Eager(b bool) Option {
	return func(c *config) {
		c.eager = b
	}
}

// Monitor sets a monitor function for a matching run.
func Monitor(m MonitorFunc) Option {
	return func(c *config) {
		c.monitor = m
	}
}

func configure(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- Matching runs ---------------------------------------------------------

// run holds the state shared by all expansions of one matching call.
type run[T comparable] struct {
	word   []T
	cfg    *config
	steps  int  // number of node expansions
	halted bool // set if the monitor stopped the run
}

func newRun[T comparable](word []T, cfg *config) *run[T] {
	return &run[T]{word: word, cfg: cfg}
}

// step accounts for the expansion of l at suffix at. It returns false if the run
// has been halted.
func (r *run[T]) step(l *lang.Language[T], at regal.Suffix[T]) bool {
	if r.halted {
		return false
	}
	r.steps++
	if r.cfg.monitor != nil && !r.cfg.monitor(l.Kind(), at.Offset()) {
		r.halted = true
		tracer().Infof("matching halted by monitor after %d steps", r.steps)
		return false
	}
	return true
}
