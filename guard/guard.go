package guard

import (
	"context"
	"errors"
	"fmt"

	"github.com/npillmayer/regal/lang"
	"github.com/npillmayer/regal/match"
	"github.com/npillmayer/schuko/gconf"
)

// ErrInconclusive is returned if the step budget has been exhausted before a
// decision could be made.
var ErrInconclusive = errors.New("match inconclusive: step budget exhausted")

// DefaultSteps is the step budget if neither an option nor the configuration
// provides one.
const DefaultSteps = 1000000

// ConfigKey is the configuration key for the default step budget.
const ConfigKey = "regal.step-budget"

// checkInterval is the number of steps between two checks of the context.
const checkInterval = 1024

// Option configures a guarded matching run.
type Option func(*limits)

type limits struct {
	steps int
	eager bool
}

// Steps sets the budget of node expansions. Values ≤ 0 select the default budget.
func Steps(n int) Option {
	return func(l *limits) {
		l.steps = n
	}
}

// Eager makes IsMatch decide on the complete match set (see match.Eager).
func Eager(b bool) Option {
	return func(l *limits) {
		l.eager = b
	}
}

// Budget returns the default step budget, as configured with ConfigKey, or
// DefaultSteps.
func Budget() int {
	if n := gconf.GetInt(ConfigKey); n > 0 {
		return n
	}
	return DefaultSteps
}

// Stats reports on a guarded run.
type Stats struct {
	Steps  int // node expansions performed
	Budget int // budget of node expansions
}

// watch is a monitor for a matching run, enforcing budget and context.
type watch struct {
	ctx    context.Context
	budget int
	steps  int
	err    error
}

func newWatch(ctx context.Context, opts []Option) (*watch, *limits) {
	l := &limits{}
	for _, opt := range opts {
		opt(l)
	}
	if l.steps <= 0 {
		l.steps = Budget()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &watch{ctx: ctx, budget: l.steps}, l
}

func (w *watch) monitor(kind lang.Kind, offset int) bool {
	w.steps++
	if w.steps > w.budget {
		w.err = fmt.Errorf("%w after %d steps", ErrInconclusive, w.budget)
		return false
	}
	if w.steps%checkInterval == 0 {
		if err := w.ctx.Err(); err != nil {
			w.err = fmt.Errorf("matching cancelled at step %d: %w", w.steps, err)
			return false
		}
	}
	return true
}

func (w *watch) stats() Stats {
	steps := w.steps
	if steps > w.budget {
		steps = w.budget
	}
	return Stats{Steps: steps, Budget: w.budget}
}

// IsMatch decides if word is a member of l within a step budget.
//
// If a decision cannot be reached within the budget, ErrInconclusive is
// returned, wrapped. If ctx is cancelled, the context's error is returned, wrapped.
func IsMatch[T comparable](ctx context.Context, l *lang.Language[T], word []T, opts ...Option) (bool, error) {
	ok, _, err := IsMatchWithStats(ctx, l, word, opts...)
	return ok, err
}

// IsMatchWithStats is IsMatch, additionally reporting the number of steps used.
func IsMatchWithStats[T comparable](ctx context.Context, l *lang.Language[T], word []T,
	opts ...Option) (bool, Stats, error) {
	//
	w, lim := newWatch(ctx, opts)
	if err := w.ctx.Err(); err != nil {
		return false, w.stats(), err
	}
	ok := match.IsMatch(l, word, match.Eager(lim.eager), match.Monitor(w.monitor))
	if ok { // a match found is a match, even if the budget ran out afterwards
		return true, w.stats(), nil
	}
	if w.err != nil {
		tracer().Infof("guarded match of %s: %v", l, w.err)
		return false, w.stats(), w.err
	}
	return false, w.stats(), nil
}

// Matches computes the complete set of matches within a step budget.
// If the budget is exhausted, the partial set computed so far is returned together
// with a wrapped ErrInconclusive.
func Matches[T comparable](ctx context.Context, l *lang.Language[T], word []T,
	opts ...Option) (*match.SuffixSet[T], error) {
	//
	w, _ := newWatch(ctx, opts)
	if err := w.ctx.Err(); err != nil {
		return match.NewSuffixSet(word), err
	}
	set := match.Matches(l, word, match.Monitor(w.monitor))
	if w.err != nil {
		tracer().Infof("guarded enumeration of %s: %v", l, w.err)
	}
	return set, w.err
}
