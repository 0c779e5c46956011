package match

import (
	"github.com/npillmayer/regal"
	"github.com/npillmayer/regal/lang"
)

// IsMatch decides if word is a member of l, i.e. if l can consume all of word.
//
// By default the matches are produced lazily and the decision is made as soon as
// the zero-length suffix shows up. With option Eager(true) the complete match set
// is computed first.
//
// Not matching is not an error. IsMatch terminates for every finite word, though
// running time may grow steeply for nested ambiguous repetitions.
func IsMatch[T comparable](l *lang.Language[T], word []T, opts ...Option) bool {
	cfg := configure(opts)
	r := newRun(word, cfg)
	if cfg.eager {
		return r.matches(l, regal.WholeWord(word)).Accepts()
	}
	seq := &Seq[T]{run: r, l: l}
	for seq.Next() {
		if seq.Suffix().IsEmpty() {
			tracer().Debugf("%s accepts word after %d matches", l, seq.Count())
			seq.Break()
			return true
		}
	}
	return false
}
