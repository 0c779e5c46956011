package match

import (
	"github.com/npillmayer/regal"
	"github.com/npillmayer/regal/lang"
)

// Matches returns the set of all suffixes of word which remain after l has
// consumed a prefix of word. Every derivation is explored; suffixes reached by
// more than one derivation are contained only once.
//
// The result is empty if l does not match any prefix of word. The word is a
// member of l iff the result contains the zero-length suffix (see
// SuffixSet.Accepts).
func Matches[T comparable](l *lang.Language[T], word []T, opts ...Option) *SuffixSet[T] {
	r := newRun(word, configure(opts))
	result := r.matches(l, regal.WholeWord(word))
	tracer().Debugf("%s matches %d suffixes in %d steps", l, result.Size(), r.steps)
	return result
}

func (r *run[T]) matches(l *lang.Language[T], at regal.Suffix[T]) *SuffixSet[T] {
	result := NewSuffixSet(r.word)
	if !r.step(l, at) {
		return result
	}
	switch l.Kind() {
	case lang.KindEmpty: // never matches, not even the empty word
	case lang.KindSingleton:
		if token, ok := at.First(); ok && token == l.Token() {
			result.Add(at.Advance(1))
		}
	case lang.KindUnion:
		l1, l2 := l.Operands()
		result = r.matches(l1, at).Union(r.matches(l2, at))
	case lang.KindConcatenation:
		l1, l2 := l.Operands()
		for _, s := range r.matches(l1, at).Suffixes() {
			result.Union(r.matches(l2, s))
		}
	case lang.KindRepetition:
		result = r.repeat(l.Inner(), at)
	}
	return result
}
