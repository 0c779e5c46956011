package match

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/regal"
	"github.com/npillmayer/regal/lang"
)

// pending is a worklist entry of the repetition driver: a suffix waiting to be
// recorded and expanded, together with the number of repetitions which led to it.
type pending struct {
	offset int
	depth  int
}

// repeat computes the matches of Repetition(inner) at suffix start, i.e. the
// smallest set of suffixes containing start and closed under one more match of
// inner.
//
// We do not call ourselves recursively for the repetition, but use an explicit
// worklist:
//
//     1. push start at depth 0
//     2. pop a suffix s; if s has been recorded before, skip it, else record it
//     3. match inner against s and push every candidate strictly shorter than s
//     4. stop when the worklist is empty
//
// Candidates not shorter than s stem from inner matching the empty word; they
// would lead to s again and are dropped (shrink invariant).
// Every offset is expanded at most once, thus inner is matched at most
// len(word)+1 times.
func (r *run[T]) repeat(inner *lang.Language[T], start regal.Suffix[T]) *SuffixSet[T] {
	result := NewSuffixSet(r.word)
	worklist := arraystack.New()
	worklist.Push(pending{offset: start.Offset()})
	maxDepth := 0
	for !worklist.Empty() && !r.halted {
		top, _ := worklist.Pop()
		p := top.(pending)
		s := regal.SuffixAt(r.word, p.offset)
		if !result.Add(s) {
			continue
		}
		if p.depth > maxDepth {
			maxDepth = p.depth
		}
		for _, c := range r.matches(inner, s).Suffixes() {
			if c.Len() < s.Len() && !result.Contains(c) {
				worklist.Push(pending{offset: c.Offset(), depth: p.depth + 1})
			}
		}
	}
	tracer().Debugf("repetition at %d: %d suffixes, max. %d repetitions",
		start.Offset(), result.Size(), maxDepth)
	return result
}
