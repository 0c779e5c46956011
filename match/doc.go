/*
Package match enumerates the matches of an algebraic regular language against a word.

Matching a language L against a word w yields the set of suffixes of w which
remain after L has consumed some prefix of w. The word is a member of L if the
zero-length suffix is among them:

    L := lang.Union(lang.Singleton('a'), lang.Repetition(lang.Singleton('a')))
    match.Matches(L, []rune("aa"))   // { @0:aa, @1:a, @2:ε }
    match.IsMatch(L, []rune("aa"))   // true

Matches computes the complete set eagerly. Sequence presents the same
suffixes as a lazy sequence, which may be abandoned at any time. The decision
procedure IsMatch uses the lazy variant by default and stops as soon as the
word has been fully consumed.

Repetition

Repetition is driven by an explicit worklist instead of recursive
self-application. A candidate suffix produced by the repeated language is
accepted only if it is strictly shorter than the suffix it was produced from,
so languages which match the empty word cannot cause endless loops. Suffixes
are deduplicated by offset and every offset is expanded at most once, which
keeps the state of a repetition bounded by the length of the word instead of
by the number of derivations.

Cost

No automaton is built. Each node of the language tree may be matched against
every suffix of the word, and nested repetitions multiply this work. Words of
a few thousand tokens are fine for shallow languages; clients needing bounded
latency should match through package guard.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'regal.match'.
func tracer() tracing.Trace {
	return tracing.Select("regal.match")
}
