/*
Package lang implements the language tree for algebraic regular languages.

A language is one of

    Empty                     matches nothing, not even the empty word
    Singleton(t)              matches exactly one token equal to t
    Repetition(L)             zero or more repetitions of L (Kleene star)
    Union(L1, L2)             everything L1 or L2 matches
    Concatenation(L1, L2)     L1 followed by L2

EmptyWord() is a shortcut for Repetition(Empty), which matches the empty word only.

Trees are immutable once built. They may be shared between any number of
concurrent match operations without synchronization.

    // (a|b)*c
    L := lang.Concatenation(
        lang.Repetition(lang.Union(lang.Singleton('a'), lang.Singleton('b'))),
        lang.Singleton('c'))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'regal.lang'.
func tracer() tracing.Trace {
	return tracing.Select("regal.lang")
}
