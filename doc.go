/*
Package regal matches algebraic regular languages against token sequences.

A language is built from five constructors (empty language, single token,
Kleene repetition, union and concatenation) and matched against a word,
i.e. a slice of comparable tokens. Matching enumerates every suffix of the
word which remains after some prefix has been consumed by the language.
A word is a member of the language if the zero-length suffix is among them.
Package structure is as follows:

■ lang: Package lang implements the immutable language tree, together with
printing and structural fingerprints.

■ match: Package match implements the match enumerator, both as an eager set
construction and as a lazy, resumable sequence, and the decision procedure on top.

■ guard: Package guard puts a step budget around matching, for callers which
need bounded latency.

■ rexlang: Package rexlang compiles a small textual pattern syntax into language trees.

The base package contains data types which are used throughout all the other packages.

No automaton is ever constructed. Matching is a backtracking enumeration whose
state is bounded by deduplicating suffixes by offset. Heavily nested ambiguous
repetitions still cost polynomially many sub-matches, with the degree growing
with nesting depth.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package regal
