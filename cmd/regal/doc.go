/*
Command regal matches textual patterns against words.

Called with a pattern and a word, regal decides if the word is a member of
the language of the pattern and terminates with exit code 0 (match),
1 (no match) or 2 (error or inconclusive):

    regal '(aa|a)*' aaaaa

Without arguments, regal starts an interactive session. Input lines are
either commands or a pattern followed by a word, which is a shorthand for
:match. Use :help for a list of commands. Patterns may not contain blanks;
use {space} instead.

Matching is bounded by a step budget, which may be set with flag -budget.
It defaults to guard.DefaultSteps.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'regal.cmd'
func tracer() tracing.Trace {
	return tracing.Select("regal.cmd")
}
