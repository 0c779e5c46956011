/*
Package rexlang compiles textual patterns into language trees.

Patterns describe languages over bytes. The syntax is a small subset of
conventional regular expressions:

    Alternation    ::=  Concatenation ( '|' Concatenation )*
    Concatenation  ::=  Postfix*                  (nothing at all is the empty word)
    Postfix        ::=  Atom ( '*' | '+' | '?' )*
    Atom           ::=  char  |  '\' char  |  '{' name '}'  |  '(' Alternation ')'

A char is any byte except one of \()|*+?. Escaping with a backslash makes
any byte a literal, except for `\0`, which denotes the empty language.
`()` is the empty word. `a+` is translated to `aa*` and `a?` to `a|()`.
Names in braces refer to definitions in an Environment; the standard
environment provides {digit}, {lower}, {upper}, {alpha}, {alnum}, {space}.
There are no anchors: a pattern always has to match a word as a whole.

    L, err := rexlang.Compile("(aa|a)*", nil)
    ok := match.IsMatch(L, []byte("aaaa"))

Rendering a language with byte tokens (lang.Language.String) produces a
pattern which compiles to an identical tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rexlang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'regal.rexlang'.
func tracer() tracing.Trace {
	return tracing.Select("regal.rexlang")
}
