/*
Package guard bounds the cost of matching at the calling boundary.

Matching nested ambiguous repetitions may take a long time for long words.
The matching core has no notion of time or budgets. Package guard runs
matches with a budget of node expansions and with a context, and reports an
exhausted budget as an error which clients may treat as recoverable:

    ok, err := guard.IsMatch(ctx, L, word, guard.Steps(100000))
    if errors.Is(err, guard.ErrInconclusive) {
        // retry with a larger budget, or give up
    }

A match found before the budget is exhausted is always reported as such.

The default budget may be configured with key "regal.step-budget".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package guard

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'regal.guard'.
func tracer() tracing.Trace {
	return tracing.Select("regal.guard")
}
