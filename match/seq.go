package match

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/regal"
	"github.com/npillmayer/regal/lang"
)

/*
Lazy matching is implemented with one producer type per kind of language node.
A producer is a small state machine, holding its own cursor:

    union          which operand is active, its producer, offsets emitted so far
    concatenation  producer for the first operand, active producer for the second
    repetition     stack of producers for the repeated language, offsets seen so far

Asking a producer for its next suffix resumes it exactly where it stopped.
Producers hold no resources besides memory; abandoning them is all it takes
to cancel a sequence.
*/

// producer is the interface of the per-node state machines.
type producer[T comparable] interface {
	next() (regal.Suffix[T], bool)
}

// produce creates a state machine producing the matches of l at suffix at.
func (r *run[T]) produce(l *lang.Language[T], at regal.Suffix[T]) producer[T] {
	if !r.step(l, at) {
		return exhausted[T]{}
	}
	switch l.Kind() {
	case lang.KindSingleton:
		return &singletonProducer[T]{run: r, token: l.Token(), at: at}
	case lang.KindUnion:
		first, second := l.Operands()
		return &unionProducer[T]{
			run:     r,
			at:      at,
			second:  second,
			current: r.produce(first, at),
			emitted: offsetSet{},
		}
	case lang.KindConcatenation:
		first, second := l.Operands()
		return &concatProducer[T]{
			run:    r,
			second: second,
			outer:  r.produce(first, at),
		}
	case lang.KindRepetition:
		return &repetitionProducer[T]{
			run:   r,
			inner: l.Inner(),
			start: at,
			stack: arraystack.New(),
			seen:  offsetSet{},
		}
	}
	return exhausted[T]{} // Empty
}

// exhausted never produces anything.
type exhausted[T comparable] struct{}

func (e exhausted[T]) next() (regal.Suffix[T], bool) {
	return regal.Suffix[T]{}, false
}

// --- Singleton -------------------------------------------------------------

type singletonProducer[T comparable] struct {
	run   *run[T]
	token T
	at    regal.Suffix[T]
	done  bool
}

func (p *singletonProducer[T]) next() (regal.Suffix[T], bool) {
	if p.done || p.run.halted {
		return regal.Suffix[T]{}, false
	}
	p.done = true
	if token, ok := p.at.First(); ok && token == p.token {
		return p.at.Advance(1), true
	}
	return regal.Suffix[T]{}, false
}

// --- Union -----------------------------------------------------------------

// unionProducer emits every suffix of the first operand, in its order, then the
// suffixes of the second operand which have not been emitted before.
type unionProducer[T comparable] struct {
	run      *run[T]
	at       regal.Suffix[T]
	second   *lang.Language[T]
	current  producer[T]
	onSecond bool
	emitted  offsetSet
}

func (p *unionProducer[T]) next() (regal.Suffix[T], bool) {
	for !p.run.halted {
		if s, ok := p.current.next(); ok {
			if !p.onSecond {
				p.emitted.add(s.Offset())
				return s, true
			}
			if p.emitted.contains(s.Offset()) {
				continue
			}
			return s, true
		}
		if p.onSecond {
			break
		}
		p.onSecond = true
		p.current = p.run.produce(p.second, p.at)
	}
	return regal.Suffix[T]{}, false
}

// --- Concatenation ---------------------------------------------------------

// concatProducer drains a producer for the second operand for every suffix of
// the first operand, before moving on to the next suffix of the first operand.
type concatProducer[T comparable] struct {
	run    *run[T]
	second *lang.Language[T]
	outer  producer[T] // matches of the first operand
	inner  producer[T] // matches of the second operand, may be nil
}

func (p *concatProducer[T]) next() (regal.Suffix[T], bool) {
	for !p.run.halted {
		if p.inner != nil {
			if s, ok := p.inner.next(); ok {
				return s, true
			}
			p.inner = nil
		}
		s, ok := p.outer.next()
		if !ok {
			break
		}
		p.inner = p.run.produce(p.second, s)
	}
	return regal.Suffix[T]{}, false
}

// --- Repetition ------------------------------------------------------------

// repetitionProducer is the lazy variant of the repetition driver. The start
// suffix is emitted first. Afterwards a stack of producers for the repeated
// language is worked depth-first: every candidate which is strictly shorter than
// the suffix its producer started from, and which has not been seen before, is
// emitted at once and gets a producer of its own pushed onto the stack.
type repetitionProducer[T comparable] struct {
	run     *run[T]
	inner   *lang.Language[T]
	start   regal.Suffix[T]
	started bool
	stack   *arraystack.Stack // of *repetitionFrame
	seen    offsetSet
}

type repetitionFrame[T comparable] struct {
	from  regal.Suffix[T] // suffix the producer starts from
	inner producer[T]     // created on first use
}

func (p *repetitionProducer[T]) push(s regal.Suffix[T]) {
	p.stack.Push(&repetitionFrame[T]{from: s})
}

func (p *repetitionProducer[T]) next() (regal.Suffix[T], bool) {
	if p.run.halted {
		return regal.Suffix[T]{}, false
	}
	if !p.started { // zero repetitions
		p.started = true
		p.seen.add(p.start.Offset())
		p.push(p.start)
		return p.start, true
	}
	for !p.stack.Empty() && !p.run.halted {
		top, _ := p.stack.Peek()
		frame := top.(*repetitionFrame[T])
		if frame.inner == nil {
			frame.inner = p.run.produce(p.inner, frame.from)
		}
		c, ok := frame.inner.next()
		if !ok {
			p.stack.Pop()
			continue
		}
		if c.Len() >= frame.from.Len() { // inner matched the empty word
			continue
		}
		if !p.seen.add(c.Offset()) {
			continue
		}
		p.push(c)
		return c, true
	}
	return regal.Suffix[T]{}, false
}

// --- Sequences -------------------------------------------------------------

// Seq is a lazy, resumable sequence of matches. Use it like this:
//
//    seq := match.Sequence(L, word)
//    for seq.Next() {
//        s := seq.Suffix()
//        …
//    }
//
// Suffixes are computed on demand only. Clients may stop iterating at any time,
// calling Break or simply dropping the sequence.
//
// Other than the eager match set, a sequence may deliver a suffix more than
// once if it is reachable by more than one derivation through a concatenation.
// Unions and repetitions never repeat a suffix they have already delivered.
type Seq[T comparable] struct {
	run     *run[T]
	l       *lang.Language[T]
	root    producer[T]
	current regal.Suffix[T]
	count   int
	done    bool
}

// Sequence creates a lazy sequence of the matches of l against word.
// No matching takes place before the first call to Next.
func Sequence[T comparable](l *lang.Language[T], word []T, opts ...Option) *Seq[T] {
	return &Seq[T]{
		run: newRun(word, configure(opts)),
		l:   l,
	}
}

// Next advances the sequence to the next match. It returns false if there
// are no more matches.
func (seq *Seq[T]) Next() bool {
	if seq.done {
		return false
	}
	if seq.root == nil {
		seq.root = seq.run.produce(seq.l, regal.WholeWord(seq.run.word))
	}
	s, ok := seq.root.next()
	if !ok {
		tracer().Debugf("sequence for %s done after %d matches, %d steps", seq.l, seq.count, seq.run.steps)
		seq.Break()
		return false
	}
	seq.current = s
	seq.count++
	return true
}

// Suffix returns the current match, i.e. the suffix Next advanced to.
func (seq *Seq[T]) Suffix() regal.Suffix[T] {
	return seq.current
}

// Count returns the number of matches delivered so far.
func (seq *Seq[T]) Count() int {
	return seq.count
}

// Break signals a sequence to stop iterating. Suspended producers are discarded.
func (seq *Seq[T]) Break() {
	seq.done = true
	seq.root = exhausted[T]{}
}

// Done returns true if a sequence stopped iterating.
func (seq *Seq[T]) Done() bool {
	return seq.done
}

// Collect drains the sequence and returns the remaining matches in the order
// they are produced.
func (seq *Seq[T]) Collect() []regal.Suffix[T] {
	var suffixes []regal.Suffix[T]
	for seq.Next() {
		suffixes = append(suffixes, seq.Suffix())
	}
	return suffixes
}
