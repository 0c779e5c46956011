package regal

import (
	"fmt"
	"strings"
)

// --- Suffixes --------------------------------------------------------------

// Suffix is what remains of a word after a prefix of it has been matched.
// A suffix does not copy tokens; it is a view into the word, identified by its
// start offset. The end of a suffix is always the end of the word.
//
//    word   = a b c d
//    offset = 1       ⇒   suffix = b c d
//
// Two suffixes of the same word are equal iff their offsets are equal.
// Suffixes must not be retained beyond the lifetime of the word they refer to.
type Suffix[T any] struct {
	word   []T
	offset int
}

// WholeWord returns the suffix covering all of word, i.e. the suffix at offset 0.
func WholeWord[T any](word []T) Suffix[T] {
	return Suffix[T]{word: word}
}

// SuffixAt returns the suffix of word starting at offset. Offsets outside of
// [0…len(word)] are clipped to the nearest boundary.
func SuffixAt[T any](word []T, offset int) Suffix[T] {
	if offset < 0 {
		offset = 0
	} else if offset > len(word) {
		offset = len(word)
	}
	return Suffix[T]{word: word, offset: offset}
}

// Offset returns the start position of s within its word.
func (s Suffix[T]) Offset() int {
	return s.offset
}

// Len returns the number of tokens remaining in s.
func (s Suffix[T]) Len() int {
	return len(s.word) - s.offset
}

// IsEmpty is true for the zero-length suffix, i.e. a fully consumed word.
func (s Suffix[T]) IsEmpty() bool {
	return s.offset >= len(s.word)
}

// Tokens returns the remaining tokens. The result shares memory with the word
// and must not be modified.
func (s Suffix[T]) Tokens() []T {
	return s.word[s.offset:]
}

// First returns the first remaining token, if any.
func (s Suffix[T]) First() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	return s.word[s.offset], true
}

// Advance returns the suffix with n more tokens consumed. Advancing beyond the
// end of the word yields the zero-length suffix.
func (s Suffix[T]) Advance(n int) Suffix[T] {
	return SuffixAt(s.word, s.offset+n)
}

func (s Suffix[T]) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("@%d:ε", s.offset)
	}
	var b strings.Builder
	for _, t := range s.Tokens() {
		switch x := any(t).(type) {
		case byte:
			b.WriteByte(x)
		case rune:
			b.WriteRune(x)
		default:
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", x)
		}
	}
	return fmt.Sprintf("@%d:%s", s.offset, b.String())
}

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to scanners to define them.
type TokType int

// Token represents a lexical token of a textual language description, as produced
// by a scanner. Tokens of the words being matched are not required to implement
// this interface; any comparable type will do.
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
