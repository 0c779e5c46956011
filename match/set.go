package match

import (
	"bytes"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/regal"
)

// SuffixSet is a set of suffixes of a single word. Suffixes are identified by
// their offset, so different derivations reaching the same position are stored
// only once. Iteration order is by ascending offset, i.e. longest suffix first.
//
// Unusually, Union is destructive, as are the set operations in the parser
// packages this type was modelled after.
type SuffixSet[T comparable] struct {
	word    []T
	offsets *treeset.Set
}

// NewSuffixSet creates a set of suffixes of word, optionally initialized
// with some suffixes of it.
func NewSuffixSet[T comparable](word []T, suffixes ...regal.Suffix[T]) *SuffixSet[T] {
	set := &SuffixSet[T]{
		word:    word,
		offsets: treeset.NewWithIntComparator(),
	}
	for _, s := range suffixes {
		set.Add(s)
	}
	return set
}

// Add inserts a suffix and returns true if it has not been present before.
// s has to be a suffix of the set's word.
func (set *SuffixSet[T]) Add(s regal.Suffix[T]) bool {
	if set.offsets.Contains(s.Offset()) {
		return false
	}
	set.offsets.Add(s.Offset())
	return true
}

// Contains checks if a suffix is present in the set.
func (set *SuffixSet[T]) Contains(s regal.Suffix[T]) bool {
	return set.ContainsOffset(s.Offset())
}

// ContainsOffset checks if the suffix starting at offset is present in the set.
func (set *SuffixSet[T]) ContainsOffset(offset int) bool {
	return set.offsets.Contains(offset)
}

// Accepts is true if the set contains the zero-length suffix, i.e. if the
// whole word has been consumed by some derivation.
func (set *SuffixSet[T]) Accepts() bool {
	return set.ContainsOffset(len(set.word))
}

// Union adds all suffixes of other to set. It returns set.
func (set *SuffixSet[T]) Union(other *SuffixSet[T]) *SuffixSet[T] {
	if other == nil {
		return set
	}
	set.offsets.Add(other.offsets.Values()...)
	return set
}

// Size returns the number of suffixes in the set.
func (set *SuffixSet[T]) Size() int {
	return set.offsets.Size()
}

// Empty is true for a set without suffixes.
func (set *SuffixSet[T]) Empty() bool {
	return set.offsets.Empty()
}

// Offsets returns the offsets of all suffixes, in ascending order.
func (set *SuffixSet[T]) Offsets() []int {
	offsets := make([]int, 0, set.offsets.Size())
	it := set.offsets.Iterator()
	for it.Next() {
		offsets = append(offsets, it.Value().(int))
	}
	return offsets
}

// Suffixes returns all suffixes of the set, by ascending offset.
func (set *SuffixSet[T]) Suffixes() []regal.Suffix[T] {
	suffixes := make([]regal.Suffix[T], 0, set.offsets.Size())
	it := set.offsets.Iterator()
	for it.Next() {
		suffixes = append(suffixes, regal.SuffixAt(set.word, it.Value().(int)))
	}
	return suffixes
}

func (set *SuffixSet[T]) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, s := range set.Suffixes() {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(s.String())
	}
	b.WriteString(" }")
	return b.String()
}

// --- Offset sets -----------------------------------------------------------

// offsetSet is a cheap set of offsets, used where no ordering is needed.
type offsetSet map[int]struct{}

var exists = struct{}{}

// add inserts an offset and returns true if it has not been present before.
func (set offsetSet) add(offset int) bool {
	if _, ok := set[offset]; ok {
		return false
	}
	set[offset] = exists
	return true
}

func (set offsetSet) contains(offset int) bool {
	_, ok := set[offset]
	return ok
}
