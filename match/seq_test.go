package match

import (
	"testing"

	"github.com/npillmayer/regal"
	"github.com/npillmayer/regal/lang"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/exp/slices"
)

func offsets(suffixes []regal.Suffix[rune]) []int {
	o := make([]int, len(suffixes))
	for i, s := range suffixes {
		o[i] = s.Offset()
	}
	return o
}

func TestSequenceOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regal.match")
	defer teardown()
	//
	tests := []struct {
		name     string
		l        *lang.Language[rune]
		input    string
		expected []int
	}{
		// first operand's matches, then unseen matches of the second operand
		{"a|a*", lang.Union(a, lang.Repetition(a)), "aa", []int{1, 0, 2}},
		// for each match of the first operand, all matches of the second one
		{"(a|())a", lang.Concatenation(lang.Union(a, emptyWord()), a), "aa", []int{2, 1}},
		// zero repetitions first, then depth-first
		{"(aa|a)*", ambiguous(), "aaa", []int{0, 2, 3, 1}},
		{"a*", lang.Repetition(a), "aaa", []int{0, 1, 2, 3}},
		{"ab", lang.Concatenation(a, b), "ba", nil},
		{"∅", empty(), "", nil},
	}
	for _, test := range tests {
		seq := Sequence(test.l, word(test.input))
		if o := offsets(seq.Collect()); !slices.Equal(o, test.expected) {
			t.Errorf("%s on %q: expected sequence %v, have %v", test.name, test.input, test.expected, o)
		}
		if !seq.Done() {
			t.Errorf("%s: expected sequence to be done after Collect", test.name)
		}
	}
}

func TestSequenceMayRepeatConcatenationMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regal.match")
	defer teardown()
	//
	// (a|aa)(a|()) reaches offset 2 by two derivations on "aa"
	l := lang.Concatenation(lang.Union(a, lang.Concatenation(a, a)), lang.Union(a, emptyWord()))
	o := offsets(Sequence(l, word("aa")).Collect())
	if !slices.Equal(o, []int{2, 1, 2}) {
		t.Errorf("expected sequence [2 1 2], have %v", o)
	}
	if s := Matches(l, word("aa")); !slices.Equal(s.Offsets(), []int{1, 2}) {
		t.Errorf("expected eager set {1, 2}, have %v", s)
	}
}

func TestSequenceBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regal.match")
	defer teardown()
	//
	seq := Sequence(lang.Repetition(a), word("aaaa"))
	if !seq.Next() || seq.Suffix().Offset() != 0 {
		t.Fatalf("expected first match to be the whole word")
	}
	if !seq.Next() || seq.Suffix().Offset() != 1 {
		t.Fatalf("expected second match to be at offset 1")
	}
	seq.Break()
	if !seq.Done() {
		t.Errorf("expected sequence to be done after Break")
	}
	if seq.Next() {
		t.Errorf("expected no more matches after Break")
	}
	if seq.Count() != 2 {
		t.Errorf("expected 2 matches to have been delivered, have %d", seq.Count())
	}
}

func TestSequenceIsLazy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regal.match")
	defer teardown()
	//
	steps := 0
	count := func(lang.Kind, int) bool {
		steps++
		return true
	}
	seq := Sequence(ambiguous(), word("aaaaaaaa"), Monitor(count))
	if steps != 0 {
		t.Errorf("expected no matching before first call to Next, have %d steps", steps)
	}
	seq.Next()
	first := steps
	if first != 1 {
		t.Errorf("expected a single expansion for the zero repetition, have %d", first)
	}
	seq.Collect()
	if steps <= first {
		t.Errorf("expected more expansions after draining the sequence")
	}
}

func TestMonitorHalts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regal.match")
	defer teardown()
	//
	tracing.Select("regal.match").SetTraceLevel(tracing.LevelInfo)
	budget := func(n int) MonitorFunc {
		return func(kind lang.Kind, offset int) bool {
			n--
			return n >= 0
		}
	}
	w := word("aaaaaa")
	if IsMatch(ambiguous(), w, Monitor(budget(0))) {
		t.Errorf("expected halted lazy run not to accept")
	}
	if IsMatch(ambiguous(), w, Eager(true), Monitor(budget(3))) {
		t.Errorf("expected halted eager run not to accept")
	}
	if s := Matches(ambiguous(), w, Monitor(budget(0))); !s.Empty() {
		t.Errorf("expected halted run to have no matches, has %v", s)
	}
	if !IsMatch(ambiguous(), w, Monitor(budget(1000))) {
		t.Errorf("expected run with sufficient budget to accept")
	}
}

func TestMonitorSeesExpansions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regal.match")
	defer teardown()
	//
	var kinds []lang.Kind
	var at []int
	mon := func(kind lang.Kind, offset int) bool {
		kinds = append(kinds, kind)
		at = append(at, offset)
		return true
	}
	Matches(lang.Concatenation(a, b), word("ab"), Monitor(mon))
	expected := []lang.Kind{lang.KindConcatenation, lang.KindSingleton, lang.KindSingleton}
	if !slices.Equal(kinds, expected) {
		t.Errorf("expected expansions %v, have %v", expected, kinds)
	}
	if !slices.Equal(at, []int{0, 0, 1}) {
		t.Errorf("expected expansions at offsets [0 0 1], have %v", at)
	}
}

func TestSuffixSet(t *testing.T) {
	w := word("abc")
	set := NewSuffixSet(w, regal.SuffixAt(w, 2))
	if !set.Add(regal.WholeWord(w)) {
		t.Errorf("expected offset 0 to be new")
	}
	if set.Add(regal.SuffixAt(w, 2)) {
		t.Errorf("expected offset 2 to be present already")
	}
	if set.Accepts() {
		t.Errorf("set without zero-length suffix should not accept")
	}
	set.Union(NewSuffixSet(w, regal.SuffixAt(w, 3), regal.SuffixAt(w, 0)))
	if !set.Accepts() || set.Size() != 3 {
		t.Errorf("expected set { 0, 2, 3 }, have %v", set)
	}
	if !slices.Equal(set.Offsets(), []int{0, 2, 3}) {
		t.Errorf("expected ascending offsets, have %v", set.Offsets())
	}
	if s := set.String(); s != "{ @0:abc, @2:c, @3:ε }" {
		t.Errorf("unexpected string representation %s", s)
	}
}
