package lang

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind is the variant of a language tree node.
type Kind int8

// Kinds of language nodes.
const (
	KindEmpty Kind = iota
	KindSingleton
	KindRepetition
	KindUnion
	KindConcatenation
)

// Language is a node of an immutable language tree over tokens of type T.
// Create languages with the constructors of this package; the zero value is
// not a valid language.
type Language[T comparable] struct {
	kind  Kind
	token T            // for KindSingleton
	left  *Language[T] // operand of Repetition, first operand of Union/Concatenation
	right *Language[T] // second operand of Union/Concatenation
}

// Empty returns the empty language, which does not match anything.
func Empty[T comparable]() *Language[T] {
	return &Language[T]{kind: KindEmpty}
}

// EmptyWord returns a language matching the empty word only. It is
// Repetition(Empty()).
func EmptyWord[T comparable]() *Language[T] {
	return Repetition(Empty[T]())
}

// Singleton returns a language matching exactly one token equal to token.
func Singleton[T comparable](token T) *Language[T] {
	return &Language[T]{kind: KindSingleton, token: token}
}

// Repetition returns the Kleene closure of l: zero or more repetitions of l.
// A nil operand denotes the empty language.
func Repetition[T comparable](l *Language[T]) *Language[T] {
	return &Language[T]{kind: KindRepetition, left: orEmpty(l)}
}

// Union returns a language matching everything l1 or l2 match.
// A nil operand denotes the empty language.
func Union[T comparable](l1, l2 *Language[T]) *Language[T] {
	return &Language[T]{kind: KindUnion, left: orEmpty(l1), right: orEmpty(l2)}
}

// Concatenation returns a language matching l1 followed by l2.
// A nil operand denotes the empty language.
func Concatenation[T comparable](l1, l2 *Language[T]) *Language[T] {
	return &Language[T]{kind: KindConcatenation, left: orEmpty(l1), right: orEmpty(l2)}
}

func orEmpty[T comparable](l *Language[T]) *Language[T] {
	if l == nil {
		return Empty[T]()
	}
	return l
}

// Kind returns the variant of l. A nil language is reported as KindEmpty.
func (l *Language[T]) Kind() Kind {
	if l == nil {
		return KindEmpty
	}
	return l.kind
}

// Token returns the token of a singleton language. For other kinds the
// zero value of T is returned.
func (l *Language[T]) Token() T {
	if l == nil || l.kind != KindSingleton {
		var zero T
		return zero
	}
	return l.token
}

// Inner returns the operand of a repetition, or nil for other kinds.
func (l *Language[T]) Inner() *Language[T] {
	if l == nil || l.kind != KindRepetition {
		return nil
	}
	return l.left
}

// Operands returns the two operands of a union or concatenation, or (nil, nil)
// for other kinds.
func (l *Language[T]) Operands() (*Language[T], *Language[T]) {
	if l == nil || (l.kind != KindUnion && l.kind != KindConcatenation) {
		return nil, nil
	}
	return l.left, l.right
}

// IsEmptyWord is true if l has the form Repetition(Empty).
func (l *Language[T]) IsEmptyWord() bool {
	return l.Kind() == KindRepetition && l.left.Kind() == KindEmpty
}

// children returns the direct sub-trees of l in left-to-right order.
func (l *Language[T]) children() []*Language[T] {
	switch l.Kind() {
	case KindRepetition:
		return []*Language[T]{l.left}
	case KindUnion, KindConcatenation:
		return []*Language[T]{l.left, l.right}
	}
	return nil
}
