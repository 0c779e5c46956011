package lang

import (
	"fmt"
	"strings"
)

// Precedence levels for rendering. A child of lower level than its context
// requires has to be parenthesized.
const (
	levelUnion = iota + 1
	levelConcat
	levelPostfix
	levelAtom
)

// metaChars have to be escaped in rendered patterns.
const metaChars = `\()|*+?{}`

// String renders l in the pattern syntax of package rexlang, using as few
// parentheses as possible. For byte tokens, compiling the result yields a tree
// equal to l.
func (l *Language[T]) String() string {
	var b strings.Builder
	render(&b, l)
	return b.String()
}

func level[T comparable](l *Language[T]) int {
	switch l.Kind() {
	case KindUnion:
		return levelUnion
	case KindConcatenation:
		return levelConcat
	case KindRepetition:
		if l.IsEmptyWord() {
			return levelAtom
		}
		return levelPostfix
	}
	return levelAtom
}

func render[T comparable](b *strings.Builder, l *Language[T]) {
	switch l.Kind() {
	case KindEmpty:
		b.WriteString(`\0`)
	case KindSingleton:
		b.WriteString(tokenString(l.token))
	case KindRepetition:
		if l.IsEmptyWord() {
			b.WriteString("()")
			return
		}
		renderAt(b, l.left, levelPostfix)
		b.WriteByte('*')
	case KindUnion:
		renderAt(b, l.left, levelUnion)
		b.WriteByte('|')
		renderAt(b, l.right, levelConcat)
	case KindConcatenation:
		renderAt(b, l.left, levelConcat)
		renderAt(b, l.right, levelPostfix)
	}
}

func renderAt[T comparable](b *strings.Builder, l *Language[T], atLeast int) {
	if level(l) < atLeast {
		b.WriteByte('(')
		render(b, l)
		b.WriteByte(')')
		return
	}
	render(b, l)
}

func tokenString(token any) string {
	var s string
	switch t := token.(type) {
	case byte:
		s = string([]byte{t})
	case rune:
		s = string(t)
	case string:
		return fmt.Sprintf("%q", t)
	default:
		return fmt.Sprintf("%v", t)
	}
	if strings.Contains(metaChars, s) {
		return `\` + s
	}
	return s
}

// --- Walking ---------------------------------------------------------------

// Visitor is called for every node of a language tree during a walk, together
// with the depth of the node (the root has depth 0). If it returns false, the
// children of the node will be skipped.
type Visitor[T comparable] func(node *Language[T], depth int) bool

// Walk traverses a language tree in pre-order, left to right.
func Walk[T comparable](l *Language[T], visit Visitor[T]) {
	walk(l, visit, 0)
}

func walk[T comparable](l *Language[T], visit Visitor[T], depth int) {
	if l == nil || !visit(l, depth) {
		return
	}
	for _, ch := range l.children() {
		walk(ch, visit, depth+1)
	}
}

// Size returns the number of nodes of a language tree.
func Size[T comparable](l *Language[T]) int {
	n := 0
	Walk(l, func(*Language[T], int) bool {
		n++
		return true
	})
	return n
}

// Dump is a debugging helper, writing an indented tree to the trace.
func Dump[T comparable](l *Language[T]) {
	tracer().Debugf("--- language %s -----------", l)
	Walk(l, func(node *Language[T], depth int) bool {
		if node.Kind() == KindSingleton {
			tracer().Debugf("%s%s %s", strings.Repeat(". ", depth), node.Kind(), tokenString(node.token))
		} else {
			tracer().Debugf("%s%s", strings.Repeat(". ", depth), node.Kind())
		}
		return true
	})
	tracer().Debugf("-------------------------")
}
