package lang

import (
	"fmt"

	"github.com/cnf/structhash"
)

// shape is an exported mirror of a language tree, as structhash only looks at
// exported fields.
type shape struct {
	Kind     string
	Token    string  `hash:"name:token"`
	Children []shape `hash:"name:children"`
}

func shapeOf[T comparable](l *Language[T]) shape {
	sh := shape{Kind: l.Kind().String()}
	if l.Kind() == KindSingleton {
		sh.Token = fmt.Sprintf("%T:%#v", l.token, l.token)
	}
	for _, ch := range l.children() {
		sh.Children = append(sh.Children, shapeOf(ch))
	}
	return sh
}

// fingerprintVersion is the structhash version of fingerprints.
const fingerprintVersion = 1

// Fingerprint returns a structural hash of a language tree. Trees which are
// built from the same constructors and tokens, in the same order, have
// identical fingerprints, independent of node identity.
func Fingerprint[T comparable](l *Language[T]) string {
	fp, err := structhash.Hash(shapeOf(l), fingerprintVersion)
	if err != nil { // cannot happen for plain structs
		tracer().Errorf("cannot fingerprint language %s: %v", l, err)
		return ""
	}
	return fp
}

// Equal is true if l1 and l2 are structurally identical trees.
//
// Equal compares structure, not accepted words: Union(a, b) and Union(b, a)
// are different trees for the same language.
func Equal[T comparable](l1, l2 *Language[T]) bool {
	if l1 == l2 {
		return true
	}
	if Size(l1) != Size(l2) {
		return false
	}
	return Fingerprint(l1) == Fingerprint(l2)
}
