package rexlang

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/regal/lang"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Environment holds named languages, which patterns may refer to as {name}.
// Environments link back to a parent environment, forming a tree. Names are
// resolved from the innermost environment outwards.
//
// Environments are not safe for concurrent modification. The languages stored
// in them are immutable and may be shared freely.
type Environment struct {
	Name   string
	Parent *Environment
	table  map[string]*lang.Language[byte]
}

// NewEnvironment creates an empty environment.
func NewEnvironment(name string, parent *Environment) *Environment {
	return &Environment{
		Name:   name,
		Parent: parent,
		table:  make(map[string]*lang.Language[byte]),
	}
}

// Prettyfied Stringer.
func (env *Environment) String() string {
	return fmt.Sprintf("<env %s>", env.Name)
}

// Define binds a language to a name, overwriting an existing binding in this
// environment. The name may not be empty.
// Returns the previously bound language (or nil).
func (env *Environment) Define(name string, l *lang.Language[byte]) *lang.Language[byte] {
	if len(name) == 0 || l == nil {
		return nil
	}
	old := env.table[name]
	env.table[name] = l
	tracer().P("env", env.Name).Debugf("define {%s} = %s", name, l)
	return old
}

// DefinePattern compiles a pattern in the context of env and binds the result to
// a name in env.
func (env *Environment) DefinePattern(name string, pattern string) (*lang.Language[byte], error) {
	l, err := Compile(pattern, env)
	if err != nil {
		return nil, err
	}
	env.Define(name, l)
	return l, nil
}

// Resolve finds a language by name. Returns the language (or nil) and the
// environment (of the parent chain) the name was found in.
func (env *Environment) Resolve(name string) (*lang.Language[byte], *Environment) {
	for e := env; e != nil; e = e.Parent {
		if l, ok := e.table[name]; ok {
			return l, e
		}
	}
	return nil, nil
}

// Size counts the definitions of env, not including those of parents.
func (env *Environment) Size() int {
	return len(env.table)
}

// Names returns all names visible from env, sorted.
func (env *Environment) Names() []string {
	visible := make(map[string]struct{})
	for e := env; e != nil; e = e.Parent {
		for name := range e.table {
			visible[name] = struct{}{}
		}
	}
	names := maps.Keys(visible)
	slices.Sort(names)
	return names
}

// --- Standard environment --------------------------------------------------

var standard *Environment
var standardOnce sync.Once

// Standard returns the standard environment, containing some character classes.
// The standard environment must not be modified by clients; create a child
// environment instead.
func Standard() *Environment {
	standardOnce.Do(func() {
		standard = NewEnvironment("standard", nil)
		standard.Define("digit", class(byteRange('0', '9')))
		standard.Define("lower", class(byteRange('a', 'z')))
		standard.Define("upper", class(byteRange('A', 'Z')))
		standard.Define("alpha", class(byteRange('a', 'z')+byteRange('A', 'Z')))
		standard.Define("alnum", class(byteRange('a', 'z')+byteRange('A', 'Z')+byteRange('0', '9')))
		standard.Define("space", class(" \t\n\r\f\v"))
	})
	return standard
}

func byteRange(from, to byte) string {
	var b strings.Builder
	for c := from; c <= to; c++ {
		b.WriteByte(c)
	}
	return b.String()
}

// class is the union of single bytes.
func class(chars string) *lang.Language[byte] {
	var l *lang.Language[byte]
	for i := 0; i < len(chars); i++ {
		if l == nil {
			l = lang.Singleton(chars[i])
		} else {
			l = lang.Union(l, lang.Singleton(chars[i]))
		}
	}
	return l
}
