// Package env is the calculator's variable store: named bindings plus
// the most recent anonymous result, both referenced from expressions via
// spec.md §6.2's "&" syntax.
package env

import (
	"sort"

	"github.com/jbjava/padic/internal/perr"
	"github.com/jbjava/padic/internal/stream"
	"golang.org/x/exp/maps"
)

// Env holds one session's bound variables and its most recent anonymous
// evaluation result.
type Env struct {
	vars map[string]stream.Number
	last stream.Number
}

// New returns an empty Env.
func New() *Env {
	return &Env{vars: make(map[string]stream.Number)}
}

// Bind associates name with n. name must start with a lowercase letter
// a-z, per spec.md §6.1's 's' command.
func (e *Env) Bind(name string, n stream.Number) error {
	if len(name) == 0 || name[0] < 'a' || name[0] > 'z' {
		return perr.New(perr.ParseError, "variable name %q must start with a lowercase letter", name)
	}
	e.vars[name] = n
	return nil
}

// Get looks up a bound variable by name.
func (e *Env) Get(name string) (stream.Number, bool) {
	n, ok := e.vars[name]
	return n, ok
}

// SetLast records n as the most recent anonymous evaluation result.
func (e *Env) SetLast(n stream.Number) { e.last = n }

// Last returns the most recent anonymous result, if any has been set.
func (e *Env) Last() (stream.Number, bool) { return e.last, e.last.Valid() }

// Names returns the bound variable names in sorted order, for the 'v'
// command's listing.
func (e *Env) Names() []string {
	names := maps.Keys(e.vars)
	sort.Strings(names)
	return names
}
