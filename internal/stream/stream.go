// Package stream implements the lazy, memoized p-adic digit stream: the
// Producer capability, the Number handle that wraps it, and the two
// concrete sources (finite and repeating literals). Combinators (add,
// sub, mul, div) live in internal/combinator and are built entirely on
// top of the Producer interface exposed here.
package stream

import "github.com/jbjava/padic/internal/digit"

// Producer is the single capability every p-adic digit source or
// operator implements: answer the digit at an integer index, and report
// the scale (the least index at which a nonzero digit may appear).
//
// Implementations are not safe for concurrent use: spec invariant is
// single-threaded, cooperative access (see internal/session for how
// multiple independent sessions avoid ever sharing a Producer).
type Producer interface {
	// Digit returns the digit at index i. Callers normally go through
	// Number.Digit, which already applies the below-scale zero
	// convention; Producer implementations may assume i >= Scale().
	Digit(i int64) digit.Digit
	// Scale returns the least index at which this producer may answer
	// a nonzero digit.
	Scale() int64
	// Base returns the fixed radix this producer's digits are drawn from.
	Base() digit.Base
}

// Number is an owning, cheaply-copyable handle to a Producer. Copying a
// Number never deep-copies the underlying producer: a Number is a small
// struct wrapping an interface value, so copies share the same
// producer, and Go's garbage collector — not manual reference counting
// — keeps that producer alive for as long as any handle refers to it.
// Because producers are only ever built from already-existing handles,
// the reference graph is a DAG; no cycle collection is needed.
type Number struct {
	p Producer
}

// Of wraps a Producer in a Number handle.
func Of(p Producer) Number { return Number{p: p} }

// Digit returns the digit at index i, applying the below-scale
// convention: any index strictly less than Scale() is zero.
func (n Number) Digit(i int64) digit.Digit {
	if i < n.p.Scale() {
		return 0
	}
	return n.p.Digit(i)
}

// Scale returns the handle's producer's scale.
func (n Number) Scale() int64 { return n.p.Scale() }

// Base returns the handle's producer's base.
func (n Number) Base() digit.Base { return n.p.Base() }

// Producer exposes the underlying Producer, for combinators that need
// to build new producers referencing this one.
func (n Number) Producer() Producer { return n.p }

// Valid reports whether the handle wraps a producer at all; the zero
// Number is invalid and must never be queried.
func (n Number) Valid() bool { return n.p != nil }
