// Package combinator implements the three binary arithmetic combinators
// (additive, multiplicative, divisive) and their public scale-adapted
// entry points (Add, Sub, Mul, Div, Square) described in spec.md §4.3-§4.6.
package combinator

import (
	"github.com/jbjava/padic/internal/digit"
	"github.com/jbjava/padic/internal/perr"
	"github.com/jbjava/padic/internal/stream"
)

// addSub is the additive combinator of spec.md §4.3: it holds the two
// integer-aligned operands, a growing cache of output digits, and a
// single trailing carry/borrow flag.
type addSub struct {
	p       digit.Base
	a, b    stream.Producer
	sub     bool
	cache   []digit.Digit
	flag    bool
}

func (c *addSub) Digit(i int64) digit.Digit {
	for int64(len(c.cache)) <= i {
		j := int64(len(c.cache))
		aj, bj := c.a.Digit(j), c.b.Digit(j)
		var result digit.Digit
		var carry1, carry2 bool
		if c.sub {
			result, carry1 = digit.SubBorrow(c.p, aj, bj)
			result, carry2 = digit.SubBorrow(c.p, result, digit.FromBool(c.flag))
		} else {
			result, carry1 = digit.AddCarry(c.p, aj, bj)
			result, carry2 = digit.AddCarry(c.p, result, digit.FromBool(c.flag))
		}
		c.cache = append(c.cache, result)
		c.flag = carry1 || carry2
	}
	return c.cache[i]
}

func (c *addSub) Scale() int64     { return 0 }
func (c *addSub) Base() digit.Base { return c.p }

func checkBases(a, b stream.Number) (digit.Base, error) {
	if a.Base() != b.Base() {
		return 0, perr.New(perr.MismatchedBase, "%d != %d", a.Base(), b.Base())
	}
	return a.Base(), nil
}

func additive(a, b stream.Number, sub bool) (stream.Number, error) {
	p, err := checkBases(a, b)
	if err != nil {
		return stream.Number{}, err
	}
	alpha := a.Scale()
	if b.Scale() < alpha {
		alpha = b.Scale()
	}
	combinator := &addSub{
		p:   p,
		a:   stream.NewScaleDownView(a, alpha),
		b:   stream.NewScaleDownView(b, alpha),
		sub: sub,
	}
	lift := stream.IntegerLift(combinator, alpha)
	return stream.NormalizeAdditive(lift.Producer(), alpha), nil
}

// Add returns a + b as a new lazily-evaluated stream.
func Add(a, b stream.Number) (stream.Number, error) { return additive(a, b, false) }

// Sub returns a - b as a new lazily-evaluated stream.
func Sub(a, b stream.Number) (stream.Number, error) { return additive(a, b, true) }
