package combinator

import (
	"github.com/jbjava/padic/internal/digit"
	"github.com/jbjava/padic/internal/stream"
)

// mul is the multiplicative combinator of spec.md §4.4: a convolution
// stream with a computed-digits cache and a pending column-sum tail
// holding the as-yet-unreduced carries beyond the current output
// position.
type mul struct {
	p       digit.Base
	a, b    stream.Producer
	computed []digit.Digit
	tail     []digit.Digit
}

func (c *mul) Digit(i int64) digit.Digit {
	for int64(len(c.computed)) <= i {
		k := int64(len(c.computed))
		for j := int64(0); j <= k; j++ {
			lo, hi := digit.MulOverflow(c.p, c.a.Digit(j), c.b.Digit(k-j))
			c.addIntoTail(0, lo)
			c.addIntoTail(1, hi)
		}
		var d digit.Digit
		if len(c.tail) > 0 {
			d = c.tail[0]
			c.tail = c.tail[1:]
		}
		c.computed = append(c.computed, d)
	}
	return c.computed[i]
}

// addIntoTail adds value into position pos of the tail, propagating
// carry leftward through subsequent positions and extending the tail on
// overflow past its end (the multi-digit addition helper of spec.md §4.4).
func (c *mul) addIntoTail(pos int, value digit.Digit) {
	for value != 0 {
		for len(c.tail) <= pos {
			c.tail = append(c.tail, 0)
		}
		sum, carry := digit.AddCarry(c.p, c.tail[pos], value)
		c.tail[pos] = sum
		if !carry {
			return
		}
		value = 1
		pos++
	}
}

func (c *mul) Scale() int64     { return 0 }
func (c *mul) Base() digit.Base { return c.p }

// Mul returns a * b as a new lazily-evaluated stream. Each operand is
// aligned to its own scale (not a shared minimum): the multiplicative
// scale adapter sets the result's scale to scale(a)+scale(b) and never
// normalizes leading zeros.
func Mul(a, b stream.Number) (stream.Number, error) {
	p, err := checkBases(a, b)
	if err != nil {
		return stream.Number{}, err
	}
	combinator := &mul{
		p: p,
		a: stream.NewScaleDownView(a, a.Scale()),
		b: stream.NewScaleDownView(b, b.Scale()),
	}
	return stream.IntegerLift(combinator, a.Scale()+b.Scale()), nil
}

// Square returns a * a. Multiplying a number by itself is safe: both
// operand views query the same underlying producer, whose digits are
// deterministic (a composite producer only ever extends its own memoized
// cache), so both views always see the same digits.
func Square(a stream.Number) (stream.Number, error) { return Mul(a, a) }
