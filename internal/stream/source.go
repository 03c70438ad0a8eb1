package stream

import (
	"github.com/jbjava/padic/internal/digit"
	"github.com/jbjava/padic/internal/perr"
)

// finiteLiteral is a producer with a finite run of digits, least
// significant first; every index beyond the run, and every negative
// index, is zero.
type finiteLiteral struct {
	p      digit.Base
	digits []digit.Digit
}

// FiniteLiteral builds a finite p-adic integer from digits given least
// significant first (digits[0] is the units digit). It fails with a
// DigitOutOfRange error if any digit is not a valid residue mod p, or
// TooSmallBase if p < 2.
func FiniteLiteral(p digit.Base, digits []digit.Digit) (Number, error) {
	if err := digit.ValidateBase(p); err != nil {
		return Number{}, perr.Wrap(err, perr.TooSmallBase, "base %d", p)
	}
	for _, d := range digits {
		if err := digit.Validate(p, d); err != nil {
			return Number{}, perr.Wrap(err, perr.DigitOutOfRange, "digit %d not valid for base %d", d, p)
		}
	}
	cp := make([]digit.Digit, len(digits))
	copy(cp, digits)
	return Of(&finiteLiteral{p: p, digits: cp}), nil
}

func (f *finiteLiteral) Digit(i int64) digit.Digit {
	if i < 0 || i >= int64(len(f.digits)) {
		return 0
	}
	return f.digits[i]
}

func (f *finiteLiteral) Scale() int64    { return 0 }
func (f *finiteLiteral) Base() digit.Base { return f.p }

// repeatingLiteral is a producer whose digits repeat a fixed nonempty
// cycle forever toward more significant positions.
type repeatingLiteral struct {
	p     digit.Base
	cycle []digit.Digit
}

// RepeatingLiteral builds a purely-repeating p-adic integer from a
// nonempty cycle given least significant first (cycle[0] is the units
// digit, cycle[1] the p's digit of the first repetition, and so on).
func RepeatingLiteral(p digit.Base, cycle []digit.Digit) (Number, error) {
	if err := digit.ValidateBase(p); err != nil {
		return Number{}, perr.Wrap(err, perr.TooSmallBase, "base %d", p)
	}
	if len(cycle) == 0 {
		return Number{}, perr.New(perr.ParseError, "repeating literal needs a nonempty cycle")
	}
	for _, d := range cycle {
		if err := digit.Validate(p, d); err != nil {
			return Number{}, perr.Wrap(err, perr.DigitOutOfRange, "digit %d not valid for base %d", d, p)
		}
	}
	cp := make([]digit.Digit, len(cycle))
	copy(cp, cycle)
	return Of(&repeatingLiteral{p: p, cycle: cp}), nil
}

func (r *repeatingLiteral) Digit(i int64) digit.Digit {
	if i < 0 {
		return 0
	}
	return r.cycle[i%int64(len(r.cycle))]
}

func (r *repeatingLiteral) Scale() int64    { return 0 }
func (r *repeatingLiteral) Base() digit.Base { return r.p }

// SingleDigitAt builds a finite literal that is zero everywhere except a
// single digit d at position m. It is the building block the division
// combinator uses to subtract "d * p^m * divisor" from its remainder
// each step.
func SingleDigitAt(p digit.Base, m int64, d digit.Digit) (Number, error) {
	if m < 0 {
		return Number{}, perr.New(perr.ParseError, "negative digit position %d", m)
	}
	digits := make([]digit.Digit, m+1)
	digits[m] = d
	return FiniteLiteral(p, digits)
}
